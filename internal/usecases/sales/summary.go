package sales

import (
	"context"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
	"github.com/vfg2006/influencer-sales-api/pkg/utils"
)

func (s *Service) Summary(ctx context.Context, affiliateID int64) (*domain.AffiliateSalesSummary, error) {
	summary, err := s.saleRepo.Summarize(ctx, affiliateID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("affiliate_id", affiliateID).Error("Erro ao calcular resumo de vendas")
		return nil, newStorageError("Nao foi possivel calcular o resumo de vendas.")
	}
	if summary == nil {
		return nil, newNotFoundError("Influenciadora nao encontrada.")
	}

	summary.TotalNet = utils.RoundWithTwoDecimalPlace(summary.TotalNet)
	summary.TotalCommission = utils.RoundWithTwoDecimalPlace(summary.TotalCommission)

	return summary, nil
}

// Consultation devolve a visão geral do programa, servida do cache quando possível
func (s *Service) Consultation(ctx context.Context) ([]*domain.ConsultationRow, error) {
	cached, ok, err := s.consultation.Get(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao ler cache da consulta geral")
	}
	if err == nil && ok {
		return cached, nil
	}

	rows, err := s.saleRepo.ListAffiliateSummaries(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao montar consulta geral")
		return nil, newStorageError("Nao foi possivel carregar a consulta geral.")
	}

	for _, row := range rows {
		row.SalesTotalNet = utils.RoundWithTwoDecimalPlace(row.SalesTotalNet)
		row.SalesTotalCommission = utils.RoundWithTwoDecimalPlace(row.SalesTotalCommission)
	}

	if err := s.consultation.Set(ctx, rows, s.consultationTTL()); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar cache da consulta geral")
	}

	return rows, nil
}

// RefreshSummaries recalcula os totais gravados em cada influenciadora e
// recarrega o cache da consulta geral.
func (s *Service) RefreshSummaries(ctx context.Context) (int, error) {
	updated, err := s.saleRepo.RefreshAffiliateTotals(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao recalcular totais das influenciadoras")
		return 0, newStorageError("Nao foi possivel recalcular os totais.")
	}

	s.invalidateConsultation(ctx)

	if _, err := s.Consultation(ctx); err != nil {
		return updated, err
	}

	return updated, nil
}
