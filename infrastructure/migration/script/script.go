package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/normalize"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
)

// Colunas do arquivo de carga: nome;instagram;cupom;comissao
const (
	seedColumnName = iota
	seedColumnInstagram
	seedColumnCoupon
	seedColumnCommission
)

func main() {
	seedFile := flag.String("seed", "", "arquivo CSV/TSV com influenciadoras (nome;instagram;cupom;comissao)")
	masterToken := flag.Int64("master-token", 0, "emite um token de master para o ID de usuário informado")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if *masterToken > 0 {
		token, err := authenticating.NewService(cfg).GenerateToken(*masterToken, "master", domain.RoleMaster)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token do master")
		}
		fmt.Println(token)
	}

	if cfg.Database.Driver != config.DriverPostgres {
		logrus.Infof("Driver %s não usa migração; nada a fazer", cfg.Database.Driver)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o esquema")
	}
	logrus.Infof("Esquema aplicado em %v", time.Since(startTime))

	if *seedFile == "" {
		return
	}

	content, err := os.ReadFile(*seedFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler arquivo de carga")
	}

	directory := affiliate.NewService(repository.NewAffiliateRepository(conn), nil)
	seedAffiliates(ctx, directory, string(content))
}

func seedAffiliates(ctx context.Context, directory affiliate.AffiliateDirectory, content string) {
	lines := normalize.CleanText(content)
	logrus.Infof("Iniciando carga de %d linhas de influenciadoras...", len(lines))

	var delimiter normalize.Delimiter
	first := true
	successCount := 0
	errorCount := 0

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		isFirst := first
		if first {
			delimiter = normalize.DetectDelimiter(line)
			first = false
		}

		cells := normalize.SplitLine(line, delimiter)
		input := domain.AffiliateInput{
			Name:           cell(cells, seedColumnName),
			Instagram:      cell(cells, seedColumnInstagram),
			Coupon:         cell(cells, seedColumnCoupon),
			CommissionRate: cell(cells, seedColumnCommission),
		}

		if isFirst && normalize.HeaderToken(input.Name) == "nome" {
			continue
		}

		created, err := directory.Create(ctx, input)
		if err != nil {
			var affErr *affiliate.AffiliateError
			if errors.As(err, &affErr) {
				logrus.Warnf("Linha %d ignorada (%s): %s", i+1, input.Instagram, affErr.Details)
			} else {
				logrus.WithError(err).Errorf("ERRO ao inserir linha %d", i+1)
			}
			errorCount++
			continue
		}

		successCount++
		logrus.WithField("affiliate_id", created.ID).Debugf("Influenciadora %s cadastrada", created.Instagram)
	}

	logrus.Infof("Carga concluída. Sucesso: %d, Erros: %d", successCount, errorCount)
}

func cell(cells []string, index int) string {
	if index >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[index])
}
