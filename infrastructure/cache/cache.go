// Package cache guarda a consulta geral das influenciadoras
package cache

import (
	"context"
	"time"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

const ConsultationKey = "influencer-sales:consultation"

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks -source=cache.go
type ConsultationCache interface {
	Get(ctx context.Context) ([]*domain.ConsultationRow, bool, error)
	Set(ctx context.Context, rows []*domain.ConsultationRow, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// NoopConsultationCache é usado quando o Redis não está configurado
type NoopConsultationCache struct{}

func (NoopConsultationCache) Get(_ context.Context) ([]*domain.ConsultationRow, bool, error) {
	return nil, false, nil
}

func (NoopConsultationCache) Set(_ context.Context, _ []*domain.ConsultationRow, _ time.Duration) error {
	return nil
}

func (NoopConsultationCache) Invalidate(_ context.Context) error {
	return nil
}
