// Package cache contém o cache do ranking de comissões
package cache

import (
	"context"

	"github.com/kleandaily/klean-daily-api/internal/domain"
)

const rankingKeyPrefix = "klean:ranking:"

type RankingCache interface {
	Get(ctx context.Context, period string) (*domain.SellerRanking, bool, error)
	Set(ctx context.Context, period string, value *domain.SellerRanking) error
	Delete(ctx context.Context, period string) error
}

func rankingKey(period string) string {
	return rankingKeyPrefix + period
}

// NoopRankingCache é usado quando o Redis não está configurado
type NoopRankingCache struct{}

func (NoopRankingCache) Get(_ context.Context, _ string) (*domain.SellerRanking, bool, error) {
	return nil, false, nil
}

func (NoopRankingCache) Set(_ context.Context, _ string, _ *domain.SellerRanking) error {
	return nil
}

func (NoopRankingCache) Delete(_ context.Context, _ string) error {
	return nil
}
