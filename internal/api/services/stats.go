package services

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"toolcrib/internal/domain"
	r "toolcrib/internal/redis"
	"toolcrib/internal/repository"
)

const (
	statsCacheTTL = 5 * time.Second

	fleetStatsKey = "fleet"
	adminStatsKey = "admin"
)

type StatsService struct {
	statsRepo  *repository.StatsRepository
	fleetCache r.Cache[domain.FleetStats]
	adminCache r.Cache[domain.AdminStats]
}

func NewStatsService(statsRepo *repository.StatsRepository, rdb *goredis.Client) *StatsService {
	return &StatsService{
		statsRepo:  statsRepo,
		fleetCache: r.NewJSONCache[domain.FleetStats](rdb, "stats:fleet", statsCacheTTL),
		adminCache: r.NewJSONCache[domain.AdminStats](rdb, "stats:admin", statsCacheTTL),
	}
}

func (s *StatsService) FleetStats(ctx context.Context) (*domain.FleetStats, error) {
	if cached, err := s.fleetCache.Get(ctx, fleetStatsKey); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := s.statsRepo.FleetStats()
	if err != nil {
		return nil, err
	}

	_ = s.fleetCache.Set(ctx, fleetStatsKey, stats)
	return stats, nil
}

func (s *StatsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	if cached, err := s.adminCache.Get(ctx, adminStatsKey); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := s.statsRepo.AdminStats()
	if err != nil {
		return nil, err
	}

	_ = s.adminCache.Set(ctx, adminStatsKey, stats)
	return stats, nil
}

// Invalidate drops both cached aggregates. Mutating handlers call this so
// stats reflect writes immediately instead of after the TTL.
func (s *StatsService) Invalidate(ctx context.Context) {
	_ = s.fleetCache.Delete(ctx, fleetStatsKey)
	_ = s.adminCache.Delete(ctx, adminStatsKey)
}
