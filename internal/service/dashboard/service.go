package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codehook/dashboard/internal/cache"
	"github.com/codehook/dashboard/internal/metrics"
	"github.com/codehook/dashboard/internal/model"
	"github.com/codehook/dashboard/internal/repository"
	"go.uber.org/zap"
)

// Overview is everything the /dashboard page renders.
type Overview struct {
	Cards   model.CardData
	Latest  []model.Event
	History []model.EventHistory
}

// Service assembles dashboard data. The card cache is optional.
type Service struct {
	repo         repository.DashboardRepository
	cache        cache.CardCache
	cacheTTL     time.Duration
	latestEvents int
	log          *zap.Logger
}

type Options struct {
	CardsCacheTTL time.Duration
	LatestEvents  int
}

// New constructs the dashboard service. cardCache may be nil.
func New(repo repository.DashboardRepository, cardCache cache.CardCache, log *zap.Logger, opts Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.LatestEvents <= 0 {
		opts.LatestEvents = 10
	}
	return &Service{
		repo:         repo,
		cache:        cardCache,
		cacheTTL:     opts.CardsCacheTTL,
		latestEvents: opts.LatestEvents,
		log:          log,
	}
}

// FetchCardData returns the summary counts, reading through the cache when
// one is configured. Cache failures are logged and never fail the call.
func (s *Service) FetchCardData(ctx context.Context) (model.CardData, error) {
	useCache := s.cache != nil && s.cacheTTL > 0

	if useCache {
		d, ok, err := s.cache.Get(ctx)
		switch {
		case errors.Is(err, cache.ErrBreakerOpen):
			metrics.CardCacheTotal.WithLabelValues("bypass").Inc()
		case err != nil:
			metrics.CardCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn("card cache get failed", zap.Error(err))
		case ok:
			metrics.CardCacheTotal.WithLabelValues("hit").Inc()
			return d, nil
		default:
			metrics.CardCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	d, err := s.repo.CardCounts(ctx)
	if err != nil {
		return model.CardData{}, fmt.Errorf("card counts: %w", err)
	}

	if useCache {
		if err := s.cache.Set(ctx, d, s.cacheTTL); err != nil && !errors.Is(err, cache.ErrBreakerOpen) {
			s.log.Warn("card cache set failed", zap.Error(err))
		}
	}
	return d, nil
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	cards, err := s.FetchCardData(ctx)
	if err != nil {
		return Overview{}, err
	}
	latest, err := s.repo.LatestEvents(ctx, s.latestEvents)
	if err != nil {
		return Overview{}, fmt.Errorf("latest events: %w", err)
	}
	history, err := s.repo.EventHistory(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("event history: %w", err)
	}
	return Overview{Cards: cards, Latest: latest, History: history}, nil
}

func (s *Service) Endpoints(ctx context.Context) ([]model.Endpoint, error) {
	rows, err := s.repo.ListEndpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("list endpoints: %w", err)
	}
	return rows, nil
}

func (s *Service) Providers(ctx context.Context) ([]model.Provider, error) {
	rows, err := s.repo.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return rows, nil
}
