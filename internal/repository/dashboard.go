package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/codehook/dashboard/internal/model"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

// DashboardRepository reads what the dashboard pages display.
type DashboardRepository interface {
	CardCounts(ctx context.Context) (model.CardData, error)
	ListEndpoints(ctx context.Context) ([]model.Endpoint, error)
	ListProviders(ctx context.Context) ([]model.Provider, error)
	LatestEvents(ctx context.Context, limit int) ([]model.Event, error)
	EventHistory(ctx context.Context) ([]model.EventHistory, error)
}

type DashboardRepositoryImpl struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepositoryImpl {
	return &DashboardRepositoryImpl{db: db}
}

var _ DashboardRepository = (*DashboardRepositoryImpl)(nil)

// CardCounts runs the three counts concurrently.
func (r *DashboardRepositoryImpl) CardCounts(ctx context.Context) (model.CardData, error) {
	var d model.CardData
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range []struct {
		table string
		dst   *int64
	}{
		{"events", &d.NumberOfEvents},
		{"providers", &d.NumberOfProviders},
		{"endpoints", &d.NumberOfEndpoints},
	} {
		c := c
		g.Go(func() error {
			// table names come from the fixed list above
			if err := r.db.GetContext(gctx, c.dst, `SELECT COUNT(*) FROM `+c.table); err != nil {
				return fmt.Errorf("count %s: %w", c.table, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.CardData{}, err
	}
	return d, nil
}

func (r *DashboardRepositoryImpl) ListEndpoints(ctx context.Context) ([]model.Endpoint, error) {
	var rows []model.Endpoint
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, api_id, url
		  FROM endpoints
		 ORDER BY name
	`); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DashboardRepositoryImpl) ListProviders(ctx context.Context) ([]model.Provider, error) {
	var rows []model.Provider
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT we_id, source, events
		  FROM providers
		 ORDER BY source, we_id
	`); err != nil {
		return nil, err
	}
	return rows, nil
}

// LatestEvents orders by id descending; provider event ids sort by creation.
func (r *DashboardRepositoryImpl) LatestEvents(ctx context.Context, limit int) ([]model.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, type, provider, payload::text AS payload
		  FROM events
		 ORDER BY id DESC
		 LIMIT $1
	`, limit); err != nil {
		return nil, err
	}

	out := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		ev := model.Event{ID: row.ID, Type: row.Type, Provider: row.Provider}
		if row.Payload != nil {
			ev.Payload = []byte(*row.Payload)
		}
		out = append(out, ev)
	}
	return out, nil
}

// EventHistory returns rows in calendar month order.
func (r *DashboardRepositoryImpl) EventHistory(ctx context.Context) ([]model.EventHistory, error) {
	var rows []model.EventHistory
	if err := r.db.SelectContext(ctx, &rows, `SELECT month, events FROM event_history`); err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return model.MonthIndex(rows[i].Month) < model.MonthIndex(rows[j].Month)
	})
	return rows, nil
}

type eventRow struct {
	ID       string  `db:"id"`
	Type     string  `db:"type"`
	Provider string  `db:"provider"`
	Payload  *string `db:"payload"`
}
