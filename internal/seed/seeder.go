// Package seed creates the dashboard schema and inserts the placeholder
// dataset. Every statement is conditional, so running it repeatedly is safe.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/codehook/dashboard/internal/metrics"
	"github.com/codehook/dashboard/internal/placeholder"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const defaultMaxInFlight = 4

// Execer is satisfied by *sqlx.DB, *sql.DB and their transactions.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Options struct {
	MaxInFlight int // concurrent inserts per table (default 4)
	BcryptCost  int // default bcrypt.DefaultCost
}

type Seeder struct {
	db          Execer
	log         *zap.Logger
	maxInFlight int
	bcryptCost  int
}

func New(db Execer, log *zap.Logger, opts Options) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = defaultMaxInFlight
	}
	if opts.BcryptCost <= 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Seeder{
		db:          db,
		log:         log,
		maxInFlight: opts.MaxInFlight,
		bcryptCost:  opts.BcryptCost,
	}
}

// TableReport describes the outcome for one table. Inserted excludes rows
// skipped on key conflict.
type TableReport struct {
	Table    string
	Rows     int
	Inserted int
}

type Report struct {
	Tables []TableReport
}

func (r Report) Inserted() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Inserted
	}
	return n
}

func (r Report) Rows() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Rows
	}
	return n
}

// Run seeds every table in order and stops at the first failing table.
// Tables completed before the failure stay committed; the returned report
// covers them.
func (s *Seeder) Run(ctx context.Context, data placeholder.Dataset) (Report, error) {
	var rep Report
	for _, t := range tables(data, s.hashPassword) {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		tr, err := s.seedTable(ctx, t)
		if err != nil {
			return rep, err
		}
		rep.Tables = append(rep.Tables, tr)
	}
	return rep, nil
}

// EnsureSchema applies only the DDL half of Run.
func (s *Seeder) EnsureSchema(ctx context.Context) error {
	for _, t := range tables(placeholder.Dataset{}, s.hashPassword) {
		if err := s.createTable(ctx, t); err != nil {
			s.log.Error("error creating table", zap.String("table", t.name), zap.Error(err))
			return fmt.Errorf("create %s: %w", t.name, err)
		}
	}
	return nil
}

func (s *Seeder) createTable(ctx context.Context, t table) error {
	if t.needsUUID {
		if _, err := s.db.ExecContext(ctx, createUUIDExtension); err != nil {
			return fmt.Errorf("create extension: %w", err)
		}
	}
	if _, err := s.db.ExecContext(ctx, t.create); err != nil {
		return err
	}
	s.log.Info("created table", zap.String("table", t.name))
	return nil
}

func (s *Seeder) seedTable(ctx context.Context, t table) (TableReport, error) {
	rep := TableReport{Table: t.name, Rows: len(t.rows)}

	fail := func(err error) (TableReport, error) {
		s.log.Error("error seeding table", zap.String("table", t.name), zap.Error(err))
		return rep, fmt.Errorf("seed %s: %w", t.name, err)
	}

	if err := s.createTable(ctx, t); err != nil {
		return fail(err)
	}

	var inserted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)
	for i, row := range t.rows {
		i, row := i, row
		g.Go(func() error {
			// a sibling already failed
			if err := gctx.Err(); err != nil {
				return err
			}
			args, err := row()
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			res, err := s.db.ExecContext(gctx, t.insert, args...)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("row %d: rows affected: %w", i, err)
			}
			if n > 0 {
				inserted.Add(1)
				metrics.SeedRowsTotal.WithLabelValues(t.name, "inserted").Inc()
			} else {
				metrics.SeedRowsTotal.WithLabelValues(t.name, "skipped").Inc()
			}
			return nil
		})
	}
	err := g.Wait()
	rep.Inserted = int(inserted.Load())
	if err != nil {
		return fail(err)
	}

	s.log.Info("seeded table",
		zap.String("table", t.name),
		zap.Int("rows", rep.Rows),
		zap.Int("inserted", rep.Inserted),
	)
	return rep, nil
}

func (s *Seeder) hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}
