package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type memResult int64

func (r memResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (r memResult) RowsAffected() (int64, error) { return int64(r), nil }

// brokenResult is returned by drivers that cannot report affected rows.
type brokenResult struct{ err error }

func (r brokenResult) LastInsertId() (int64, error) { return 0, r.err }
func (r brokenResult) RowsAffected() (int64, error) { return 0, r.err }

// memDB is an in-memory Execer that understands the seeder's statements and
// enforces key conflicts the way ON CONFLICT DO NOTHING does.
type memDB struct {
	mu         sync.Mutex
	extensions map[string]bool
	created    []string
	tables     map[string]map[string][]any
	userEmails map[string]bool
	inserts    int

	failOn      func(table string, args []any) error
	affectedErr error
	delay       time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newMemDB() *memDB {
	return &memDB{
		extensions: map[string]bool{},
		tables:     map[string]map[string][]any{},
		userEmails: map[string]bool{},
	}
}

var _ Execer = (*memDB)(nil)

func (m *memDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := strings.Join(strings.Fields(query), " ")
	tokens := strings.Fields(q)

	switch {
	case strings.HasPrefix(q, "CREATE EXTENSION IF NOT EXISTS "):
		m.mu.Lock()
		m.extensions[strings.Trim(tokens[5], `"`)] = true
		m.mu.Unlock()
		return memResult(0), nil

	case strings.HasPrefix(q, "CREATE TABLE IF NOT EXISTS "):
		name := tokens[5]
		m.mu.Lock()
		defer m.mu.Unlock()
		if strings.Contains(q, "uuid_generate_v4()") && !m.extensions["uuid-ossp"] {
			return nil, errors.New("function uuid_generate_v4() does not exist")
		}
		if _, ok := m.tables[name]; !ok {
			m.tables[name] = map[string][]any{}
			m.created = append(m.created, name)
		}
		return memResult(0), nil

	case strings.HasPrefix(q, "INSERT INTO "):
		return m.insert(tokens[2], args)
	}
	return nil, fmt.Errorf("memdb: unsupported statement %q", q)
}

func (m *memDB) insert(name string, args []any) (sql.Result, error) {
	cur := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		prev := m.maxInFlight.Load()
		if cur <= prev || m.maxInFlight.CompareAndSwap(prev, cur) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	if m.failOn != nil {
		if err := m.failOn(name, args); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++

	rows, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("relation %q does not exist", name)
	}
	key := fmt.Sprint(args[0])
	if _, dup := rows[key]; dup {
		return memResult(0), nil
	}
	if name == "users" {
		email := fmt.Sprint(args[2])
		if m.userEmails[email] {
			return memResult(0), nil
		}
		m.userEmails[email] = true
	}
	rows[key] = append([]any(nil), args...)
	if m.affectedErr != nil {
		return brokenResult{m.affectedErr}, nil
	}
	return memResult(1), nil
}

func (m *memDB) row(table, key string) ([]any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.tables[table][key]
	return r, ok
}

func (m *memDB) count(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tables[table])
}

func (m *memDB) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, rows := range m.tables {
		n += len(rows)
	}
	return n
}
