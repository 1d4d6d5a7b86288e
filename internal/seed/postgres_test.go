package seed

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/codehook/dashboard/internal/db"
	"github.com/codehook/dashboard/internal/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Runs against CODEHOOK_TEST_POSTGRES_DSN; skipped when unset.
func TestRun_PostgresIdempotent(t *testing.T) {
	dsn := os.Getenv("CODEHOOK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CODEHOOK_TEST_POSTGRES_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pg, err := db.NewPostgresConnection(ctx, dsn, db.PostgresOpts{})
	require.NoError(t, err)
	defer pg.Close()

	s := New(pg, nil, Options{BcryptCost: bcrypt.MinCost})
	data := placeholder.Default()

	first, err := s.Run(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, data.Len(), first.Rows())

	second, err := s.Run(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, data.Len(), second.Rows())
	assert.Equal(t, 0, second.Inserted())

	for _, table := range tableOrder {
		var n int
		require.NoError(t, pg.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table))
		assert.GreaterOrEqual(t, n, first.Tables[indexOf(table)].Rows, table)
	}

	// no duplicate invoices on re-run
	var invoices int
	require.NoError(t, pg.GetContext(ctx, &invoices,
		`SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, data.Invoices[0].CustomerID))
	var want int
	for _, inv := range data.Invoices {
		if inv.CustomerID == data.Invoices[0].CustomerID {
			want++
		}
	}
	assert.Equal(t, want, invoices)
}

func indexOf(table string) int {
	for i, t := range tableOrder {
		if t == table {
			return i
		}
	}
	return -1
}
