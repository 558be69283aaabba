//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures work inside or outside a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const (
	DefaultOwnerEmail = "owner@retailplus.test"
	TestPassword      = "password123"
)

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO staff_users (id, email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (lower(email)) DO NOTHING`,
		staffID, email, TestPasswordHash, displayNameFor(email), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM staff_users WHERE lower(email) = lower($1)", email).Scan(&staffID)
		require.NoError(t, err)
	}

	return staffID
}

func DeactivateStaff(t *testing.T, db DBLike, staffID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE staff_users SET is_active = false WHERE id = $1", staffID)
	require.NoError(t, err)
}

func CreateTestProduct(t *testing.T, db DBLike, sku, name, unitPrice string, stock int) uuid.UUID {
	t.Helper()

	var productID uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO products (sku, name, unit_price, stock)
		VALUES ($1, $2, $3::numeric, $4) RETURNING id`, sku, name, unitPrice, stock).Scan(&productID)
	require.NoError(t, err)

	return productID
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)

	return stock
}

func RequestStatus(t *testing.T, db DBLike, requestID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reward_requests WHERE id = $1", requestID).Scan(&status)
	require.NoError(t, err)

	return status
}

func CountRedemptions(t *testing.T, db DBLike, requestID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reward_redemptions WHERE request_id = $1", requestID).Scan(&n)
	require.NoError(t, err)

	return n
}

func displayNameFor(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// inserts the reference data needed by tests: one business owner account
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO staff_users (email, password_hash, display_name, role, is_active)
		VALUES ($1, $2, 'Store Owner', 'business_owner', true)
		ON CONFLICT (lower(email)) DO NOTHING;
	`, DefaultOwnerEmail, TestPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// Today is the current UTC date as YYYY-MM-DD, the format report queries accept.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}
