package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mappulator-service/internal/domain"
	"strings"
)

// Dialect selects placeholder syntax for the supported SQL drivers.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDialect maps a DB_DRIVER value to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(driver))) {
	case DialectPostgres, "postgres":
		return DialectPostgres, nil
	case DialectSQLite, "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("parse dialect: unsupported driver %q", driver)
	}
}

// Return the n-th (1-based) bind placeholder.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Initialize the points_of_interest schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPOIQuery := `
	CREATE TABLE IF NOT EXISTS points_of_interest (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	`

	createTypeIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_points_of_interest_type
	ON points_of_interest(type);
	`

	statements := []string{
		createPOIQuery,
		createTypeIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedPOIs writes pois into points_of_interest keyed by position and removes
// rows beyond the dataset's length, so the table mirrors the given order.
func SeedPOIs(ctx context.Context, db *sql.DB, dialect Dialect, pois []domain.PointOfInterest) error {
	if db == nil {
		return errors.New("seed pois: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed pois: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO points_of_interest (
		position,
		name,
		type,
		latitude,
		longitude
	)
	VALUES (%s, %s, %s, %s, %s)
	ON CONFLICT (position) DO UPDATE
	SET name = EXCLUDED.name,
		type = EXCLUDED.type,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`,
		dialect.placeholder(1), dialect.placeholder(2), dialect.placeholder(3),
		dialect.placeholder(4), dialect.placeholder(5),
	)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed pois: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pois {
		if _, err := stmt.ExecContext(ctx, i, p.Name, string(p.Type), p.Coordinates.Latitude, p.Coordinates.Longitude); err != nil {
			return fmt.Errorf("seed pois: insert position=%d: %w", i, err)
		}
	}

	trim := fmt.Sprintf("DELETE FROM points_of_interest WHERE position >= %s;", dialect.placeholder(1))
	if _, err := tx.ExecContext(ctx, trim, len(pois)); err != nil {
		return fmt.Errorf("seed pois: trim stale rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pois: commit tx: %w", err)
	}

	return nil
}
