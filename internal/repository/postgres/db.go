// Package postgres implements the repository contracts against PostgreSQL.
// Every operation is a single round-trip; there are no client-side joins and
// no retries. Transport and query failures are wrapped with the operation
// name so callers can log them with context.
package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// Open connects to Postgres and verifies the connection with a ping.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// jsonb marshals an open map for a JSONB column. nil maps store as '{}' so
// containment filters behave uniformly.
func jsonb(m map[string]any) ([]byte, error) {
	if m == nil {
		m = map[string]any{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// scanJSONB unmarshals a JSONB column into a map. NULL and '{}' both yield
// a nil map.
func scanJSONB(raw []byte, dst *map[string]any) error {
	if len(raw) == 0 {
		return nil
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	if len(m) > 0 {
		*dst = m
	}
	return nil
}
