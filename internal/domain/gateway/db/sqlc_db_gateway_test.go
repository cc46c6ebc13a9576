package db

import (
	"context"
	"database/sql"
	"testing"

	"go-weather/internal/domain/model"

	_ "github.com/lib/pq"
)

func TestSQLCHealthWithoutDatabase(t *testing.T) {
	status := NewSQLCHealthDBGateway(nil).Health(context.Background())
	if status.Status != model.StatusUnknown {
		t.Errorf("expected UNKNOWN, got %s", status.Status)
	}
}

func TestSQLCHealthUnreachableDatabase(t *testing.T) {
	conn, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=weather dbname=weather sslmode=disable connect_timeout=1")
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer func() { _ = conn.Close() }()

	status := NewSQLCHealthDBGateway(conn).Health(context.Background())
	if status.Status != model.StatusDown {
		t.Errorf("expected DOWN, got %s", status.Status)
	}
	if status.Details["message"] == "" {
		t.Errorf("expected failure message in details")
	}
}
