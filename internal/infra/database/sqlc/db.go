package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-weather/pkg/resource"

	_ "github.com/lib/pq"
)

// Open opens and pings a lib/pq pool for the app.db.* properties
func Open(ctx context.Context) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		resource.GetString("app.db.schema"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(resource.GetInt("app.db.max-open-conns"))
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}
