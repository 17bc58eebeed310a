package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harshpatel958/kontax/internal/client/migrations"
	"github.com/harshpatel958/kontax/internal/client/repositories/cards"
	"github.com/harshpatel958/kontax/internal/client/repositories/scans"
	"github.com/harshpatel958/kontax/internal/client/repositories/session"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Scans   scans.Repository
	Cards   cards.Repository
	Session session.Repository
	DB      *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		Scans:   scans.NewSQLiteRepository(db),
		Cards:   cards.NewSQLiteRepository(db),
		Session: session.NewSQLiteRepository(db),
		DB:      db,
	}
	return repos, nil
}
