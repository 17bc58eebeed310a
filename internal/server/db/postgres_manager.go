package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/harshpatel958/kontax/internal/server/cards"
	"github.com/harshpatel958/kontax/internal/server/devices"
	"github.com/harshpatel958/kontax/internal/server/migrations"
	"github.com/harshpatel958/kontax/internal/server/refreshtokens"
)

type PostgresRepositoryManager struct {
	db            *sql.DB
	devices       devices.Repository
	refreshTokens refreshtokens.Repository
	cards         cards.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Devices() devices.Repository {
	return m.devices
}

func (m *PostgresRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

func (m *PostgresRepositoryManager) Cards() cards.Repository {
	return m.cards
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	deviceRepo, err := devices.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("device repo creation error: %w", err)
	}

	refreshTokenRepo, err := refreshtokens.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("refresh token repo creation error: %w", err)
	}

	cardRepo, err := cards.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("card repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		devices:       deviceRepo,
		refreshTokens: refreshTokenRepo,
		cards:         cardRepo,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
