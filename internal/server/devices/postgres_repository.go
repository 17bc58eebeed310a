package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harshpatel958/kontax/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, device *Device) (*Device, error) {

	query :=
		`INSERT INTO devices (username, password_hash)
         VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		device.UserName, device.PasswordHash).Scan(&device.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return device, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, userName string) (*Device, error) {
	query :=
		`SELECT id, username, password_hash FROM devices
		 WHERE username = $1
		 `

	device := &Device{}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&device.ID, &device.UserName, &device.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return device, nil
}
