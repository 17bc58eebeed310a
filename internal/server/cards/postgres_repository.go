package cards

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

func (r *PostgresRepository) Create(ctx context.Context, card *Card) (*Card, error) {

	query :=
		`INSERT INTO published_cards
		 (device_id, firstName, lastName, email, phone, organization, designation, linkedln, title, date, location, intent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		card.DeviceID, card.FirstName, card.LastName, card.Email, card.Phone,
		card.Organization, card.Designation, card.LinkedIn,
		card.Title, card.Date, card.Location, card.Intent).Scan(&card.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return card, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Card, error) {
	query :=
		`SELECT id, device_id, firstName, lastName, email, phone, organization, designation, linkedln, title, date, location, intent, created_at
		 FROM published_cards
		 WHERE id = $1
		 `

	card := &Card{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID, &card.DeviceID, &card.FirstName, &card.LastName, &card.Email, &card.Phone,
		&card.Organization, &card.Designation, &card.LinkedIn,
		&card.Title, &card.Date, &card.Location, &card.Intent, &card.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return card, nil
}
