package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harshpatel958/kontax/internal/client/models"
	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const cardColumns = `firstName, lastName, email, phone, organization,
	designation, linkedln, title, location, intent, date,
	notes, yourIntent, tags, voiceNote`

func (r *SQLiteRepository) Insert(ctx context.Context, card *models.Card) (int64, error) {
	query := `INSERT INTO cards (` + cardColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		card.FirstName, card.LastName, card.Email, card.Phone, card.Organization,
		card.Designation, card.LinkedIn, card.EventTitle, card.EventLocation,
		card.EventIntent, card.EventDate,
		card.Notes, card.YourIntent, models.JoinTags(card.Tags), card.VoiceNote)
	if err != nil {
		return 0, fmt.Errorf("%w: insert card: %v", common.ErrStorageUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: card id: %v", common.ErrStorageUnavailable, err)
	}
	card.ID = id
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Card, error) {
	query := `SELECT id, ` + cardColumns + ` FROM cards ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select cards: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []models.Card
	for rows.Next() {
		card, err := scanCard(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	query := `SELECT id, ` + cardColumns + ` FROM cards WHERE id = ?`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select card %d: %v", common.ErrStorageUnavailable, id, err)
	}
	return card, nil
}

// DeleteByID is idempotent: a missing id affects zero rows and that is fine.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete card: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

// scanCard reads one row in cardColumns order (preceded by id). Tags are
// split back into the list the merge step produced.
func scanCard(scan func(dest ...any) error) (*models.Card, error) {
	var c models.Card
	var tags string
	if err := scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Organization, &c.Designation, &c.LinkedIn, &c.EventTitle,
		&c.EventLocation, &c.EventIntent, &c.EventDate,
		&c.Notes, &c.YourIntent, &tags, &c.VoiceNote); err != nil {
		return nil, err
	}
	c.Tags = models.NormalizeTags(tags)
	return &c, nil
}
