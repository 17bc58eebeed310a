package scans

import (
	"context"
	"fmt"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/dbx"
	"github.com/harshpatel958/kontax/internal/payload"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, rec payload.Record) (int64, error) {
	query := `INSERT INTO scans (firstName, lastName, email, phone, organization,
			designation, linkedln, title, location, intent, date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		rec.FirstName, rec.LastName, rec.Email, rec.Phone, rec.Organization,
		rec.Designation, rec.LinkedIn, rec.EventTitle, rec.EventLocation,
		rec.EventIntent, rec.EventDate)
	if err != nil {
		return 0, fmt.Errorf("%w: append scan: %v", common.ErrStorageUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: scan id: %v", common.ErrStorageUnavailable, err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]Entry, error) {
	query := `SELECT id, firstName, lastName, email, phone, organization,
			designation, linkedln, title, location, intent, date
			FROM scans ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select scans: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Record.FirstName, &e.Record.LastName,
			&e.Record.Email, &e.Record.Phone, &e.Record.Organization,
			&e.Record.Designation, &e.Record.LinkedIn, &e.Record.EventTitle,
			&e.Record.EventLocation, &e.Record.EventIntent, &e.Record.EventDate); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID is idempotent: a missing id affects zero rows and that is fine.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete scan: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
