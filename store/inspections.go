package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rvledder/inspecto/model"
)

type Inspections struct {
	db DBTX
}

func NewInspections(db DBTX) *Inspections {
	return &Inspections{db: db}
}

func (r *Inspections) WithTx(tx *sql.Tx) *Inspections {
	return &Inspections{db: tx}
}

func (r *Inspections) List(ctx context.Context) ([]model.Inspection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			i.id, i.object_id, i.template_id, i.status, i.created_at, i.completed_at,
			o.name AS object_name, t.name AS template_name,
			o.street, o.number, o.city, o.postal_code
		FROM inspections i
		LEFT OUTER JOIN objects o ON (i.object_id = o.id)
		LEFT OUTER JOIN templates t ON (i.template_id = t.id)
		ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inspections := []model.Inspection{}
	for rows.Next() {
		i := model.Inspection{}
		var completedAt sql.NullTime
		var objectName, templateName, street, number, city, postalCode sql.NullString
		err = rows.Scan(
			&i.ID, &i.ObjectID, &i.TemplateID, &i.Status, &i.CreatedAt, &completedAt,
			&objectName, &templateName,
			&street, &number, &city, &postalCode,
		)
		if err != nil {
			return nil, err
		}
		if completedAt.Valid {
			i.CompletedAt = &completedAt.Time
		}
		i.ObjectName = objectName.String
		i.TemplateName = templateName.String
		i.Street = street.String
		i.Number = number.String
		i.City = city.String
		i.PostalCode = postalCode.String

		inspections = append(inspections, i)
	}
	return inspections, rows.Err()
}

func (r *Inspections) ByID(ctx context.Context, id int64) (i model.Inspection, err error) {
	var completedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, `
		SELECT id, object_id, template_id, status, created_at, completed_at
		FROM inspections
		WHERE id = ?`,
		id,
	).Scan(&i.ID, &i.ObjectID, &i.TemplateID, &i.Status, &i.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	if completedAt.Valid {
		i.CompletedAt = &completedAt.Time
	}
	return
}

func (r *Inspections) Insert(ctx context.Context, objectID, templateID int64) (id int64, err error) {
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO inspections (object_id, template_id, status) VALUES (?, ?, 'draft')
		RETURNING id`,
		objectID,
		templateID,
	).Scan(&id)
	return
}

// UpdateStatus sets the status and completed_at together; completedAt must
// be non-nil exactly when status is "completed".
func (r *Inspections) UpdateStatus(ctx context.Context, id int64, status string, completedAt *time.Time) error {
	var completed sql.NullTime
	if completedAt != nil {
		completed = sql.NullTime{Time: *completedAt, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE inspections
		SET
			status = ?,
			completed_at = ?
		WHERE id = ?`,
		status,
		completed,
		id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Inspections) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inspections WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (r *Inspections) CountByObject(ctx context.Context, objectID int64) (n int, err error) {
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inspections WHERE object_id = ?`, objectID).Scan(&n)
	return
}

func (r *Inspections) CountByTemplate(ctx context.Context, templateID int64) (n int, err error) {
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inspections WHERE template_id = ?`, templateID).Scan(&n)
	return
}
