package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rvledder/inspecto/model"
)

// Objects is the repository for properties, which live in the "objects"
// table (the name the API exposes them under).
type Objects struct {
	db DBTX
}

func NewObjects(db DBTX) *Objects {
	return &Objects{db: db}
}

func (r *Objects) WithTx(tx *sql.Tx) *Objects {
	return &Objects{db: tx}
}

func (r *Objects) List(ctx context.Context) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.name, o.street, o.number, o.city, o.postal_code, o.created_at,
			COUNT(i.id) AS inspection_count
		FROM objects o
		LEFT OUTER JOIN inspections i ON (o.id = i.object_id)
		GROUP BY o.id
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		p := model.Property{}
		err = rows.Scan(&p.ID, &p.Name, &p.Street, &p.Number, &p.City, &p.PostalCode, &p.CreatedAt, &p.InspectionCount)
		if err != nil {
			return nil, err
		}

		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *Objects) ByID(ctx context.Context, id int64) (p model.Property, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, street, number, city, postal_code, created_at
		FROM objects
		WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Street, &p.Number, &p.City, &p.PostalCode, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	return
}

func (r *Objects) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM objects WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *Objects) Insert(ctx context.Context, req model.CreatePropertyRequest) (id int64, err error) {
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO objects (name, street, number, city, postal_code)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`,
		req.Name,
		req.Street,
		req.Number,
		req.City,
		req.PostalCode,
	).Scan(&id)
	return
}

func (r *Objects) Update(ctx context.Context, id int64, req model.CreatePropertyRequest) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE objects
		SET
			name = ?,
			street = ?,
			number = ?,
			city = ?,
			postal_code = ?
		WHERE id = ?`,
		req.Name,
		req.Street,
		req.Number,
		req.City,
		req.PostalCode,
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

func (r *Objects) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM objects WHERE id = ?`, id)
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
