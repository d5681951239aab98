package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rvledder/inspecto/model"
)

type Templates struct {
	db DBTX
}

func NewTemplates(db DBTX) *Templates {
	return &Templates{db: db}
}

func (r *Templates) WithTx(tx *sql.Tx) *Templates {
	return &Templates{db: tx}
}

func (r *Templates) List(ctx context.Context) ([]model.Template, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.description, t.created_at, COUNT(q.id) AS question_count
		FROM templates t
		LEFT OUTER JOIN template_questions q ON (t.id = q.template_id)
		GROUP BY t.id
		ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []model.Template{}
	for rows.Next() {
		t := model.Template{}
		var description sql.NullString
		err = rows.Scan(&t.ID, &t.Name, &description, &t.CreatedAt, &t.QuestionCount)
		if err != nil {
			return nil, err
		}
		t.Description = description.String

		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *Templates) ByID(ctx context.Context, id int64) (t model.Template, err error) {
	var description sql.NullString
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at
		FROM templates
		WHERE id = ?`,
		id,
	).Scan(&t.ID, &t.Name, &description, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	t.Description = description.String
	return
}

func (r *Templates) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM templates WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *Templates) Insert(ctx context.Context, name, description string) (id int64, err error) {
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO templates (name, description) VALUES (?, ?)
		RETURNING id`,
		name,
		nullable(description),
	).Scan(&id)
	return
}

func (r *Templates) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
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

// InsertQuestions inserts every question with its position in qs as
// order_index.
func (r *Templates) InsertQuestions(ctx context.Context, templateID int64, qs []model.CreateQuestionRequest) error {
	stmt, err := r.db.PrepareContext(ctx, `
		INSERT INTO template_questions (template_id, question_text, question_type, options, required, order_index)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, q := range qs {
		options, err := marshalOptions(q.Options)
		if err != nil {
			return err
		}
		required := q.Required != nil && *q.Required

		_, err = stmt.ExecContext(ctx, templateID, q.QuestionText, q.QuestionType, options, required, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Templates) QuestionsByTemplate(ctx context.Context, templateID int64) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, template_id, question_text, question_type, options, required, order_index
		FROM template_questions
		WHERE template_id = ?
		ORDER BY order_index`,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q := model.Question{}
		var options sql.NullString
		err = rows.Scan(&q.ID, &q.TemplateID, &q.QuestionText, &q.QuestionType, &options, &q.Required, &q.OrderIndex)
		if err != nil {
			return nil, err
		}
		q.Options, err = unmarshalOptions(options)
		if err != nil {
			return nil, err
		}

		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *Templates) QuestionExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM template_questions WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *Templates) DeleteQuestions(ctx context.Context, templateID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM template_questions WHERE template_id = ?`, templateID)
	return err
}

// options are persisted as a JSON array, NULL when absent
func marshalOptions(options []string) (any, error) {
	if options == nil {
		return nil, nil
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	return string(raw), nil
}

func unmarshalOptions(options sql.NullString) ([]string, error) {
	if !options.Valid || options.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(options.String), &out); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	return out, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
