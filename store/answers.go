package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rvledder/inspecto/model"
)

// Answers is keyed by (inspection_id, question_id): at most one row per
// question per inspection.
type Answers struct {
	db DBTX
}

func NewAnswers(db DBTX) *Answers {
	return &Answers{db: db}
}

func (r *Answers) WithTx(tx *sql.Tx) *Answers {
	return &Answers{db: tx}
}

// Lookup returns the id of the answer for (inspectionID, questionID), or
// ErrNotFound when none was recorded yet.
func (r *Answers) Lookup(ctx context.Context, inspectionID, questionID int64) (id int64, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT id FROM inspection_answers
		WHERE inspection_id = ?
			AND question_id = ?`,
		inspectionID,
		questionID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	return
}

func (r *Answers) Insert(ctx context.Context, inspectionID, questionID int64, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inspection_answers (inspection_id, question_id, answer_value)
		VALUES (?, ?, ?)`,
		inspectionID,
		questionID,
		value,
	)
	return err
}

func (r *Answers) Update(ctx context.Context, inspectionID, questionID int64, value string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE inspection_answers
		SET answer_value = ?
		WHERE inspection_id = ?
			AND question_id = ?`,
		value,
		inspectionID,
		questionID,
	)
	return err
}

func (r *Answers) DeleteByInspection(ctx context.Context, inspectionID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM inspection_answers WHERE inspection_id = ?`, inspectionID)
	return err
}

// QuestionsWithAnswers returns the template's questions in order, each
// decorated with the answer recorded for it in the given inspection, if any.
func (r *Answers) QuestionsWithAnswers(ctx context.Context, inspectionID, templateID int64) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			q.id, q.template_id, q.question_text, q.question_type, q.options, q.required, q.order_index,
			a.answer_value
		FROM template_questions q
		LEFT OUTER JOIN inspection_answers a ON (q.id = a.question_id AND a.inspection_id = ?)
		WHERE q.template_id = ?
		ORDER BY q.order_index`,
		inspectionID,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q := model.Question{}
		var options, answer sql.NullString
		err = rows.Scan(&q.ID, &q.TemplateID, &q.QuestionText, &q.QuestionType, &options, &q.Required, &q.OrderIndex, &answer)
		if err != nil {
			return nil, err
		}
		q.Options, err = unmarshalOptions(options)
		if err != nil {
			return nil, err
		}
		if answer.Valid {
			q.Answer = &answer.String
		}

		questions = append(questions, q)
	}
	return questions, rows.Err()
}
