package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/model"
	"github.com/rvledder/inspecto/store"
	"github.com/rvledder/inspecto/validate"
)

type TemplateService struct {
	db          *sql.DB
	templates   *store.Templates
	inspections *store.Inspections
}

func NewTemplateService(db *sql.DB) *TemplateService {
	return &TemplateService{
		db:          db,
		templates:   store.NewTemplates(db),
		inspections: store.NewInspections(db),
	}
}

func (s *TemplateService) List(ctx context.Context) ([]model.Template, error) {
	return s.templates.List(ctx)
}

func (s *TemplateService) ByID(ctx context.Context, id string) (*model.TemplateDetail, error) {
	templateID, ok := parseID(id)
	if !ok {
		return nil, apperr.NotFound("Template not found")
	}

	template, err := s.templates.ByID(ctx, templateID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Template not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	questions, err := s.templates.QuestionsByTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("get template questions: %w", err)
	}
	template.QuestionCount = len(questions)

	return &model.TemplateDetail{Template: template, Questions: questions}, nil
}

// Create validates the whole request before touching the store, then inserts
// the template row and its questions in one transaction. Question order_index
// is the position in the request.
func (s *TemplateService) Create(ctx context.Context, req model.CreateTemplateRequest) (*model.TemplateDetail, error) {
	if err := validate.Template(req); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	templates := s.templates.WithTx(tx)

	templateID, err := templates.Insert(ctx, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}

	err = templates.InsertQuestions(ctx, templateID, req.Questions)
	if err != nil {
		return nil, fmt.Errorf("insert template questions: %w", err)
	}

	template, err := templates.ByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("get created template: %w", err)
	}
	questions, err := templates.QuestionsByTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("get created template questions: %w", err)
	}
	template.QuestionCount = len(questions)

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &model.TemplateDetail{Template: template, Questions: questions}, nil
}

// Delete refuses to remove a template referenced by any inspection, then
// removes the questions and the template row in one transaction.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	templateID, ok := parseID(id)
	if !ok {
		return apperr.NotFound("Template not found")
	}

	exists, err := s.templates.Exists(ctx, templateID)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}
	if !exists {
		return apperr.NotFound("Template not found")
	}

	inUse, err := s.inspections.CountByTemplate(ctx, templateID)
	if err != nil {
		return fmt.Errorf("count template inspections: %w", err)
	}
	if inUse > 0 {
		return apperr.Conflict("Cannot delete template that is used in inspections")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	templates := s.templates.WithTx(tx)

	if err = templates.DeleteQuestions(ctx, templateID); err != nil {
		return fmt.Errorf("delete template questions: %w", err)
	}
	if err = templates.Delete(ctx, templateID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Template not found")
		}
		return fmt.Errorf("delete template: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
