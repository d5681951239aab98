package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/model"
	"github.com/rvledder/inspecto/store"
	"github.com/rvledder/inspecto/validate"
)

type InspectionService struct {
	db          *sql.DB
	inspections *store.Inspections
	objects     *store.Objects
	templates   *store.Templates
	answers     *store.Answers

	now func() time.Time
}

func NewInspectionService(db *sql.DB) *InspectionService {
	return &InspectionService{
		db:          db,
		inspections: store.NewInspections(db),
		objects:     store.NewObjects(db),
		templates:   store.NewTemplates(db),
		answers:     store.NewAnswers(db),
		now:         time.Now,
	}
}

func (s *InspectionService) List(ctx context.Context) ([]model.Inspection, error) {
	return s.inspections.List(ctx)
}

// ByID returns the inspection together with its template's ordered questions,
// each decorated with the answer recorded so far, if any.
func (s *InspectionService) ByID(ctx context.Context, id string) (*model.InspectionDetail, error) {
	inspectionID, ok := parseID(id)
	if !ok {
		return nil, apperr.NotFound("Inspection not found")
	}

	inspection, err := s.inspections.ByID(ctx, inspectionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Inspection not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get inspection: %w", err)
	}

	questions, err := s.answers.QuestionsWithAnswers(ctx, inspectionID, inspection.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("get inspection questions: %w", err)
	}

	return &model.InspectionDetail{Inspection: inspection, Questions: questions}, nil
}

// Create verifies both referenced entities exist before inserting; a missing
// reference is the caller's mistake, not ours, so it reports as a bad
// request rather than a lookup miss.
func (s *InspectionService) Create(ctx context.Context, req model.CreateInspectionRequest) (*model.Inspection, error) {
	if err := validate.Inspection(req); err != nil {
		return nil, err
	}

	objectID, ok := parseID(req.ObjectID)
	if !ok {
		return nil, apperr.Invalid("Object not found")
	}
	exists, err := s.objects.Exists(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	if !exists {
		return nil, apperr.Invalid("Object not found")
	}

	templateID, ok := parseID(req.TemplateID)
	if !ok {
		return nil, apperr.Invalid("Template not found")
	}
	exists, err = s.templates.Exists(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	if !exists {
		return nil, apperr.Invalid("Template not found")
	}

	inspectionID, err := s.inspections.Insert(ctx, objectID, templateID)
	if err != nil {
		return nil, fmt.Errorf("insert inspection: %w", err)
	}

	inspection, err := s.inspections.ByID(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("get created inspection: %w", err)
	}
	return &inspection, nil
}

// Update applies answer upserts and/or a status change. Applying the same
// answer list twice yields the same final state: one row per
// (inspection, question). completed_at is set exactly when the new status
// is "completed".
func (s *InspectionService) Update(ctx context.Context, req model.UpdateInspectionRequest) (*model.InspectionDetail, error) {
	inspectionID, ok := parseID(req.ID)
	if !ok {
		return nil, apperr.NotFound("Inspection not found")
	}

	if err := validate.InspectionUpdate(req); err != nil {
		return nil, err
	}

	if _, err := s.inspections.ByID(ctx, inspectionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Inspection not found")
		}
		return nil, fmt.Errorf("get inspection: %w", err)
	}

	// resolve every referenced question before mutating anything
	questionIDs := make([]int64, len(req.Answers))
	for i, a := range req.Answers {
		questionID, ok := parseID(a.QuestionID)
		if ok {
			var err error
			ok, err = s.templates.QuestionExists(ctx, questionID)
			if err != nil {
				return nil, fmt.Errorf("get question: %w", err)
			}
		}
		if !ok {
			return nil, apperr.Invalid("Question with ID %s not found", a.QuestionID)
		}
		questionIDs[i] = questionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	answers := s.answers.WithTx(tx)
	for i, a := range req.Answers {
		questionID := questionIDs[i]

		_, err := answers.Lookup(ctx, inspectionID, questionID)
		switch {
		case err == nil:
			err = answers.Update(ctx, inspectionID, questionID, a.AnswerValue)
		case errors.Is(err, store.ErrNotFound):
			err = answers.Insert(ctx, inspectionID, questionID, a.AnswerValue)
		}
		if err != nil {
			return nil, fmt.Errorf("upsert answer: %w", err)
		}
	}

	if req.Status != "" {
		var completedAt *time.Time
		if req.Status == model.StatusCompleted {
			now := s.now()
			completedAt = &now
		}
		err = s.inspections.WithTx(tx).UpdateStatus(ctx, inspectionID, req.Status, completedAt)
		if err != nil {
			return nil, fmt.Errorf("update inspection status: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.ByID(ctx, req.ID)
}

// Delete removes the answers first, then the inspection row.
func (s *InspectionService) Delete(ctx context.Context, id string) error {
	inspectionID, ok := parseID(id)
	if !ok {
		return apperr.NotFound("Inspection not found")
	}

	if _, err := s.inspections.ByID(ctx, inspectionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Inspection not found")
		}
		return fmt.Errorf("get inspection: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = s.answers.WithTx(tx).DeleteByInspection(ctx, inspectionID); err != nil {
		return fmt.Errorf("delete inspection answers: %w", err)
	}
	if err = s.inspections.WithTx(tx).Delete(ctx, inspectionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Inspection not found")
		}
		return fmt.Errorf("delete inspection: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
