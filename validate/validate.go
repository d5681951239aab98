// Package validate holds the structural pre-condition checks run before any
// mutation reaches the store. Checks report the first violation encountered
// as an apperr.Invalid error.
package validate

import (
	"strings"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/model"
)

func Template(req model.CreateTemplateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Invalid("Template name is required")
	}
	if len(req.Questions) == 0 {
		return apperr.Invalid("At least one question is required")
	}
	return Questions(req.Questions)
}

func Questions(questions []model.CreateQuestionRequest) error {
	for _, q := range questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return apperr.Invalid("Question text is required for all questions")
		}
		if !validQuestionType(q.QuestionType) {
			return apperr.Invalid("Invalid question type: %s. Must be one of: %s",
				q.QuestionType, strings.Join(model.QuestionTypes, ", "))
		}
		if q.QuestionType == "single_choice" || q.QuestionType == "multi_choice" {
			if len(q.Options) < 2 {
				return apperr.Invalid("Choice questions must have at least 2 options")
			}
		}
		if q.Required == nil {
			return apperr.Invalid("Required field must be a boolean value")
		}
	}
	return nil
}

func validQuestionType(t string) bool {
	for _, valid := range model.QuestionTypes {
		if t == valid {
			return true
		}
	}
	return false
}

func Property(req model.CreatePropertyRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"street", req.Street},
		{"number", req.Number},
		{"city", req.City},
		{"postal_code", req.PostalCode},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Invalid("%s is required", f.name)
		}
	}
	return nil
}

func Inspection(req model.CreateInspectionRequest) error {
	if req.ObjectID == "" || req.TemplateID == "" {
		return apperr.Invalid("Object ID and Template ID are required")
	}
	if strings.TrimSpace(req.ObjectID) == "" || strings.TrimSpace(req.TemplateID) == "" {
		return apperr.Invalid("Object ID and Template ID must be valid strings")
	}
	return nil
}

func InspectionUpdate(req model.UpdateInspectionRequest) error {
	if err := Answers(req.Answers); err != nil {
		return err
	}
	if req.Status != "" && req.Status != model.StatusDraft && req.Status != model.StatusCompleted {
		return apperr.Invalid("Invalid status: %s. Must be one of: %s, %s",
			req.Status, model.StatusDraft, model.StatusCompleted)
	}
	return nil
}

func Answers(answers []model.AnswerInput) error {
	for _, a := range answers {
		if a.QuestionID == "" || a.AnswerValue == "" {
			return apperr.Invalid("Each answer must have question_id and answer_value")
		}
	}
	return nil
}
