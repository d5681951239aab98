package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/model"
)

func boolPtr(b bool) *bool {
	return &b
}

func validQuestion() model.CreateQuestionRequest {
	return model.CreateQuestionRequest{
		QuestionText: "Property condition",
		QuestionType: "string",
		Required:     boolPtr(true),
	}
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CreateTemplateRequest
		wantErr string
	}{
		{
			name: "valid",
			req: model.CreateTemplateRequest{
				Name:      "Basic Property Inspection",
				Questions: []model.CreateQuestionRequest{validQuestion()},
			},
		},
		{
			name:    "missing name",
			req:     model.CreateTemplateRequest{Questions: []model.CreateQuestionRequest{validQuestion()}},
			wantErr: "Template name is required",
		},
		{
			name:    "blank name",
			req:     model.CreateTemplateRequest{Name: "   ", Questions: []model.CreateQuestionRequest{validQuestion()}},
			wantErr: "Template name is required",
		},
		{
			name:    "no questions",
			req:     model.CreateTemplateRequest{Name: "T"},
			wantErr: "At least one question is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Template(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
		})
	}
}

func TestQuestions(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(q *model.CreateQuestionRequest)
		wantErr  string
	}{
		{
			name:   "valid string question",
			mutate: func(q *model.CreateQuestionRequest) {},
		},
		{
			name: "valid choice question",
			mutate: func(q *model.CreateQuestionRequest) {
				q.QuestionType = "single_choice"
				q.Options = []string{"Good", "Poor"}
			},
		},
		{
			name:    "empty text",
			mutate:  func(q *model.CreateQuestionRequest) { q.QuestionText = " " },
			wantErr: "Question text is required for all questions",
		},
		{
			name:    "unknown type",
			mutate:  func(q *model.CreateQuestionRequest) { q.QuestionType = "rating" },
			wantErr: "Invalid question type: rating. Must be one of: date, string, numeric, single_choice, multi_choice",
		},
		{
			name: "single_choice with one option",
			mutate: func(q *model.CreateQuestionRequest) {
				q.QuestionType = "single_choice"
				q.Options = []string{"Good"}
			},
			wantErr: "Choice questions must have at least 2 options",
		},
		{
			name: "multi_choice without options",
			mutate: func(q *model.CreateQuestionRequest) {
				q.QuestionType = "multi_choice"
			},
			wantErr: "Choice questions must have at least 2 options",
		},
		{
			name:    "missing required flag",
			mutate:  func(q *model.CreateQuestionRequest) { q.Required = nil },
			wantErr: "Required field must be a boolean value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)

			err := Questions([]model.CreateQuestionRequest{q})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestQuestionsReportsFirstError(t *testing.T) {
	bad1 := validQuestion()
	bad1.QuestionText = ""
	bad2 := validQuestion()
	bad2.QuestionType = "rating"

	err := Questions([]model.CreateQuestionRequest{bad1, bad2})
	assert.EqualError(t, err, "Question text is required for all questions")
}

func TestProperty(t *testing.T) {
	valid := model.CreatePropertyRequest{
		Name:       "P1",
		Street:     "Main",
		Number:     "1",
		City:       "X",
		PostalCode: "00000",
	}
	assert.NoError(t, Property(valid))

	tests := []struct {
		field   string
		mutate  func(p *model.CreatePropertyRequest)
	}{
		{"name", func(p *model.CreatePropertyRequest) { p.Name = "" }},
		{"street", func(p *model.CreatePropertyRequest) { p.Street = "  " }},
		{"number", func(p *model.CreatePropertyRequest) { p.Number = "" }},
		{"city", func(p *model.CreatePropertyRequest) { p.City = "" }},
		{"postal_code", func(p *model.CreatePropertyRequest) { p.PostalCode = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.EqualError(t, Property(p), tt.field+" is required")
		})
	}
}

func TestInspection(t *testing.T) {
	assert.NoError(t, Inspection(model.CreateInspectionRequest{ObjectID: "1", TemplateID: "2"}))

	err := Inspection(model.CreateInspectionRequest{ObjectID: "1"})
	assert.EqualError(t, err, "Object ID and Template ID are required")

	err = Inspection(model.CreateInspectionRequest{ObjectID: " ", TemplateID: "2"})
	assert.EqualError(t, err, "Object ID and Template ID must be valid strings")
}

func TestInspectionUpdate(t *testing.T) {
	assert.NoError(t, InspectionUpdate(model.UpdateInspectionRequest{ID: "1"}))
	assert.NoError(t, InspectionUpdate(model.UpdateInspectionRequest{ID: "1", Status: "completed"}))
	assert.NoError(t, InspectionUpdate(model.UpdateInspectionRequest{
		ID:      "1",
		Answers: []model.AnswerInput{{QuestionID: "2", AnswerValue: "ok"}},
	}))

	err := InspectionUpdate(model.UpdateInspectionRequest{ID: "1", Status: "done"})
	assert.EqualError(t, err, "Invalid status: done. Must be one of: draft, completed")

	err = InspectionUpdate(model.UpdateInspectionRequest{
		ID:      "1",
		Answers: []model.AnswerInput{{QuestionID: "2"}},
	})
	assert.EqualError(t, err, "Each answer must have question_id and answer_value")
}
