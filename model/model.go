package model

import "time"

const (
	StatusDraft     = "draft"
	StatusCompleted = "completed"
)

// QuestionTypes lists the accepted values of Question.QuestionType.
var QuestionTypes = []string{"date", "string", "numeric", "single_choice", "multi_choice"}

type Template struct {
	ID            int64     `json:"id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count"`
}

type Question struct {
	ID           int64    `json:"id,omitempty"`
	TemplateID   int64    `json:"template_id,omitempty"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options,omitempty"`
	Required     bool     `json:"required"`
	OrderIndex   int      `json:"order_index"`

	// Answer is only populated on inspection detail reads, when an answer
	// exists for this question in that inspection.
	Answer *string `json:"answer,omitempty"`
}

type TemplateDetail struct {
	Template
	Questions []Question `json:"questions"`
}

// Property is one inspectable location, persisted in the "objects" table.
type Property struct {
	ID              int64     `json:"id,omitempty"`
	Name            string    `json:"name"`
	Street          string    `json:"street"`
	Number          string    `json:"number"`
	City            string    `json:"city"`
	PostalCode      string    `json:"postal_code"`
	CreatedAt       time.Time `json:"created_at"`
	InspectionCount int       `json:"inspection_count"`
}

type Inspection struct {
	ID          int64      `json:"id,omitempty"`
	ObjectID    int64      `json:"object_id"`
	TemplateID  int64      `json:"template_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// list decorations from the referenced object and template
	ObjectName   string `json:"object_name,omitempty"`
	TemplateName string `json:"template_name,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

type InspectionDetail struct {
	Inspection
	Questions []Question `json:"questions"`
}

type Answer struct {
	ID           int64     `json:"id,omitempty"`
	InspectionID int64     `json:"inspection_id"`
	QuestionID   int64     `json:"question_id"`
	AnswerValue  string    `json:"answer_value"`
	CreatedAt    time.Time `json:"created_at"`
}
