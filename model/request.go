package model

// Request payloads. Mutating endpoints carry entity ids in the JSON body as
// strings; the service layer resolves them against the store.

type CreateTemplateRequest struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Questions   []CreateQuestionRequest `json:"questions"`
}

type CreateQuestionRequest struct {
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
	// Required is a pointer so a missing field can be told apart from false.
	Required *bool `json:"required"`
}

type CreatePropertyRequest struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type UpdatePropertyRequest struct {
	ID string `json:"id"`
	CreatePropertyRequest
}

type CreateInspectionRequest struct {
	ObjectID   string `json:"object_id"`
	TemplateID string `json:"template_id"`
}

type UpdateInspectionRequest struct {
	ID      string        `json:"id"`
	Answers []AnswerInput `json:"answers"`
	Status  string        `json:"status"`
}

type AnswerInput struct {
	QuestionID  string `json:"question_id"`
	AnswerValue string `json:"answer_value"`
}

type IDRequest struct {
	ID string `json:"id"`
}
