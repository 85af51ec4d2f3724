package types

import (
	"github.com/go-playground/validator/v10"
)

// MaxHistoryLimit caps the number of records returned by a history query.
const MaxHistoryLimit = 100

// AnalyzeRequest is the JSON body of an analysis request.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

// HistoryQuery holds the parameters of an analysis history listing.
type HistoryQuery struct {
	Limit int `validate:"min=1,max=100"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the HistoryQuery using the validator.
func (q *HistoryQuery) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}
