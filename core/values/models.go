package values

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/curaedu/cura/core"
)

// Statement is an immutable prompt shown to students.
type Statement struct {
	ID   string `json:"id" db:"id"`
	Text string `json:"text" db:"text"`
}

// Response is one student's answer to one statement. Created once, never
// mutated, never deleted.
type Response struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	StatementID string    `json:"statement_id" db:"statement_id"`
	Stance      string    `json:"stance" db:"stance"`
	Text        string    `json:"response" db:"response_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewResponse contains information needed to answer a statement.
type NewResponse struct {
	StatementID string `json:"statement_id" validate:"required"`
	Stance      string `json:"stance" validate:"required"`
	Response    string `json:"response" validate:"required"`
}

func (nr *NewResponse) Validate(validate *validator.Validate) error {
	nr.Stance = core.CleanString(nr.Stance, true /* lower */)
	nr.Response = core.CleanString(nr.Response)
	return validate.Struct(nr)
}

// Reflection is the AI-generated reflection returned after a response.
type Reflection struct {
	Reflection string `json:"reflection"`
}
