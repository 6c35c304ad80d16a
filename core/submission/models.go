package submission

import "time"

type Submission struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	FileName      string    `json:"file_name" db:"file_name"`
	ExtractedText string    `json:"extracted_text" db:"extracted_text"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"` // UTC
}

// Summary is the listing shape; the extracted text is left out on purpose.
type Summary struct {
	ID        string    `json:"id" db:"id"`
	FileName  string    `json:"file_name" db:"file_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TeacherView is a Summary joined with the submitting student's name.
type TeacherView struct {
	ID          string    `json:"id" db:"id"`
	FileName    string    `json:"file_name" db:"file_name"`
	StudentName string    `json:"student_name" db:"student_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
