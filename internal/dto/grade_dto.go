package dto

// GradeEntryRequest describes the payload for entering or overwriting a
// grade. The [0, 100] range is a domain rule enforced by the service so it
// can be reported distinctly from field validation failures.
type GradeEntryRequest struct {
	StudentID   string  `json:"student_id" validate:"required,max=20"`
	SubjectCode string  `json:"subject_code" validate:"required,max=20"`
	Grade       float64 `json:"grade"`
}

// GradeEntryResponse acknowledges a recorded grade.
type GradeEntryResponse struct {
	StudentID   string  `json:"student_id"`
	SubjectCode string  `json:"subject_code"`
	Grade       float64 `json:"grade"`
}
