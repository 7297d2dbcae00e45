package dto

// AnswerDTO is one selection in a diagnosis submission. A nil or empty Label leaves the question unanswered.
type AnswerDTO struct {
	Position int     `json:"position" binding:"required,min=1"`
	Label    *string `json:"label"`
}

// DiagnosisSubmitDTO is the request body for POST /diagnoses.
type DiagnosisSubmitDTO struct {
	Answers []AnswerDTO `json:"answers" binding:"required,dive"`
}
