package dto

// OptionDTO is what a respondent sees for a choice; the category tag stays server-side.
type OptionDTO struct {
	Label string `json:"label"`
}

type QuestionDTO struct {
	Position int         `json:"position"`
	Prompt   string      `json:"prompt"`
	Options  []OptionDTO `json:"options"`
}

type QuizDTO struct {
	Title     string        `json:"title"`
	Intro     string        `json:"intro,omitempty"`
	Questions []QuestionDTO `json:"questions"`
}

type CategoryDTO struct {
	Tag       string `json:"tag"`
	Label     string `json:"label"`
	AdviceURL string `json:"advice_url"`
}

// --- Admin view ---

type BankOptionDTO struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

type BankQuestionDTO struct {
	Position int             `json:"position"`
	Prompt   string          `json:"prompt"`
	Options  []BankOptionDTO `json:"options"`
}

type BankDTO struct {
	Title      string            `json:"title"`
	Intro      string            `json:"intro,omitempty"`
	Categories []CategoryDTO     `json:"categories"`
	Questions  []BankQuestionDTO `json:"questions"`
}

// --- Diagnosis ---

// DiagnosisResultDTO is returned for every submission. State "collecting" means the
// submission was incomplete: Notice and MissingPositions are set and no category is chosen.
type DiagnosisResultDTO struct {
	State            string         `json:"state"`
	Complete         bool           `json:"complete"`
	Answered         int            `json:"answered"`
	Tally            map[string]int `json:"tally"`
	Notice           string         `json:"notice,omitempty"`
	MissingPositions []int          `json:"missing_positions,omitempty"`
	Category         *CategoryDTO   `json:"category,omitempty"`
	Message          string         `json:"message,omitempty"`
	AdviceButton     string         `json:"advice_button,omitempty"`
}

type HealthDTO struct {
	Status    string `json:"status"`
	Questions int    `json:"questions"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
