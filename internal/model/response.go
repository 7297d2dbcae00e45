package model

// Response maps a question position to the selected option label.
// A missing position or an empty label means the question is unanswered.
type Response map[int]string

// Answered reports whether position has a selected label.
func (r Response) Answered(position int) bool {
	return r[position] != ""
}

// ScoreTally holds one counter per category, all present and starting at zero.
type ScoreTally map[Category]int

func NewScoreTally() ScoreTally {
	t := make(ScoreTally, NumCategories)
	for _, c := range Categories() {
		t[c] = 0
	}
	return t
}

// Total is the sum of all counts.
func (t ScoreTally) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// SubmissionState tracks a single submission through the diagnosis flow.
type SubmissionState string

const (
	StateCollecting SubmissionState = "collecting"
	StateSubmitted  SubmissionState = "submitted"
	StateScored     SubmissionState = "scored"
	StatePresented  SubmissionState = "presented"
)
