package model

// Option is a single selectable answer; its label is unique within the owning question.
type Option struct {
	Label    string   `yaml:"label" json:"label"`
	Category Category `yaml:"category" json:"category"`
}

type Question struct {
	Position int      `yaml:"position" json:"position"` // 1-based
	Prompt   string   `yaml:"prompt" json:"prompt"`
	Options  []Option `yaml:"options" json:"options"`
}

// OptionByLabel finds the option with the given label.
func (q *Question) OptionByLabel(label string) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].Label == label {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// Bank is the static quiz document: the question list and the category table.
// It is loaded once at startup and never mutated afterwards.
type Bank struct {
	Title      string         `yaml:"title" json:"title"`
	Intro      string         `yaml:"intro" json:"intro"`
	Categories []CategoryInfo `yaml:"categories" json:"categories"`
	Questions  []Question     `yaml:"questions" json:"questions"`
}
