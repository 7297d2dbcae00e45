package model

import "fmt"

// Category is one of the four fixed tidying types a respondent is classified into.
// Declaration order is the tie-break order. The zero value is not a valid category.
type Category int

const (
	Freeze Category = iota + 1
	Emotion
	Burnout
	Family
)

// NumCategories is the size of the closed category set.
const NumCategories = 4

var categoryTags = [NumCategories]string{"freeze", "emotion", "burnout", "family"}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{Freeze, Emotion, Burnout, Family}
}

func (c Category) Valid() bool {
	return c >= Freeze && c <= Family
}

// String returns the category tag ("freeze", "emotion", ...).
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryTags[c-1]
}

// ParseCategory maps a tag back to its Category.
func ParseCategory(tag string) (Category, error) {
	for i, t := range categoryTags {
		if t == tag {
			return Category(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown category tag %q", tag)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid category %d", int(c))
	}
	return []byte(categoryTags[c-1]), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryInfo is a row of the static category table.
type CategoryInfo struct {
	Category  Category `yaml:"tag" json:"tag"`
	Label     string   `yaml:"label" json:"label"`
	AdviceURL string   `yaml:"advice_url" json:"advice_url"`
}

// AdviceResource is the link presented for a classified category.
type AdviceResource struct {
	Category Category `json:"category"`
	URL      string   `json:"url"`
}
