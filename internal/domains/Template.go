package domains

import (
	"encoding/json"
	"time"
)

type TemplateKind string

const (
	KindNotice     TemplateKind = "notice"
	KindPromotion  TemplateKind = "promotion"
	KindNewsletter TemplateKind = "newsletter"
	KindCustom     TemplateKind = "custom"
)

// Template is a reusable starting document. Block ids inside a template are
// never used: Instantiate stamps fresh ones on every call.
type Template struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Kind        TemplateKind `json:"type"`
	Blocks      Blocks       `json:"blocks"`
}

func (t Template) Instantiate() Blocks {
	out := make(Blocks, 0, len(t.Blocks))
	for _, b := range t.Blocks {
		out = append(out, WithID(CloneBlock(b), NewID()))
	}
	return out
}

// MarshalJSON drops block ids so a template definition never exposes them.
func (t Template) MarshalJSON() ([]byte, error) {
	type alias Template
	stripped := alias(t)
	stripped.Blocks = make(Blocks, len(t.Blocks))
	for i, b := range t.Blocks {
		stripped.Blocks[i] = WithID(b, "")
	}
	return json.Marshal(stripped)
}

type TemplateCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Blocks      Blocks `json:"blocks"`
}

// SavedTemplate is a user-saved document snapshot as the template store keeps it.
type SavedTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Blocks      Blocks    `json:"blocks"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s SavedTemplate) Definition() Template {
	return Template{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Kind:        KindCustom,
		Blocks:      CloneBlocks(s.Blocks),
	}
}
