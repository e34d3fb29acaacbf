package providers

import (
	"time"

	"github.com/oklog/ulid/v2"
)

const templateIDPrefix = "custom-"

// NewTemplateID returns a sortable id for a user-saved template.
func NewTemplateID() string {
	return templateIDPrefix + ulid.Make().String()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
