package sanity

import "strings"

// placeholderValues are values shipped in example env files or produced by
// stringifying missing JavaScript values; none of them names a real project.
var placeholderValues = map[string]struct{}{
	"placeholder":     {},
	"your-project-id": {},
	"your_project_id": {},
	"your-dataset":    {},
	"undefined":       {},
	"null":            {},
	"changeme":        {},
}

// IsConfigured reports whether projectID and dataset identify a real content
// source: both must be non-blank and neither may be a known placeholder.
func IsConfigured(projectID, dataset string) bool {
	return isRealIdentifier(projectID) && isRealIdentifier(dataset)
}

// IsPlaceholder reports whether value matches a known placeholder sentinel,
// ignoring case and surrounding whitespace.
func IsPlaceholder(value string) bool {
	_, ok := placeholderValues[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

func isRealIdentifier(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	return !IsPlaceholder(value)
}
