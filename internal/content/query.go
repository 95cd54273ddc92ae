package content

import "strings"

// Query is a named GROQ read with its bound parameters.
type Query struct {
	// Name identifies the query in logs and traces.
	Name string
	GROQ string
	// Params are bound as $name variables.
	Params map[string]any
	// DocumentType selects the schema used to validate results.
	DocumentType string
	// List marks queries returning an array of records.
	List bool
	// Require lists fields each record must carry to be rendered.
	Require []string
}

func (q Query) normalized() Query {
	q.Name = strings.TrimSpace(q.Name)
	if q.Name == "" {
		q.Name = q.DocumentType
	}
	q.GROQ = strings.TrimSpace(q.GROQ)
	return q
}
