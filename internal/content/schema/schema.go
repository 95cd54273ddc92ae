// Package schema describes the editable document types and validates decoded
// content records against them.
package schema

import (
	_ "embed"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var defaultCatalogYAML []byte

// FieldType names the studio type of a document field.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeText     FieldType = "text"
	TypeSlug     FieldType = "slug"
	TypeDatetime FieldType = "datetime"
	TypeDate     FieldType = "date"
	TypeURL      FieldType = "url"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeImage    FieldType = "image"
	TypeFile     FieldType = "file"
	TypeRef      FieldType = "reference"
	TypeArray    FieldType = "array"
	TypeObject   FieldType = "object"
	TypeBlock    FieldType = "block"
)

var knownTypes = map[FieldType]struct{}{
	TypeString: {}, TypeText: {}, TypeSlug: {}, TypeDatetime: {}, TypeDate: {},
	TypeURL: {}, TypeNumber: {}, TypeBoolean: {}, TypeImage: {}, TypeFile: {},
	TypeRef: {}, TypeArray: {}, TypeObject: {}, TypeBlock: {},
}

// Field is one field of a document type.
type Field struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Type     FieldType `yaml:"type"`
	Required bool      `yaml:"required"`
	Options  []string  `yaml:"options"`
	Of       FieldType `yaml:"of"`
}

// DocumentType is one editable document type.
type DocumentType struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// Field returns the named field.
func (d DocumentType) Field(name string) (Field, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// RequiredFields lists the fields the studio marks as required.
func (d DocumentType) RequiredFields() []string {
	var names []string
	for _, field := range d.Fields {
		if field.Required {
			names = append(names, field.Name)
		}
	}
	return names
}

// Catalog is a validated set of document types.
type Catalog struct {
	types []DocumentType
	index map[string]int
}

// Load parses and checks a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var raw struct {
		Documents []DocumentType `yaml:"documents"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse schema catalog: %w", err)
	}
	if len(raw.Documents) == 0 {
		return nil, fmt.Errorf("schema catalog has no document types")
	}

	c := &Catalog{index: make(map[string]int, len(raw.Documents))}
	for _, doc := range raw.Documents {
		doc.Name = strings.TrimSpace(doc.Name)
		if doc.Name == "" {
			return nil, fmt.Errorf("schema catalog has a document type without a name")
		}
		if _, ok := c.index[doc.Name]; ok {
			return nil, fmt.Errorf("document type %q is declared twice", doc.Name)
		}
		seen := make(map[string]struct{}, len(doc.Fields))
		for _, field := range doc.Fields {
			if field.Name == "" {
				return nil, fmt.Errorf("document type %q has a field without a name", doc.Name)
			}
			if _, ok := seen[field.Name]; ok {
				return nil, fmt.Errorf("document type %q declares field %q twice", doc.Name, field.Name)
			}
			seen[field.Name] = struct{}{}
			if _, ok := knownTypes[field.Type]; !ok {
				return nil, fmt.Errorf("field %s.%s has unknown type %q", doc.Name, field.Name, field.Type)
			}
			if field.Of != "" {
				if _, ok := knownTypes[field.Of]; !ok {
					return nil, fmt.Errorf("field %s.%s has unknown item type %q", doc.Name, field.Name, field.Of)
				}
			}
		}
		c.index[doc.Name] = len(c.types)
		c.types = append(c.types, doc)
	}
	return c, nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(defaultCatalogYAML)
})

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Types returns the document types in declaration order.
func (c *Catalog) Types() []DocumentType {
	if c == nil {
		return nil
	}
	return slices.Clone(c.types)
}

// Type returns the named document type.
func (c *Catalog) Type(name string) (DocumentType, bool) {
	if c == nil {
		return DocumentType{}, false
	}
	idx, ok := c.index[name]
	if !ok {
		return DocumentType{}, false
	}
	return c.types[idx], true
}

// Violation is one field that does not match its declaration.
type Violation struct {
	Field   string
	Problem string
}

// ValidationError lists every violation found in one record.
type ValidationError struct {
	DocumentType string
	Violations   []Violation
}

// Error joins the violations into one line.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Problem)
	}
	return fmt.Sprintf("%s record is invalid: %s", e.DocumentType, strings.Join(parts, "; "))
}

// Validate checks a decoded record against its document type.
//
// Every field in require must be present and non-empty. Fields that are
// present must match their declared type and options; missing or null
// optional fields are accepted. Undeclared fields such as _id are ignored.
func (c *Catalog) Validate(docType string, record map[string]any, require ...string) error {
	doc, ok := c.Type(docType)
	if !ok {
		return fmt.Errorf("unknown document type %q", docType)
	}

	var violations []Violation
	for _, name := range require {
		if isEmpty(record[name]) {
			violations = append(violations, Violation{Field: name, Problem: "is required"})
		}
	}
	for _, field := range doc.Fields {
		value, present := record[field.Name]
		if !present || value == nil {
			continue
		}
		if problem := checkField(field, value); problem != "" {
			violations = append(violations, Violation{Field: field.Name, Problem: problem})
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{DocumentType: docType, Violations: violations}
}

func checkField(field Field, value any) string {
	if problem := checkType(field.Type, value); problem != "" {
		return problem
	}
	if field.Type == TypeArray && field.Of != "" {
		for i, item := range value.([]any) {
			if item == nil {
				continue
			}
			// Dereferenced references arrive as documents.
			if field.Of == TypeRef {
				if _, ok := item.(map[string]any); ok {
					continue
				}
			}
			if problem := checkType(field.Of, item); problem != "" {
				return fmt.Sprintf("item %d %s", i, problem)
			}
		}
	}
	if len(field.Options) > 0 {
		text, _ := value.(string)
		if !slices.Contains(field.Options, text) {
			return fmt.Sprintf("%q is not one of %s", text, strings.Join(field.Options, ", "))
		}
	}
	return ""
}

func checkType(fieldType FieldType, value any) string {
	switch fieldType {
	case TypeString, TypeText:
		if _, ok := value.(string); !ok {
			return "must be a string"
		}
	case TypeURL:
		text, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if text == "" {
			return ""
		}
		parsed, err := url.Parse(text)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return "must be an absolute URL"
		}
	case TypeDatetime:
		text, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if _, err := time.Parse(time.RFC3339, text); err != nil {
			if _, err := time.Parse(time.DateOnly, text); err != nil {
				return "must be an RFC 3339 timestamp"
			}
		}
	case TypeDate:
		text, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if _, err := time.Parse(time.DateOnly, text); err != nil {
			return "must be a YYYY-MM-DD date"
		}
	case TypeNumber:
		if _, ok := value.(float64); !ok {
			return "must be a number"
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return "must be a boolean"
		}
	case TypeSlug:
		obj, ok := value.(map[string]any)
		if !ok {
			return "must be a slug object"
		}
		if current, ok := obj["current"]; ok && current != nil {
			if _, ok := current.(string); !ok {
				return "must have a string current value"
			}
		}
	case TypeImage, TypeFile, TypeRef, TypeObject, TypeBlock:
		if _, ok := value.(map[string]any); !ok {
			return "must be an object"
		}
	case TypeArray:
		if _, ok := value.([]any); !ok {
			return "must be an array"
		}
	}
	return ""
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		if current, ok := v["current"]; ok {
			return isEmpty(current)
		}
		return len(v) == 0
	default:
		return false
	}
}
