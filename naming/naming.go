// Package naming converts Go struct and field names into SQL identifiers
// ready for the statement builders. Conventions are configurable per
// strategy; the default is snake_case columns with pluralized snake_case
// tables.
package naming

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"

	"github.com/fast/pqb"
)

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// ColumnStrategy converts a Go field name to a column identifier.
type ColumnStrategy interface {
	ColumnIden(fieldName string) pqb.Iden
}

// TableStrategy converts a Go struct name to a table identifier.
type TableStrategy interface {
	TableIden(structName string) pqb.Iden
}

// Strategy is the complete naming configuration.
type Strategy interface {
	ColumnStrategy
	TableStrategy
}

// Convention selects a case style.
type Convention int

const (
	SnakeCase  Convention = iota // user_id, blog_post
	CamelCase                    // userId, blogPost
	PascalCase                   // UserId, BlogPost
)

func (c Convention) apply(name string) string {
	switch c {
	case CamelCase:
		return toCamelCase(name)
	case PascalCase:
		return toPascalCase(name)
	default:
		return toSnakeCase(name)
	}
}

type strategy struct {
	columns      Convention
	tables       Convention
	pluralTables bool
}

// New builds a strategy from explicit conventions.
func New(columns, tables Convention, pluralTables bool) Strategy {
	return &strategy{columns: columns, tables: tables, pluralTables: pluralTables}
}

// Default is snake_case columns and pluralized snake_case tables.
func Default() Strategy {
	return New(SnakeCase, SnakeCase, true)
}

func (s *strategy) ColumnIden(fieldName string) pqb.Iden {
	return pqb.NewIden(s.columns.apply(fieldName))
}

func (s *strategy) TableIden(structName string) pqb.Iden {
	name := s.tables.apply(structName)
	if s.pluralTables {
		name = Pluralize(name)
	}
	return pqb.NewIden(name)
}

// toSnakeCase converts any naming convention to snake_case. Acronym-heavy
// names common in Go take the fast path.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	switch name {
	case "ID":
		return "id"
	case "UUID":
		return "uuid"
	case "URL":
		return "url"
	case "API":
		return "api"
	case "JSON":
		return "json"
	case "SQL":
		return "sql"
	case "OAuth":
		return "o_auth"
	case "OAuth2":
		return "o_auth2"
	}

	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 10)

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b, and ABc -> a_bc at acronym ends.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteByte('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// toCamelCase converts any naming convention to camelCase.
func toCamelCase(name string) string {
	parts := splitWords(name)
	if len(parts) == 0 {
		return ""
	}
	var result strings.Builder
	result.Grow(len(name))
	result.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		result.WriteString(titleWord(part))
	}
	return result.String()
}

// toPascalCase converts any naming convention to PascalCase.
func toPascalCase(name string) string {
	parts := splitWords(name)
	var result strings.Builder
	result.Grow(len(name))
	for _, part := range parts {
		result.WriteString(titleWord(part))
	}
	return result.String()
}

func splitWords(name string) []string {
	snake := toSnakeCase(name)
	if snake == "" {
		return nil
	}
	raw := strings.Split(snake, "_")
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// Pluralize converts singular nouns to plural, with common irregulars
// handled inline.
func Pluralize(name string) string {
	if name == "" {
		return ""
	}
	switch strings.ToLower(name) {
	case "person":
		return "people"
	case "child":
		return "children"
	case "datum":
		return "data"
	case "medium":
		return "media"
	case "criterion":
		return "criteria"
	}
	plural := pluralizeClient.Pluralize(name, 2, false)
	return preserveCase(name, plural)
}

// Singularize converts plural nouns to singular.
func Singularize(name string) string {
	if name == "" {
		return ""
	}
	switch strings.ToLower(name) {
	case "people":
		return "person"
	case "children":
		return "child"
	case "data":
		return "datum"
	case "media":
		return "medium"
	case "criteria":
		return "criterion"
	}
	singular := pluralizeClient.Pluralize(name, 1, false)
	return preserveCase(name, singular)
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// preserveCase maps the case pattern of the original onto the result.
func preserveCase(original, result string) string {
	if original == "" || result == "" {
		return result
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(result)
	}
	if strings.ToUpper(original) == original {
		return strings.ToUpper(result)
	}
	if unicode.IsUpper(rune(original[0])) {
		return strings.ToUpper(result[:1]) + result[1:]
	}
	return result
}
