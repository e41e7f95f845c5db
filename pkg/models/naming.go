package models

import (
	"strings"
	"unicode"
)

// ToCamel converts a snake_case field name to the API's camelCase form.
// Names already in camelCase pass through unchanged.
//
//	ToCamel("tested_versions")  // "testedVersions"
//	ToCamel("external_url")     // "externalUrl"
func ToCamel(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for i, r := range name {
		switch {
		case r == '_':
			upper = i > 0
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToSnake converts a camelCase wire name to snake_case.
//
//	ToSnake("responseMessage")  // "response_message"
func ToSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SortField converts a sort expression with an optional +/- direction prefix.
//
//	SortField("-release_date")  // "-releaseDate"
func SortField(sort string) string {
	if sort == "" {
		return ""
	}
	if sort[0] == '+' || sort[0] == '-' {
		return sort[:1] + ToCamel(sort[1:])
	}
	return ToCamel(sort)
}

// FieldList joins field names into the comma-separated wire form,
// converting each to camelCase. Empty names are skipped.
func FieldList(fields []string) string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, ToCamel(f))
		}
	}
	return strings.Join(out, ",")
}
