// Package normalize turns raw spreadsheet cells into catalog values.
//
// Every parser here is total: malformed cells degrade to absent, empty or
// default values rather than errors. The only way a row produces no entry
// is the skip policy in RowToEntry.
package normalize

import (
	"regexp"
	"strings"

	"masterlist/internal/catalog"
)

// placeholders are cell values the sheet treats as "no value": blank cells,
// literal x markers, formula errors and the usual not-applicable spellings.
// Matched after trimming and lowercasing.
var placeholders = map[string]struct{}{
	"":     {},
	"x":    {},
	"nan":  {},
	"none": {},
	"n/a":  {},
	"#n/a": {},
}

// Clean trims a raw cell and filters placeholder artifacts. Returns ""
// (absent) for placeholder cells, the trimmed text otherwise. A present
// value is never the empty string.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if _, ok := placeholders[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

var tagPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// ParseTags extracts bracketed [Tag] tokens in order of appearance.
// Duplicates are kept; tokens that trim to nothing are dropped. A cell with
// no brackets yields an empty, non-nil slice.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, m := range tagPattern.FindAllStringSubmatch(raw, -1) {
		if t := strings.TrimSpace(m[1]); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// truthy holds the exact markers the sheet uses for boolean cells.
// Matching is case-sensitive: "TRUE" and "Yes" are falsy.
var truthy = map[string]struct{}{
	"1":    {},
	"1.0":  {},
	"true": {},
	"True": {},
	"yes":  {},
}

// ParseBool reports whether a cell holds one of the sheet's truthy markers.
// Absent cells are falsy.
func ParseBool(raw string) bool {
	_, ok := truthy[strings.TrimSpace(raw)]
	return ok
}

// ParseDate keeps the YYYY-MM-DD prefix of a date or date-time cell.
// No calendar validation: any cleaned value is truncated to its first ten
// characters. Placeholder cells come back absent.
func ParseDate(raw string) string {
	s := Clean(raw)
	if r := []rune(s); len(r) > 10 {
		return string(r[:10])
	}
	return s
}

// BuildPerson assembles a credit from a name/link column pair. No name
// means no credit, regardless of link; a name without a link is fine.
func BuildPerson(rawName, rawLink string) *catalog.Person {
	name := Clean(rawName)
	if name == "" {
		return nil
	}
	return &catalog.Person{Name: name, Link: Clean(rawLink)}
}
