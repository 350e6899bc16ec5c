package normalize

import (
	"math"
	"strconv"
	"strings"

	"masterlist/internal/catalog"
)

// DefaultType is the category used when a row's Type cell is blank.
const DefaultType = "romantic"

// SkipReason says why a row produced no entry.
type SkipReason int

const (
	// SkipNone means the row became an entry.
	SkipNone SkipReason = iota
	// SkipBlankRow means ID or title was missing: a blank or trailing
	// sheet row, not worth reporting.
	SkipBlankRow
	// SkipBadID means the ID cell held something non-numeric.
	SkipBadID
)

// RowToEntry converts one sheet row into a catalog entry. A skip is not an
// error: the sheet ends in blank and half-filled rows, and those are
// excluded through the returned reason while the build carries on.
func RowToEntry(row catalog.Row) (catalog.Entry, SkipReason) {
	id := Clean(row[catalog.ColID])
	title := Clean(row[catalog.ColName])
	if id == "" || title == "" || strings.EqualFold(title, "nan") {
		return catalog.Entry{}, SkipBlankRow
	}

	// IDs arrive as "12" or "12.0" depending on how the sheet formatted
	// the column; parse as a float and truncate.
	n, err := strconv.ParseFloat(id, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return catalog.Entry{}, SkipBadID
	}

	entryType := strings.ToLower(Clean(row[catalog.ColType]))
	if entryType == "" {
		entryType = DefaultType
	}

	collabs := []catalog.Person{}
	for i := 1; i <= catalog.MaxCollabSlots; i++ {
		p := BuildPerson(row[catalog.CollabNameCol(i)], row[catalog.CollabLinkCol(i)])
		if p != nil {
			collabs = append(collabs, *p)
		}
	}

	return catalog.Entry{
		ID:          int(n),
		Title:       title,
		Tags:        ParseTags(row[catalog.ColTags]),
		Synopsis:    Clean(row[catalog.ColSynopsis]),
		Duration:    Clean(row[catalog.ColDuration]),
		AudioLink:   Clean(row[catalog.ColAudioLink]),
		Writer:      BuildPerson(row[catalog.ColWriterName], row[catalog.ColWriterLink]),
		Type:        entryType,
		LargeCollab: ParseBool(row[catalog.ColLargeCollab]),
		Collabs:     collabs,
		ScriptLink:  Clean(row[catalog.ColScriptLink]),
		Date:        ParseDate(row[catalog.ColDate]),
		Editor:      BuildPerson(row[catalog.ColEditorName], row[catalog.ColEditorLink]),
	}, SkipNone
}
