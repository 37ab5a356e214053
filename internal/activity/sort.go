package activity

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the CLDR root collation. It is case-insensitive at the
// primary level, so "apple" sorts before "Banana".
const DefaultLocale = "und"

// Sorter orders file records. The zero value collates with the root locale.
type Sorter struct {
	tag language.Tag
}

// NewSorter returns a Sorter collating basenames for the given BCP 47 locale.
// An empty or unparsable locale falls back to DefaultLocale.
func NewSorter(locale string) Sorter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.Und
	}
	return Sorter{tag: tag}
}

// Locale reports the collation locale in use.
func (s Sorter) Locale() string {
	return s.tag.String()
}

// Sort is Sorter.Sort with the root locale.
func Sort(records []FileRecord, mode SortMode) []FileRecord {
	return Sorter{}.Sort(records, mode)
}

// Sort returns a sorted copy of records. Alphabetical mode is ascending by
// basename, the time modes are most recent first. Records that compare equal
// are ordered by path, then by their input position.
func (s Sorter) Sort(records []FileRecord, mode SortMode) []FileRecord {
	sorted := make([]FileRecord, len(records))
	copy(sorted, records)
	if len(sorted) < 2 {
		return sorted
	}

	cmp := s.comparator(mode)
	slices.SortStableFunc(sorted, func(a, b FileRecord) int {
		if c := cmp(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})

	return sorted
}

func (s Sorter) comparator(mode SortMode) func(a, b FileRecord) int {
	switch mode {
	case SortModifiedTime:
		return func(a, b FileRecord) int {
			return compareDesc(a.ModifiedTime, b.ModifiedTime)
		}
	case SortCreatedTime:
		return func(a, b FileRecord) int {
			return compareDesc(a.CreatedTime, b.CreatedTime)
		}
	default:
		// Collators keep scratch buffers, so each pass gets its own.
		c := collate.New(s.tag)
		return func(a, b FileRecord) int {
			return c.CompareString(basenameOf(a), basenameOf(b))
		}
	}
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
