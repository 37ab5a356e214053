package activity

import (
	"path"
	"strings"
)

// DisplayName returns the label shown for record. Missing fields are derived
// from the ones that are present so a partial record still gets a label.
func DisplayName(record FileRecord, showExtension bool) string {
	if showExtension {
		return nameOf(record)
	}
	return basenameOf(record)
}

func nameOf(record FileRecord) string {
	if record.Name != "" {
		return record.Name
	}
	if record.Path != "" {
		if base := path.Base(record.Path); base != "." && base != "/" {
			return base
		}
	}
	return record.Basename
}

func basenameOf(record FileRecord) string {
	if record.Basename != "" {
		return record.Basename
	}
	name := nameOf(record)
	return strings.TrimSuffix(name, path.Ext(name))
}
