package panel

// Snapshot is a Container that keeps the last rendered elements in memory.
// Command-line output renders a panel into one and prints it.
type Snapshot struct {
	Elements []Element
}

func (s *Snapshot) Clear() {
	s.Elements = nil
}

func (s *Snapshot) Append(e Element) {
	s.Elements = append(s.Elements, e)
}

// Items returns only the note entries.
func (s *Snapshot) Items() []Element {
	var items []Element
	for _, e := range s.Elements {
		if e.Kind == KindItem {
			items = append(items, e)
		}
	}
	return items
}

// Empty reports whether the last render produced the empty state.
func (s *Snapshot) Empty() bool {
	for _, e := range s.Elements {
		if e.Kind == KindEmptyState {
			return true
		}
	}
	return false
}
