package gesture

// Select adds the given element IDs to the selection, replacing it unless
// additive is set. Order is preserved; duplicates are ignored.
func (m *Machine) Select(ids []string, additive bool) {
	if !additive {
		m.selection = nil
	}
	for _, id := range ids {
		if !m.IsSelected(id) {
			m.selection = append(m.selection, id)
		}
	}
}

// Deselect removes IDs from the selection.
func (m *Machine) Deselect(ids []string) {
	for _, id := range ids {
		for i, sel := range m.selection {
			if sel == id {
				m.selection = append(m.selection[:i], m.selection[i+1:]...)
				break
			}
		}
	}
}

// ClearSelection empties the selection.
func (m *Machine) ClearSelection() {
	m.selection = nil
}

// Selected returns the selected element IDs in selection order.
func (m *Machine) Selected() []string {
	return append([]string(nil), m.selection...)
}

// IsSelected reports whether an element is selected.
func (m *Machine) IsSelected(id string) bool {
	for _, sel := range m.selection {
		if sel == id {
			return true
		}
	}
	return false
}
