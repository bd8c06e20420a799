package model

// Add appends text as a new, unnumbered global entry. Duplicates are resolved
// by the next dedup pass.
func Add(list List, text, sourceFile string) List {
	return append(list, NewGlobal(text, sourceFile))
}

// IndexOf returns the list index of the entry holding ordinal, or -1.
func IndexOf(list List, ordinal int) int {
	if ordinal <= 0 {
		return -1
	}
	for i, e := range list {
		if e.Kind != KindComment && e.Ordinal == ordinal {
			return i
		}
	}
	return -1
}

// Get returns the entry holding ordinal.
func Get(list List, ordinal int) (Entry, error) {
	i := IndexOf(list, ordinal)
	if i < 0 {
		return Entry{}, NotFoundError{Ordinal: ordinal}
	}
	return list[i], nil
}

// Delete removes the entry holding ordinal and renumbers. The list is left
// untouched when the ordinal does not exist.
func Delete(list List, ordinal int) (List, error) {
	i := IndexOf(list, ordinal)
	if i < 0 {
		return list, NotFoundError{Ordinal: ordinal}
	}
	out := make(List, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return Renumber(out), nil
}

// Move relocates the entry at ordinal src to just after the entry at ordinal
// dst. A dst of 0 moves the entry to the top of the list.
func Move(list List, src, dst int) (List, error) {
	from := IndexOf(list, src)
	if from < 0 {
		return list, PositionError{Position: src}
	}
	if dst != 0 && IndexOf(list, dst) < 0 {
		return list, PositionError{Position: dst}
	}
	if src == dst {
		return list, nil
	}

	moved := list[from]
	rest := make(List, 0, len(list))
	rest = append(rest, list[:from]...)
	rest = append(rest, list[from+1:]...)

	at := 0
	if dst != 0 {
		at = IndexOf(rest, dst) + 1
	}

	out := make(List, 0, len(list))
	out = append(out, rest[:at]...)
	out = append(out, moved)
	out = append(out, rest[at:]...)
	return Renumber(out), nil
}

// Texts returns the raw text of every non-comment entry, in order.
func Texts(list List) []string {
	var out []string
	for _, e := range list {
		if e.Kind != KindComment {
			out = append(out, e.Text)
		}
	}
	return out
}
