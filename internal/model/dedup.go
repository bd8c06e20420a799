package model

// RemoveDuplicates deletes earlier copies of repeated command text so only the
// last occurrence in list order survives. Comments never take part. Only the
// last LastExecuted placeholder is kept, whatever its text.
func RemoveDuplicates(list List) (bool, List) {
	seen := make(map[string]bool, len(list))
	sawLast := false
	keep := make([]bool, len(list))
	removed := false

	for i := len(list) - 1; i >= 0; i-- {
		e := list[i]
		switch e.Kind {
		case KindComment:
			keep[i] = true
			continue
		case KindLastExecuted:
			if sawLast {
				removed = true
				continue
			}
			sawLast = true
		}
		if seen[e.Text] {
			removed = true
			continue
		}
		seen[e.Text] = true
		keep[i] = true
	}

	if !removed {
		return false, list
	}
	out := make(List, 0, len(list))
	for i, e := range list {
		if keep[i] {
			out = append(out, e)
		}
	}
	return true, out
}

// Renumber assigns dense ordinals from 1 to every non-comment entry in order.
func Renumber(list List) List {
	count := 0
	for i := range list {
		if list[i].Kind == KindComment {
			list[i].Ordinal = NoOrdinal
			continue
		}
		count++
		list[i].Ordinal = count
	}
	return list
}

// Normalize runs a dedup pass followed by a renumber.
func Normalize(list List) List {
	_, list = RemoveDuplicates(list)
	return Renumber(list)
}
