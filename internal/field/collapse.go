package field

// collapse folds walk-ordered records into a maximum reported depth.
//
// Records deeper than maxDepth are removed, and each record exactly at
// maxDepth adopts the state of the last removed record beneath it, so a
// folded subtree reports the geometry that held when the traversal left
// it. If that last record is a container, the nil state is adopted as
// is. A maxDepth of 0 reduces the analysis to a single root record
// carrying the network's terminal state; a maxDepth at or beyond the
// deepest record leaves everything unchanged.
//
// The input slice is not modified; adopted states are copied.
func collapse(records []Record, maxDepth int) []Record {
	out := make([]Record, 0, len(records))
	for i, rec := range records {
		if rec.Depth > maxDepth {
			continue
		}
		if rec.Depth == maxDepth {
			state := rec.State
			for j := i + 1; j < len(records) && records[j].Depth > maxDepth; j++ {
				state = records[j].State
			}
			if state != nil {
				state = state.clone()
			}
			rec.State = state
		}
		out = append(out, rec)
	}
	return out
}
