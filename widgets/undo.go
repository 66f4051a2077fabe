package widgets

// undoHistory keeps snapshots of a text buffer for programmatic edits. It holds
// at most max undo steps; older ones are dropped.
type undoHistory struct {
	max  int
	undo []string
	redo []string
}

func (h *undoHistory) record(before string) {
	if h.max <= 0 {
		return
	}
	h.undo = append(h.undo, before)
	if len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}
	h.redo = nil
}

func (h *undoHistory) back(current string) (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return prev, true
}

func (h *undoHistory) forward(current string) (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return next, true
}

// setMax changes the bound, dropping the oldest snapshots that no longer fit.
func (h *undoHistory) setMax(n int) {
	h.max = n
	if n <= 0 {
		h.reset()
		return
	}
	if len(h.undo) > n {
		h.undo = h.undo[len(h.undo)-n:]
	}
}

func (h *undoHistory) reset() {
	h.undo = nil
	h.redo = nil
}

func (h *undoHistory) depth() int { return len(h.undo) }
