package state

// History holds committed commands and the redo stack. Both are ordered
// oldest first and never share a command.
type History struct {
	committed []Command
	undone    []Command
}

// Commit appends cmd and drops everything that could have been redone.
func (h *History) Commit(cmd Command) {
	if cmd == nil {
		return
	}
	h.committed = append(h.committed, cmd)
	h.undone = nil
}

// Undo moves the newest committed command onto the redo stack.
func (h *History) Undo() bool {
	n := len(h.committed)
	if n == 0 {
		return false
	}
	cmd := h.committed[n-1]
	h.committed[n-1] = nil
	h.committed = h.committed[:n-1]
	h.undone = append(h.undone, cmd)
	return true
}

// Redo moves the newest undone command back onto the committed stack.
func (h *History) Redo() bool {
	n := len(h.undone)
	if n == 0 {
		return false
	}
	cmd := h.undone[n-1]
	h.undone[n-1] = nil
	h.undone = h.undone[:n-1]
	h.committed = append(h.committed, cmd)
	return true
}

func (h *History) Clear() {
	h.committed = nil
	h.undone = nil
}

func (h *History) Len() int { return len(h.committed) }

// Last returns the newest committed command, or nil.
func (h *History) Last() Command {
	if len(h.committed) == 0 {
		return nil
	}
	return h.committed[len(h.committed)-1]
}

func (h *History) Committed() []Command { return cloneCommands(h.committed) }
func (h *History) Undone() []Command { return cloneCommands(h.undone) }

// replace swaps in cmds as the full committed history.
func (h *History) replace(cmds []Command) {
	h.committed = cloneCommands(cmds)
	h.undone = nil
}

func cloneCommands(cmds []Command) []Command {
	out := make([]Command, len(cmds))
	copy(out, cmds)
	return out
}
