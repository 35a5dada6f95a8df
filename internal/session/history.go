// Package session tracks in-session editing state that is not part of
// the engine: bounded undo/redo of oil ledger snapshots, including the
// one-step undo of a deleted row.
package session

import "github.com/latherlab/saponify/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the oil ledger at a point in time.
type Snapshot struct {
	Oils  []model.OilEntry
	Label string // human-readable description (e.g. "Remove Olive Oil")
}

// Capture deep-copies the ledger into a snapshot.
func Capture(oils []model.OilEntry, label string) Snapshot {
	return Snapshot{Oils: model.CloneOils(oils), Label: label}
}

// History manages undo/redo stacks of ledger snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// Call it before applying the modification it describes.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot from the undo stack and pushes the
// current state onto the redo stack. Returns the snapshot to restore
// and true, or a zero snapshot and false if there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes the
// current state onto the undo stack.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

// CanUndo reports whether there is at least one snapshot to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether there is at least one snapshot to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
