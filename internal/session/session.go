package session

import "github.com/latherlab/saponify/internal/model"

// Session wraps a recipe under edit together with the undo/redo
// history of its oil ledger. Every mutating call records the prior
// ledger first, so any edit can be taken back in one step.
type Session struct {
	recipe  *model.Recipe
	history *History
}

// New starts an editing session over the given recipe.
func New(r *model.Recipe) *Session {
	return &Session{recipe: r, history: NewHistory()}
}

// Recipe returns the recipe under edit.
func (s *Session) Recipe() *model.Recipe {
	return s.recipe
}

// RemoveOil deletes the row with the given ID, keeping the prior
// ledger on the undo stack. Returns the removed row, or false if no
// row matches.
func (s *Session) RemoveOil(id string) (model.OilEntry, bool) {
	o := s.recipe.FindOilByID(id)
	if o == nil {
		return model.OilEntry{}, false
	}
	s.history.Push(Capture(s.recipe.Oils, "Remove "+o.Name))
	return s.recipe.RemoveOil(id)
}

// ApplyWeights records the current ledger and then sets the given
// weights by oil ID, marking each touched row as weight-edited. Rows
// not named keep their weight.
func (s *Session) ApplyWeights(weights map[string]float64, label string) {
	s.history.Push(Capture(s.recipe.Oils, label))
	for i := range s.recipe.Oils {
		if w, ok := weights[s.recipe.Oils[i].ID]; ok {
			s.recipe.Oils[i].WeightG = w
			s.recipe.Oils[i].LastEdited = model.FieldWeight
		}
	}
}

// Undo restores the most recently recorded ledger into the recipe.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo(Capture(s.recipe.Oils, ""))
	if !ok {
		return false
	}
	s.recipe.Oils = snap.Oils
	return true
}

// Redo reverses the most recent Undo.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo(Capture(s.recipe.Oils, ""))
	if !ok {
		return false
	}
	s.recipe.Oils = snap.Oils
	return true
}

// CanUndo reports whether an edit can be taken back.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether an undone edit can be reapplied.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}
