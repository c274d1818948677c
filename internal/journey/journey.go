// Package journey holds the progress model for a home purchase: stages,
// checklist items, status derivation, and the merge between the default
// template and a user's persisted progress.
package journey

// Status is a stage's derived display status. It is never authoritative
// on its own; DeriveStatus is the only legitimate writer.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusUpcoming   Status = "upcoming"
)

// ChecklistItem is one user-actionable task within a stage. IDs are
// stable and unique within their parent stage only.
type ChecklistItem struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	Icon      string `json:"icon" yaml:"icon"`
	Completed bool   `json:"completed" yaml:"completed"`
	Note      string `json:"note" yaml:"note"`
}

// Stage is one phase of the buying process. ID defines canonical order.
type Stage struct {
	ID                   int             `json:"id" yaml:"id"`
	StageNumber          string          `json:"stageNumber" yaml:"stageNumber"`
	Title                string          `json:"title" yaml:"title"`
	Status               Status          `json:"status" yaml:"status"`
	ConversationalHeader string          `json:"conversationalHeader" yaml:"conversationalHeader"`
	ChecklistItems       []ChecklistItem `json:"checklistItems" yaml:"checklistItems"`
	Warning              string          `json:"warning,omitempty" yaml:"warning,omitempty"`
	// UserMarkedComplete forces the stage to display as done even when
	// not every item is complete.
	UserMarkedComplete bool `json:"userMarkedComplete,omitempty" yaml:"userMarkedComplete,omitempty"`
}

// DeriveStatus computes a stage's effective status from its items and the
// user override. Total over its domain: zero items of zero means upcoming.
func DeriveStatus(items []ChecklistItem, userMarkedComplete bool) Status {
	if userMarkedComplete {
		return StatusCompleted
	}
	completed := 0
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}
	switch {
	case completed == 0:
		return StatusUpcoming
	case completed == len(items):
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// SetItemCompleted sets one item's completed flag and re-derives the
// stage status. Unchecking an item clears the user override, matching
// the tracker's behavior: a stage cannot stay force-done while the user
// is actively walking it back.
func (s *Stage) SetItemCompleted(itemID string, completed bool) bool {
	for i := range s.ChecklistItems {
		if s.ChecklistItems[i].ID != itemID {
			continue
		}
		s.ChecklistItems[i].Completed = completed
		if !completed {
			s.UserMarkedComplete = false
		}
		s.Status = DeriveStatus(s.ChecklistItems, s.UserMarkedComplete)
		return true
	}
	return false
}

// SetItemNote replaces one item's note and reports whether the item exists.
func (s *Stage) SetItemNote(itemID, note string) bool {
	for i := range s.ChecklistItems {
		if s.ChecklistItems[i].ID == itemID {
			s.ChecklistItems[i].Note = note
			return true
		}
	}
	return false
}

// MarkDone is the explicit "mark stage as done" action: it sets the
// override and forces every item complete, then re-derives.
func (s *Stage) MarkDone() {
	s.UserMarkedComplete = true
	for i := range s.ChecklistItems {
		s.ChecklistItems[i].Completed = true
	}
	s.Status = DeriveStatus(s.ChecklistItems, s.UserMarkedComplete)
}

// MarkNotDone reverses MarkDone: override off, every item incomplete.
func (s *Stage) MarkNotDone() {
	s.UserMarkedComplete = false
	for i := range s.ChecklistItems {
		s.ChecklistItems[i].Completed = false
	}
	s.Status = DeriveStatus(s.ChecklistItems, s.UserMarkedComplete)
}

// Clone returns a deep copy of the stage list. The template is only ever
// used as a merge base, never mutated in place.
func Clone(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	for i := range out {
		items := make([]ChecklistItem, len(stages[i].ChecklistItems))
		copy(items, stages[i].ChecklistItems)
		out[i].ChecklistItems = items
	}
	return out
}
