package journey

// PersistedItem is the storage projection of a checklist item. Note is
// always a concrete string in persisted form, never absent.
type PersistedItem struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

// PersistedStage is the storage projection of a stage: ids and progress
// only. Labels, icons, and copy come from the template on load.
type PersistedStage struct {
	ID                 int             `json:"id"`
	Status             Status          `json:"status"`
	UserMarkedComplete bool            `json:"userMarkedComplete,omitempty"`
	ChecklistItems     []PersistedItem `json:"checklistItems"`
}

// PersistedJourney is the one shape written to the local file and the
// remote journey_data column.
type PersistedJourney struct {
	Stages []PersistedStage `json:"stages"`
}

// ToPersisted projects the in-memory stage list to its durable form.
// Status is re-derived per stage so the serialized value is consistent
// with item state at the moment of saving, whatever the in-memory field
// says.
func ToPersisted(stages []Stage) PersistedJourney {
	out := PersistedJourney{Stages: make([]PersistedStage, 0, len(stages))}
	for _, s := range stages {
		ps := PersistedStage{
			ID:                 s.ID,
			Status:             DeriveStatus(s.ChecklistItems, s.UserMarkedComplete),
			UserMarkedComplete: s.UserMarkedComplete,
			ChecklistItems:     make([]PersistedItem, 0, len(s.ChecklistItems)),
		}
		for _, it := range s.ChecklistItems {
			ps.ChecklistItems = append(ps.ChecklistItems, PersistedItem{
				ID:        it.ID,
				Completed: it.Completed,
				Note:      it.Note,
			})
		}
		out.Stages = append(out.Stages, ps)
	}
	return out
}

// Merge overlays persisted progress onto a freshly generated template.
//
// A nil or empty persisted journey returns the template untouched
// (first run, or corrupt storage read fail-open as nil). Stages match by
// ID, items by ID within their stage; only Completed and Note transfer.
// Template order and item set always win: stale persisted ids are
// dropped, template-only items keep their defaults. Status is recomputed
// from the merged items plus the persisted override; the persisted
// status string itself is never trusted.
func Merge(template []Stage, persisted *PersistedJourney) []Stage {
	if persisted == nil || len(persisted.Stages) == 0 {
		return template
	}

	byStage := make(map[int]PersistedStage, len(persisted.Stages))
	for _, ps := range persisted.Stages {
		byStage[ps.ID] = ps
	}

	merged := Clone(template)
	for i := range merged {
		ps, ok := byStage[merged[i].ID]
		if !ok {
			continue
		}
		byItem := make(map[string]PersistedItem, len(ps.ChecklistItems))
		for _, pi := range ps.ChecklistItems {
			byItem[pi.ID] = pi
		}
		for j := range merged[i].ChecklistItems {
			pi, ok := byItem[merged[i].ChecklistItems[j].ID]
			if !ok {
				continue
			}
			merged[i].ChecklistItems[j].Completed = pi.Completed
			merged[i].ChecklistItems[j].Note = pi.Note
		}
		merged[i].UserMarkedComplete = ps.UserMarkedComplete
		merged[i].Status = DeriveStatus(merged[i].ChecklistItems, ps.UserMarkedComplete)
	}
	return merged
}
