package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/firsthome/internal/journey"
)

func TestDefaultStagesShape(t *testing.T) {
	stages := DefaultStages()
	require.Len(t, stages, 7)

	for i, s := range stages {
		assert.Equal(t, i, s.ID, "ids are ordinal and ordered")
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.ChecklistItems, "stage %d", s.ID)

		seen := map[string]bool{}
		for _, it := range s.ChecklistItems {
			assert.False(t, seen[it.ID], "duplicate item id %q in stage %d", it.ID, s.ID)
			seen[it.ID] = true
			assert.False(t, it.Completed)
			assert.Empty(t, it.Note)
		}
	}

	// Stage 2 is pre-seeded in-progress by content design; the rest start upcoming.
	assert.Equal(t, journey.StatusInProgress, stages[2].Status)
	assert.Equal(t, journey.StatusUpcoming, stages[0].Status)
	assert.Equal(t, journey.StatusUpcoming, stages[6].Status)

	assert.NotEmpty(t, stages[3].Warning)
}

func TestDefaultStagesReturnsFreshCopies(t *testing.T) {
	a := DefaultStages()
	a[0].ChecklistItems[0].Completed = true
	a[0].Title = "mutated"

	b := DefaultStages()
	assert.False(t, b[0].ChecklistItems[0].Completed)
	assert.Equal(t, "Get Ready", b[0].Title)
}

func TestEveryChecklistItemHasTaskContent(t *testing.T) {
	for _, s := range DefaultStages() {
		for _, it := range s.ChecklistItems {
			task, ok := TaskFor(it.ID)
			require.True(t, ok, "missing task content for %q", it.ID)
			assert.NotEmpty(t, task.Explainer, it.ID)
			assert.NotEmpty(t, task.ActionableSteps, it.ID)
			assert.NotEmpty(t, task.NotePlaceholder, it.ID)
		}
	}
}

func TestStageInfo(t *testing.T) {
	for _, s := range DefaultStages() {
		assert.NotEmpty(t, StageInfo(s.ID), "stage %d", s.ID)
	}
	assert.Empty(t, StageInfo(42))
}

func TestGuides(t *testing.T) {
	gs := Guides()
	require.NotEmpty(t, gs)

	g, ok := GuideBySlug("mortgages")
	require.True(t, ok)
	assert.Equal(t, "Mortgages", g.Title)
	assert.NotEmpty(t, g.Sections)

	_, ok = GuideBySlug("no-such-guide")
	assert.False(t, ok)
}

func TestFAQsAndGlossary(t *testing.T) {
	require.NotEmpty(t, FAQs())
	for _, cat := range FAQs() {
		assert.NotEmpty(t, cat.Category)
		assert.NotEmpty(t, cat.Questions)
	}
	require.NotEmpty(t, Glossary())
}

func TestReply(t *testing.T) {
	exact := Reply("What are searches and why do they matter?")
	assert.Contains(t, exact, "background checks")

	// Case-insensitive exact match.
	assert.Equal(t, exact, Reply("what are searches and why do they matter?"))

	// Keyword match.
	assert.Contains(t, Reply("can I still pull out of the purchase?"), "legally binding")

	// Fallback for unknown questions.
	assert.Equal(t, Reply("what color should I paint the kitchen?"), Reply("zzz"))
	assert.NotEmpty(t, Reply(""))
}

func TestChatGreetingAndPrompts(t *testing.T) {
	assert.NotEmpty(t, ChatGreeting())
	assert.Len(t, SuggestedPrompts(), 4)
}
