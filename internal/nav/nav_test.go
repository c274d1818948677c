package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialScreen(t *testing.T) {
	n := New()
	assert.Equal(t, ScreenOnboarding, n.Current())
}

func TestNavigateRecordsPrevious(t *testing.T) {
	n := New()
	n.NavigateTo(ScreenHowItWorks)
	n.NavigateTo(ScreenTracker)

	assert.Equal(t, ScreenTracker, n.Current())
	assert.Equal(t, ScreenHowItWorks, n.Previous())
}

func TestBackReturnsToPrevious(t *testing.T) {
	n := New()
	n.NavigateTo(ScreenTracker)
	n.NavigateTo(ScreenChat)

	assert.Equal(t, ScreenTracker, n.Back())
	assert.Equal(t, ScreenTracker, n.Current())
}

func TestBackFromDeepLinkedContentLandsOnTracker(t *testing.T) {
	for _, screen := range []Screen{ScreenFAQs, ScreenGlossary, ScreenGuideMortgages, ScreenAbout} {
		n := &Navigator{current: screen, previous: screen}
		assert.Equal(t, ScreenTracker, n.Back(), "screen %s", screen)
	}
}

func TestBackFromContentWithHistory(t *testing.T) {
	n := New()
	n.NavigateTo(ScreenTracker)
	n.NavigateTo(ScreenGuideSurveys)

	assert.Equal(t, ScreenTracker, n.Back())
}

func TestBackFromAuthScreens(t *testing.T) {
	n := New()
	n.NavigateTo(ScreenLogin)
	assert.Equal(t, ScreenOnboarding, n.Back())

	n.NavigateTo(ScreenCreateAccount)
	assert.Equal(t, ScreenOnboarding, n.Back())
}

func TestIsContent(t *testing.T) {
	assert.True(t, IsContent(ScreenCostCalculator))
	assert.False(t, IsContent(ScreenTracker))
	assert.False(t, IsContent(ScreenChat))
}
