// Package nav is the screen-navigation state machine for the tracker
// client: a flat set of named screens, one navigate action, one back
// action. Ephemeral, in-memory, single-threaded.
package nav

// Screen identifies one screen of the app.
type Screen string

const (
	ScreenOnboarding    Screen = "onboarding"
	ScreenHowItWorks    Screen = "how-it-works"
	ScreenTracker       Screen = "tracker"
	ScreenChat          Screen = "chat"
	ScreenCreateAccount Screen = "create-account"
	ScreenLogin         Screen = "login"

	// Resource pages.
	ScreenFAQs           Screen = "faqs"
	ScreenGlossary       Screen = "glossary"
	ScreenCostCalculator Screen = "cost-calculator"
	ScreenTimeline       Screen = "timeline"

	// Company pages.
	ScreenAbout         Screen = "about"
	ScreenContact       Screen = "contact"
	ScreenPrivacy       Screen = "privacy"
	ScreenTerms         Screen = "terms"
	ScreenCookies       Screen = "cookies"
	ScreenAccessibility Screen = "accessibility"

	// Guide pages.
	ScreenGuideHouseHunting Screen = "guide-house-hunting"
	ScreenGuideMakingOffer  Screen = "guide-making-an-offer"
	ScreenGuideConveyancing Screen = "guide-legal-and-conveyancing"
	ScreenGuideMortgages    Screen = "guide-mortgages"
	ScreenGuideSolicitors   Screen = "guide-solicitors"
	ScreenGuideSurveys      Screen = "guide-surveys"
	ScreenGuideMoving       Screen = "guide-moving"
)

// contentScreens are the pages reachable from anywhere (footer links,
// deep links). Back from one of these with no real history lands on the
// tracker instead of looping.
var contentScreens = map[Screen]bool{
	ScreenFAQs:              true,
	ScreenGlossary:          true,
	ScreenCostCalculator:    true,
	ScreenTimeline:          true,
	ScreenAbout:             true,
	ScreenContact:           true,
	ScreenPrivacy:           true,
	ScreenTerms:             true,
	ScreenCookies:           true,
	ScreenAccessibility:     true,
	ScreenGuideHouseHunting: true,
	ScreenGuideMakingOffer:  true,
	ScreenGuideConveyancing: true,
	ScreenGuideMortgages:    true,
	ScreenGuideSolicitors:   true,
	ScreenGuideSurveys:      true,
	ScreenGuideMoving:       true,
}

// IsContent reports whether s is a guide, resource, or company page.
func IsContent(s Screen) bool { return contentScreens[s] }

// Navigator tracks the current screen and the one before it. The zero
// value is not useful; use New.
type Navigator struct {
	current  Screen
	previous Screen
}

// New returns a navigator starting on the onboarding screen.
func New() *Navigator {
	return &Navigator{current: ScreenOnboarding, previous: ScreenOnboarding}
}

func (n *Navigator) Current() Screen  { return n.current }
func (n *Navigator) Previous() Screen { return n.previous }

// NavigateTo records the current screen as previous and moves to screen.
func (n *Navigator) NavigateTo(screen Screen) {
	n.previous = n.current
	n.current = screen
}

// Back returns to the previous screen. A content screen whose previous
// equals itself (a direct deep link with no real history) falls back to
// the tracker.
func (n *Navigator) Back() Screen {
	if IsContent(n.current) && n.previous == n.current {
		n.current = ScreenTracker
		return n.current
	}
	n.current = n.previous
	return n.current
}
