package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firsthome/firsthome/internal/content"
	"github.com/firsthome/firsthome/internal/nav"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.nav.Current() {
	case nav.ScreenOnboarding:
		return m.handleOnboardingKey(msg)
	case nav.ScreenHowItWorks:
		return m.handleStaticKey(msg)
	case nav.ScreenTracker:
		return m.handleTrackerKey(msg)
	case nav.ScreenChat:
		return m.handleChatKey(msg)
	case nav.ScreenLogin, nav.ScreenCreateAccount:
		return m.handleAuthKey(msg)
	case nav.ScreenCostCalculator:
		return m.handleCalculatorKey(msg)
	default:
		// Guides, FAQs, glossary, timeline, company pages.
		return m.handleStaticKey(msg)
	}
}

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", " ":
		m.nav.NavigateTo(nav.ScreenTracker)
	case "?":
		m.nav.NavigateTo(nav.ScreenHowItWorks)
	case "l":
		m.nav.NavigateTo(nav.ScreenLogin)
	case "a":
		m.nav.NavigateTo(nav.ScreenCreateAccount)
	case "i":
		m.nav.NavigateTo(nav.ScreenAbout)
	}
	return m, nil
}

func (m Model) handleStaticKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.nav.Back()
	}
	return m, nil
}

func (m Model) handleTrackerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingNote {
		return m.handleNoteKey(msg)
	}

	stage := &m.stages[m.stageIdx]

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "left", "h":
		if m.stageIdx > 0 {
			m.stageIdx--
			m.itemIdx = 0
		}
	case "right", "l":
		if m.stageIdx < len(m.stages)-1 {
			m.stageIdx++
			m.itemIdx = 0
		}
	case "up", "k":
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case "down", "j":
		if m.itemIdx < len(stage.ChecklistItems)-1 {
			m.itemIdx++
		}

	case " ", "x":
		item := stage.ChecklistItems[m.itemIdx]
		stage.SetItemCompleted(item.ID, !item.Completed)
		return m, m.persist()

	case "d":
		stage.MarkDone()
		return m, m.persist()
	case "u":
		stage.MarkNotDone()
		return m, m.persist()

	case "n":
		m.editingNote = true
		m.noteInput.SetValue(stage.ChecklistItems[m.itemIdx].Note)
		m.noteInput.Focus()
		return m, nil

	case "g":
		if screen, ok := guideScreenForStage(stage.ID); ok {
			m.nav.NavigateTo(screen)
		}
	case "c":
		m.nav.NavigateTo(nav.ScreenChat)
		m.chatInput.Focus()
		return m, nil
	case "f":
		m.nav.NavigateTo(nav.ScreenFAQs)
	case "G":
		m.nav.NavigateTo(nav.ScreenGlossary)
	case "t":
		m.nav.NavigateTo(nav.ScreenTimeline)
	case "o":
		m.nav.NavigateTo(nav.ScreenCostCalculator)
		m.priceInput.Focus()
		return m, nil
	case "?":
		m.nav.NavigateTo(nav.ScreenHowItWorks)
	case "L":
		if m.api != nil && m.api.LoggedIn() {
			m.api.Logout(context.Background())
			m.status = "logged out"
		} else {
			m.nav.NavigateTo(nav.ScreenLogin)
			m.emailInput.Focus()
		}
		return m, nil

	case "ctrl+d":
		// Delete account: remote record, session, and the local file.
		if m.api == nil || !m.api.LoggedIn() {
			return m, nil
		}
		if err := m.api.DeleteAccount(context.Background()); err != nil {
			m.status = "account delete failed: " + err.Error()
			return m, nil
		}
		m.store.Clear()
		m.stages = content.DefaultStages()
		m.stageIdx, m.itemIdx = 0, 0
		m.status = "account deleted"
		return m, nil
	}
	return m, nil
}

// guideScreenForStage pairs each journey stage with its closest guide.
func guideScreenForStage(stageID int) (nav.Screen, bool) {
	switch stageID {
	case 0:
		return nav.ScreenGuideMortgages, true
	case 1:
		return nav.ScreenGuideHouseHunting, true
	case 2:
		return nav.ScreenGuideMakingOffer, true
	case 3:
		return nav.ScreenGuideConveyancing, true
	case 4:
		return nav.ScreenGuideSurveys, true
	case 5:
		return nav.ScreenGuideSolicitors, true
	case 6:
		return nav.ScreenGuideMoving, true
	default:
		return "", false
	}
}

func (m Model) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingNote = false
		m.noteInput.Blur()
		return m, nil
	case "enter":
		stage := &m.stages[m.stageIdx]
		item := stage.ChecklistItems[m.itemIdx]
		stage.SetItemNote(item.ID, strings.TrimSpace(m.noteInput.Value()))
		m.editingNote = false
		m.noteInput.Blur()
		return m, m.persist()
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatInput.Blur()
		m.nav.Back()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" {
			return m, nil
		}
		m.chatLog = append(m.chatLog,
			chatLine{fromUser: true, text: text},
			chatLine{text: content.Reply(text)},
		)
		m.chatInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.emailInput.Blur()
		m.passwordInput.Blur()
		m.nav.Back()
		return m, nil
	case "tab", "shift+tab":
		m.authField = 1 - m.authField
		if m.authField == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.passwordInput.Focus()
			m.emailInput.Blur()
		}
		return m, nil
	case "enter":
		if m.api == nil {
			m.authErr = "no server configured"
			return m, nil
		}
		return m, m.loginCmd(m.nav.Current() == nav.ScreenCreateAccount)
	}

	var cmd tea.Cmd
	if m.authField == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleCalculatorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.priceInput.Blur()
		m.depositInput.Blur()
		m.nav.Back()
		return m, nil
	case "tab", "shift+tab":
		m.calcField = 1 - m.calcField
		if m.calcField == 0 {
			m.priceInput.Focus()
			m.depositInput.Blur()
		} else {
			m.depositInput.Focus()
			m.priceInput.Blur()
		}
		return m, nil
	case "b":
		m.firstTime = !m.firstTime
		return m, nil
	case "enter":
		if m.api == nil {
			m.costsErr = "estimate needs a server connection"
			return m, nil
		}
		return m, m.costsCmd()
	}

	var cmd tea.Cmd
	if m.calcField == 0 {
		m.priceInput, cmd = m.priceInput.Update(msg)
	} else {
		m.depositInput, cmd = m.depositInput.Update(msg)
	}
	return m, cmd
}
