package tui

import (
	"fmt"
	"strings"

	"github.com/firsthome/firsthome/internal/content"
	"github.com/firsthome/firsthome/internal/journey"
	"github.com/firsthome/firsthome/internal/nav"
)

func (m Model) View() string {
	switch m.nav.Current() {
	case nav.ScreenOnboarding:
		return m.viewOnboarding()
	case nav.ScreenHowItWorks:
		return m.viewHowItWorks()
	case nav.ScreenTracker:
		return m.viewTracker()
	case nav.ScreenChat:
		return m.viewChat()
	case nav.ScreenLogin:
		return m.viewAuth("Log in")
	case nav.ScreenCreateAccount:
		return m.viewAuth("Create account")
	case nav.ScreenFAQs:
		return m.viewFAQs()
	case nav.ScreenGlossary:
		return m.viewGlossary()
	case nav.ScreenCostCalculator:
		return m.viewCalculator()
	default:
		if slug, ok := guideForScreen[m.nav.Current()]; ok {
			return m.viewGuide(slug)
		}
		return m.viewCompanyPage()
	}
}

func (m Model) viewOnboarding() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FirstHome") + "\n\n")
	b.WriteString("Buying your first home is a maze of jargon, fees, and\n")
	b.WriteString("waiting. FirstHome breaks it into seven clear stages and\n")
	b.WriteString("tracks what you've done and what comes next.\n\n")
	b.WriteString(helpStyle.Render("enter start tracking · ? how it works · l log in · a create account · i about · q quit"))
	return b.String()
}

func (m Model) viewHowItWorks() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("How it works") + "\n\n")
	b.WriteString("Your journey is split into seven stages, from getting\n")
	b.WriteString("mortgage-ready to moving in. Each stage has a short\n")
	b.WriteString("checklist; tick items off as you go and the stage status\n")
	b.WriteString("follows automatically. Notes stay attached to each item.\n\n")
	b.WriteString("Progress saves to this device. Create a free account to\n")
	b.WriteString("sync it across devices.\n\n")
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}

func (m Model) viewTracker() string {
	var b strings.Builder

	// Stage strip.
	var strip []string
	for i, s := range m.stages {
		label := fmt.Sprintf("%s %s", stageGlyph(s.Status), s.StageNumber)
		if i == m.stageIdx {
			strip = append(strip, selectedStyle.Render(label))
		} else {
			strip = append(strip, statusStyleFor(string(s.Status)).Render(label))
		}
	}
	b.WriteString(strings.Join(strip, " ") + "\n\n")

	stage := m.stages[m.stageIdx]
	b.WriteString(titleStyle.Render(stage.Title))
	b.WriteString("  " + statusStyleFor(string(stage.Status)).Render(string(stage.Status)) + "\n")
	if stage.ConversationalHeader != "" {
		b.WriteString(headerStyle.Render(stage.ConversationalHeader) + "\n")
	}
	if info := content.StageInfo(stage.ID); info != "" {
		b.WriteString(noteStyle.Render(info) + "\n")
	}
	if stage.Warning != "" {
		b.WriteString(warningStyle.Render("! "+stage.Warning) + "\n")
	}
	b.WriteString("\n")

	for i, item := range stage.ChecklistItems {
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, item.Label)
		if i == m.itemIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
		if item.Note != "" {
			b.WriteString(noteStyle.Render("      "+item.Note) + "\n")
		}
	}

	if m.editingNote {
		b.WriteString("\n" + boxStyle.Render("note: "+m.noteInput.View()) + "\n")
		b.WriteString(helpStyle.Render("enter save · esc cancel"))
		return b.String()
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	b.WriteString("\n\n" + helpStyle.Render(
		"←/→ stage · ↑/↓ item · space toggle · d done · u not done · n note\n"+
			"g guide · c chat · f faqs · G glossary · t timeline · o costs · L account · q quit"))
	return b.String()
}

func stageGlyph(s journey.Status) string {
	switch s {
	case journey.StatusCompleted:
		return "●"
	case journey.StatusInProgress:
		return "◐"
	default:
		return "○"
	}
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Guide assistant") + "\n\n")

	lines := m.chatLog
	if len(lines) > 12 {
		lines = lines[len(lines)-12:]
	}
	for _, l := range lines {
		if l.fromUser {
			b.WriteString(chatUserStyle.Render("you: "+l.text) + "\n")
		} else {
			b.WriteString(chatBotStyle.Render(l.text) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(boxStyle.Render(m.chatInput.View()) + "\n")
	b.WriteString(helpStyle.Render("try: " + strings.Join(content.SuggestedPrompts(), " · ")))
	b.WriteString("\n" + helpStyle.Render("enter send · esc back"))
	return b.String()
}

func (m Model) viewAuth(heading string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	b.WriteString("email:    " + m.emailInput.View() + "\n")
	b.WriteString("password: " + m.passwordInput.View() + "\n")
	if m.authErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.authErr) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab switch field · enter submit · esc back"))
	return b.String()
}

func (m Model) viewFAQs() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FAQs") + "\n\n")
	for _, cat := range content.FAQs() {
		b.WriteString(headerStyle.Render(cat.Category) + "\n")
		for _, q := range cat.Questions {
			b.WriteString("  " + q.Question + "\n")
			b.WriteString(noteStyle.Render("  "+q.Answer) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}

func (m Model) viewGlossary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Glossary") + "\n\n")
	for _, e := range content.Glossary() {
		b.WriteString(headerStyle.Render(e.Term) + " — " + e.Definition + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("esc back"))
	return b.String()
}

func (m Model) viewGuide(slug string) string {
	guide, ok := content.GuideBySlug(slug)
	if !ok {
		return errorStyle.Render("guide not found") + "\n" + helpStyle.Render("esc back")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(guide.Title) + "\n\n")
	b.WriteString(guide.Intro + "\n\n")
	for _, s := range guide.Sections {
		b.WriteString(headerStyle.Render(s.Heading) + "\n")
		b.WriteString(s.Body + "\n\n")
	}
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}

func (m Model) viewCalculator() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upfront cost calculator") + "\n\n")
	b.WriteString("property price: £" + m.priceInput.View() + "\n")
	b.WriteString("deposit:        £" + m.depositInput.View() + "\n")
	ftb := "yes"
	if !m.firstTime {
		ftb = "no"
	}
	b.WriteString("first-time buyer: " + ftb + "\n")

	if m.costsErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.costsErr) + "\n")
	}
	if m.costs != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("stamp duty:      £%.0f  %s\n", m.costs.StampDuty, noteStyle.Render(m.costs.StampDutyLabel)))
		b.WriteString(fmt.Sprintf("mortgage amount: £%.0f\n", m.costs.MortgageAmount))
		b.WriteString(fmt.Sprintf("loan to value:   %.0f%%\n", m.costs.LoanToValue))
		if m.costs.HighLTV {
			b.WriteString(warningStyle.Render("high LTV mortgages (over 90%) typically cost more") + "\n")
		}
		for _, c := range m.costs.OtherCosts {
			b.WriteString(fmt.Sprintf("%-16s £%d to £%d\n", strings.ToLower(c.Name)+":", c.Min, c.Max))
		}
	}

	b.WriteString("\n" + helpStyle.Render("tab switch field · b toggle first-time buyer · enter estimate · esc back"))
	return b.String()
}

func (m Model) viewCompanyPage() string {
	title := strings.ReplaceAll(string(m.nav.Current()), "-", " ")
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString("FirstHome is an independent guide for first-time buyers\n")
	b.WriteString("in England and Northern Ireland. Nothing here is financial\n")
	b.WriteString("or legal advice; always confirm the details for your own\n")
	b.WriteString("purchase with your solicitor and lender.\n\n")
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}
