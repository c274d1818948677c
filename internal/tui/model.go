// Package tui is the terminal tracker client: the seven-stage journey
// checklist, the guide assistant chat, and the resource pages, all
// routed through the nav state machine.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firsthome/firsthome/internal/client"
	"github.com/firsthome/firsthome/internal/content"
	"github.com/firsthome/firsthome/internal/journey"
	"github.com/firsthome/firsthome/internal/nav"
)

// guideForScreen maps guide screens to embedded guide slugs.
var guideForScreen = map[nav.Screen]string{
	nav.ScreenGuideHouseHunting: "house-hunting",
	nav.ScreenGuideMakingOffer:  "making-an-offer",
	nav.ScreenGuideConveyancing: "legal-and-conveyancing",
	nav.ScreenGuideMortgages:    "mortgages",
	nav.ScreenGuideSolicitors:   "solicitors",
	nav.ScreenGuideSurveys:      "surveys",
	nav.ScreenGuideMoving:       "moving-day",
	nav.ScreenTimeline:          "timeline",
}

type chatLine struct {
	fromUser bool
	text     string
}

type syncResultMsg struct{ ok bool }

type authResultMsg struct{ err error }

type costsResultMsg struct {
	est *client.CostEstimate
	err error
}

// JourneyStore is the local persistence port. *localstore.File is the
// real implementation; tests may substitute an in-memory fake.
type JourneyStore interface {
	Load() *journey.PersistedJourney
	Save(p journey.PersistedJourney)
	Clear()
}

// Model is the root bubbletea model.
type Model struct {
	nav    *nav.Navigator
	stages []journey.Stage
	store  JourneyStore
	api    *client.Client
	logger *slog.Logger

	stageIdx int
	itemIdx  int

	editingNote bool
	noteInput   textinput.Model

	chatInput textinput.Model
	chatLog   []chatLine

	emailInput    textinput.Model
	passwordInput textinput.Model
	authField     int
	authErr       string

	priceInput   textinput.Model
	depositInput textinput.Model
	calcField    int
	firstTime    bool
	costs        *client.CostEstimate
	costsErr     string

	status string
	width  int
	height int
}

// New builds the tracker model. The journey loads from the remote
// gateway when logged in, otherwise from the local file; either way it
// merges onto the current template so new checklist items appear.
func New(store JourneyStore, api *client.Client, logger *slog.Logger) Model {
	var saved *journey.PersistedJourney
	if api != nil && api.LoggedIn() {
		saved = api.FetchJourney(context.Background())
	} else {
		saved = store.Load()
	}

	note := textinput.New()
	note.Placeholder = "add a note"
	note.CharLimit = 280

	chat := textinput.New()
	chat.Placeholder = "ask about buying your first home"
	chat.CharLimit = 280

	email := textinput.New()
	email.Placeholder = "email"
	password := textinput.New()
	password.Placeholder = "password (8+ characters)"
	password.EchoMode = textinput.EchoPassword

	price := textinput.New()
	price.Placeholder = "250000"
	price.CharLimit = 9
	deposit := textinput.New()
	deposit.Placeholder = "25000"
	deposit.CharLimit = 9

	return Model{
		nav:           nav.New(),
		stages:        journey.Merge(content.DefaultStages(), saved),
		store:         store,
		api:           api,
		logger:        logger,
		noteInput:     note,
		chatInput:     chat,
		emailInput:    email,
		passwordInput: password,
		priceInput:    price,
		depositInput:  deposit,
		firstTime:     true,
		chatLog:       []chatLine{{text: content.ChatGreeting()}},
	}
}

func (m Model) Init() tea.Cmd { return nil }

// persist writes the current journey to the local file and, when a
// session exists, queues a remote sync.
func (m *Model) persist() tea.Cmd {
	p := journey.ToPersisted(m.stages)
	m.store.Save(p)

	if m.api == nil || !m.api.LoggedIn() {
		return nil
	}
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return syncResultMsg{ok: api.UpsertJourney(ctx, p)}
	}
}

func (m *Model) loginCmd(signup bool) tea.Cmd {
	email := strings.TrimSpace(m.emailInput.Value())
	password := m.passwordInput.Value()
	api := m.api

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		if signup {
			err = api.Signup(ctx, email, password)
		} else {
			err = api.Login(ctx, email, password)
		}
		return authResultMsg{err: err}
	}
}

func (m *Model) costsCmd() tea.Cmd {
	price, _ := strconv.ParseFloat(strings.TrimSpace(m.priceInput.Value()), 64)
	deposit, _ := strconv.ParseFloat(strings.TrimSpace(m.depositInput.Value()), 64)
	api := m.api
	firstTime := m.firstTime

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		est, err := api.Costs(ctx, price, deposit, firstTime)
		return costsResultMsg{est: est, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case syncResultMsg:
		if msg.ok {
			m.status = "synced"
		} else {
			m.logger.Debug("remote sync failed, local copy is current")
			m.status = "saved locally (sync failed)"
		}
		return m, nil

	case authResultMsg:
		if msg.err != nil {
			m.authErr = msg.err.Error()
			return m, nil
		}
		m.authErr = ""
		m.passwordInput.SetValue("")
		// Remote progress wins on login; merge it onto the template.
		if saved := m.api.FetchJourney(context.Background()); saved != nil {
			m.stages = journey.Merge(content.DefaultStages(), saved)
		} else {
			// First login from this device: push local progress up.
			m.api.UpsertJourney(context.Background(), journey.ToPersisted(m.stages))
		}
		m.status = "logged in as " + m.api.CurrentUser().Email
		m.nav.NavigateTo(nav.ScreenTracker)
		return m, nil

	case costsResultMsg:
		if msg.err != nil {
			m.costsErr = "estimate unavailable: " + msg.err.Error()
			m.costs = nil
		} else {
			m.costsErr = ""
			m.costs = msg.est
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}
