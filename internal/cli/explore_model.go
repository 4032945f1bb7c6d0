package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ecollajta/smarttwin/internal/app"
	"github.com/ecollajta/smarttwin/internal/cli/formatter"
	"github.com/ecollajta/smarttwin/internal/contract"
)

const (
	targetStep = 10
	hoursStep  = 0.5
)

type exploreKeyMap struct {
	StaffUp    key.Binding
	StaffDown  key.Binding
	MoldsUp    key.Binding
	MoldsDown  key.Binding
	HoursUp    key.Binding
	HoursDown  key.Binding
	TargetUp   key.Binding
	TargetDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultExploreKeys() exploreKeyMap {
	return exploreKeyMap{
		StaffUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "crew")),
		StaffDown:  key.NewBinding(key.WithKeys("-", "_")),
		MoldsUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "molds")),
		MoldsDown:  key.NewBinding(key.WithKeys("[")),
		HoursUp:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "hours")),
		HoursDown:  key.NewBinding(key.WithKeys("left", "h")),
		TargetUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "target")),
		TargetDown: key.NewBinding(key.WithKeys("down", "j")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StaffUp, k.MoldsUp, k.HoursUp, k.TargetUp, k.Help, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StaffUp, k.StaffDown, k.MoldsUp, k.MoldsDown},
		{k.HoursUp, k.HoursDown, k.TargetUp, k.TargetDown},
		{k.Help, k.Quit},
	}
}

// exploreModel re-plans on every keypress. Allocation is pure and cheap, so
// it runs inline in Update.
type exploreModel struct {
	ctx   context.Context
	plans app.AllocateUseCase
	req   contract.AllocationRequest
	resp  *contract.AllocationResponse
	err   error
	keys  exploreKeyMap
	help  help.Model
}

func newExploreModel(ctx context.Context, plans app.AllocateUseCase, req contract.AllocationRequest) exploreModel {
	m := exploreModel{
		ctx:   ctx,
		plans: plans,
		req:   req,
		keys:  defaultExploreKeys(),
		help:  help.New(),
	}
	m.replan()
	return m
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.StaffUp):
			m.req.StaffCount++
		case key.Matches(msg, m.keys.StaffDown):
			m.req.StaffCount = max(0, m.req.StaffCount-1)
		case key.Matches(msg, m.keys.MoldsUp):
			m.req.MoldsAvailable++
		case key.Matches(msg, m.keys.MoldsDown):
			m.req.MoldsAvailable = max(0, m.req.MoldsAvailable-1)
		case key.Matches(msg, m.keys.HoursUp):
			m.req.HoursAvailable += hoursStep
		case key.Matches(msg, m.keys.HoursDown):
			m.req.HoursAvailable = max(0, m.req.HoursAvailable-hoursStep)
		case key.Matches(msg, m.keys.TargetUp):
			m.req.TargetUnits += targetStep
		case key.Matches(msg, m.keys.TargetDown):
			m.req.TargetUnits = max(1, m.req.TargetUnits-targetStep)
		default:
			return m, nil
		}
		m.replan()
		return m, nil
	}
	return m, nil
}

func (m *exploreModel) replan() {
	m.resp, m.err = m.plans.Allocate(m.ctx, m.req)
}

func (m exploreModel) View() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.resp != nil {
		b.WriteString(formatter.FormatAllocation(m.resp) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
