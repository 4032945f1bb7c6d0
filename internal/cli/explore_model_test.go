package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestExploreModel(t *testing.T, staff, molds int) exploreModel {
	t.Helper()
	req := contract.NewAllocationRequest(100, 8)
	req.StaffCount = staff
	req.MoldsAvailable = molds
	return newExploreModel(context.Background(), newPlans(t), req)
}

func update(t *testing.T, m exploreModel, msg tea.Msg) exploreModel {
	t.Helper()
	model, _ := m.Update(msg)
	next, ok := model.(exploreModel)
	require.True(t, ok)
	return next
}

func TestExploreModel_InitialPlan(t *testing.T) {
	m := newTestExploreModel(t, 11, 20)

	require.NoError(t, m.err)
	require.NotNil(t, m.resp)
	assert.True(t, m.resp.Report.Feasibility.IsViable)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "PRODUCTION PLAN")
	assert.Contains(t, m.View(), "crew")
}

func TestExploreModel_AdjustsResourcesAndReplans(t *testing.T) {
	m := newTestExploreModel(t, 4, 20)

	m = update(t, m, runes("-"))
	assert.Equal(t, 3, m.req.StaffCount)
	assert.True(t, m.resp.Report.HasAlert(contract.AlertStaffLimited))

	m = update(t, m, runes("+"))
	m = update(t, m, runes("+"))
	assert.Equal(t, 5, m.req.StaffCount)
	assert.False(t, m.resp.Report.HasAlert(contract.AlertStaffLimited))

	m = update(t, m, runes("]"))
	assert.Equal(t, 21, m.req.MoldsAvailable)
	m = update(t, m, runes("["))
	assert.Equal(t, 20, m.req.MoldsAvailable)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 7.5, m.req.HoursAvailable)
	assert.Equal(t, 7.5, m.resp.Report.Feasibility.HoursAvailable)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 110, m.req.TargetUnits)
	assert.Equal(t, 110, m.resp.Report.Request.TargetUnits)
}

func TestExploreModel_ClampsAtZero(t *testing.T) {
	m := newTestExploreModel(t, 0, 0)

	m = update(t, m, runes("-"))
	m = update(t, m, runes("["))
	assert.Equal(t, 0, m.req.StaffCount)
	assert.Equal(t, 0, m.req.MoldsAvailable)
	require.NoError(t, m.err)

	for i := 0; i < 20; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 1, m.req.TargetUnits)
	require.NoError(t, m.err)
}

func TestExploreModel_HelpAndQuit(t *testing.T) {
	m := newTestExploreModel(t, 11, 5)

	m = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.help.Width)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestExploreModel_ShowsErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := newExploreModel(ctx, newPlans(t), contract.NewAllocationRequest(100, 8))

	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}

func TestExploreModel_DrivenSession(t *testing.T) {
	d := teatest.New(t, newTestExploreModel(t, 11, 20), teatest.WithSize(100, 40))
	assert.Contains(t, d.View(), "VIABLE")

	// Cut the day to 5 hours: the 5.7h cycle no longer fits.
	d.Press("left", "left", "left", "left", "left", "left")
	m := d.Model.(exploreModel)
	assert.Equal(t, 5.0, m.req.HoursAvailable)
	assert.Contains(t, d.View(), "NOT VIABLE")
	assert.Contains(t, d.View(), "Not enough time")

	d.Press("ctrl+c")
	assert.True(t, d.Quitting)
}
