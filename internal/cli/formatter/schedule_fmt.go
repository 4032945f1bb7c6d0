package formatter

import (
	"fmt"
	"strings"

	"github.com/ecollajta/smarttwin/internal/contract"
)

const spanWidth = 24

// FormatSchedule renders the phase timeline of a production day.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	s := resp.Schedule
	total := s.TotalMinutes()

	var b strings.Builder
	rows := make([][]string, 0, len(s.Phases))
	for _, p := range s.Phases {
		name := Bold(p.Name)
		if p.Critical {
			name = StyleRed.Render(p.Name + " !")
		}
		rows = append(rows, []string{
			ClockOffset(p.StartMinute),
			name,
			FormatMinutes(p.DurationMinutes()),
			RenderSpan(p.StartMinute, p.EndMinute, total, spanWidth, p.Critical),
		})
	}
	b.WriteString(RenderTable([]Column{
		{Title: "START"},
		{Title: "PHASE"},
		{Title: "LENGTH", Right: true},
		{Title: "DAY"},
	}, rows))

	for _, p := range s.Phases {
		b.WriteString("\n" + Bold(p.Name) + "\n")
		for _, a := range p.Activities {
			b.WriteString(Dim("  • "+a) + "\n")
		}
		if p.Checkpoint != "" {
			b.WriteString(StyleRed.Render(fmt.Sprintf("  ▲ %s at %s", p.Checkpoint, ClockOffset(p.EndMinute))) + "\n")
		}
	}

	if resp.Report != nil {
		fmt.Fprintf(&b, "\n%s  %s %s\n",
			ViabilityBadge(resp.Report.Feasibility.IsViable),
			Dim("Ends at"), Bold(ClockOffset(total)))
		if len(resp.Report.Alerts) > 0 {
			b.WriteString("\n")
			b.WriteString(FormatAlerts(resp.Report.Alerts))
		}
	}

	return RenderBox("Production day", b.String())
}
