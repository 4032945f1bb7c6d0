package formatter

import (
	"fmt"
	"strings"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/scheduler"
)

const shareBarWidth = 10

// FormatAllocation formats an allocation report as a styled CLI card.
func FormatAllocation(resp *contract.AllocationResponse) string {
	return RenderBox("Production plan", formatReport(resp.Report))
}

func formatReport(r *contract.AllocationReport) string {
	var b strings.Builder

	req := r.Request
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s  %s %s\n",
		Dim("Target"), Bold(Plural(req.TargetUnits, "unit")),
		Dim("Crew"), Bold(fmt.Sprintf("%d", req.StaffCount)),
		Dim("Molds"), Bold(fmt.Sprintf("%d", req.MoldsAvailable)),
		Dim("Window"), Bold(FormatHours(req.HoursAvailable)))
	fmt.Fprintf(&b, "%s  %s\n\n", ViabilityBadge(r.Feasibility.IsViable), RegimeBadge(r.Feasibility.Regime))

	b.WriteString(formatStations(r))
	b.WriteString("\n")
	b.WriteString(formatTimeline(r))

	fmt.Fprintf(&b, "\n%s %s  %s %s  %s %s\n",
		Dim("Per person"), StyleFg.Render(fmt.Sprintf("%.1f units", r.Efficiency.UnitsPerPerson)),
		Dim("Per hour"), StyleFg.Render(fmt.Sprintf("%.1f units", r.Efficiency.UnitsPerHour)),
		Dim("Molds"), StyleFg.Render(fmt.Sprintf("%.0f units/h", r.Feasibility.MoldThroughputPerHour)))

	if len(r.Alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatAlerts(r.Alerts))
	}
	return b.String()
}

func formatStations(r *contract.AllocationReport) string {
	timing := make(map[string]contract.StationTiming, len(r.Timings))
	for _, t := range r.Timings {
		timing[string(t.Station)] = t
	}
	slowest, hasSlowest := scheduler.Bottleneck(r.Timings)

	cols := []Column{
		{Title: "STATION"},
		{Title: "STAFF", Right: true},
		{Title: "SHARE"},
		{Title: "TIME", Right: true},
	}
	rows := make([][]string, 0, len(r.Allocations))
	for _, a := range r.Allocations {
		staff := fmt.Sprintf("%d", a.StaffAssigned)
		if a.Rotating {
			staff += Dim(" ↻")
		}
		minutes := Dim("--")
		if t, ok := timing[string(a.Station)]; ok {
			minutes = FormatMinutes(t.MinutesNeeded)
			if hasSlowest && t.Station == slowest.Station {
				minutes = StyleYellow.Render(minutes + " ◆")
			}
		}
		rows = append(rows, []string{
			Bold(string(a.Station)),
			staff,
			RenderShareBar(a.Share, shareBarWidth),
			minutes,
		})
	}
	return RenderTable(cols, rows)
}

func formatTimeline(r *contract.AllocationReport) string {
	tl := r.Timeline
	var b strings.Builder
	b.WriteString(Header("Timeline") + "\n")
	fmt.Fprintf(&b, "  %-12s %s\n", "Setup", FormatMinutes(tl.SetupMinutes))
	fmt.Fprintf(&b, "  %-12s %s\n", "Production", FormatMinutes(tl.ProductionMinutes))
	fmt.Fprintf(&b, "  %-12s %s\n", "Bake", FormatMinutes(tl.BakeMinutes))
	fmt.Fprintf(&b, "  %-12s %s %s\n", "Total", Bold(FormatMinutes(tl.TotalMinutes)),
		Dim(fmt.Sprintf("(%s of %s)", FormatHours(r.Feasibility.TotalCycleHours), FormatHours(r.Feasibility.HoursAvailable))))
	return b.String()
}

// FormatAlerts renders one line per alert, colored by severity.
func FormatAlerts(alerts []contract.Alert) string {
	var b strings.Builder
	for _, a := range alerts {
		fmt.Fprintf(&b, "%s %s\n", SeverityIndicator(a.Severity), SeverityColor(a.Severity).Render(a.Message))
	}
	return b.String()
}
