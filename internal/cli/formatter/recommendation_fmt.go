package formatter

import (
	"fmt"
	"strings"

	"github.com/ecollajta/smarttwin/internal/contract"
)

// FormatRecommendation formats an optimizer result as a styled CLI card.
func FormatRecommendation(resp *contract.RecommendationResponse) string {
	rec := resp.Recommendation
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", Dim("Target"), Bold(Plural(rec.TargetUnits, "unit")))

	rows := [][]string{
		{Bold("Trays"), fmt.Sprintf("%d", rec.Trays.Optimal), fmt.Sprintf("%d", rec.Trays.Minimum)},
		{Bold("Crew"), fmt.Sprintf("%d", rec.Staff.RecommendedFor8h), Dim(fmt.Sprintf("%d molding", rec.Staff.MoldingStaff))},
		{Bold("Molds"), fmt.Sprintf("%d", rec.Molds.Optimal), fmt.Sprintf("%d", rec.Molds.Minimum)},
	}
	b.WriteString(RenderTable([]Column{
		{Title: "RESOURCE"},
		{Title: "OPTIMAL", Right: true},
		{Title: "MINIMUM", Right: true},
	}, rows))

	b.WriteString("\n")
	for _, line := range []string{rec.Trays.Rationale, rec.Staff.Rationale, rec.Molds.Rationale} {
		b.WriteString(Dim("• "+line) + "\n")
	}

	t := rec.Time
	b.WriteString("\n" + Header("Estimated cycle") + "\n")
	fmt.Fprintf(&b, "  %-12s %s\n", "Setup", FormatMinutes(t.Breakdown.SetupMinutes))
	fmt.Fprintf(&b, "  %-12s %s\n", "Production", FormatMinutes(t.Breakdown.ProductionMinutes))
	fmt.Fprintf(&b, "  %-12s %s\n", "Bake", FormatMinutes(t.Breakdown.BakeMinutes))
	fmt.Fprintf(&b, "  %-12s %s\n", "Total", Bold(FormatHours(t.EstimateHours)))
	b.WriteString(Dim(t.Rationale) + "\n")

	if t.Simulation != nil && len(t.Simulation.Alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatAlerts(t.Simulation.Alerts))
	}

	return RenderBox("Recommended resources", b.String())
}
