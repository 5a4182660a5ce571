// Package report renders engine output as a human-readable markdown
// document suitable for inclusion in an erosion-control plan submittal.
package report

import (
	"fmt"
	"strings"

	"ecworks/groundcover/pkg/model"
)

// Markdown renders the output as a markdown report: project header,
// practice tables split temporary/permanent, the pay item schedule with
// extended costs, and the optional enhancement narrative.
func Markdown(output *model.ProjectOutput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Erosion Control Plan: %s\n\n", output.ProjectName)
	fmt.Fprintf(&sb, "Generated: %s\n\n", output.Timestamp.Format("2006-01-02 15:04 MST"))

	writePracticeSection(&sb, "Temporary Practices", output.TemporaryPractices)
	writePracticeSection(&sb, "Permanent Practices", output.PermanentPractices)
	writePayItems(&sb, output.PayItems)

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- Temporary practices: %d\n", output.Summary.TotalTemporaryPractices)
	fmt.Fprintf(&sb, "- Permanent practices: %d\n", output.Summary.TotalPermanentPractices)
	fmt.Fprintf(&sb, "- Pay items: %d\n", output.Summary.TotalPayItems)
	fmt.Fprintf(&sb, "- Total estimated cost: $%.2f\n", output.Summary.TotalEstimatedCost)

	if output.Enhancement != "" {
		sb.WriteString("\n## Reviewer Notes\n\n")
		sb.WriteString(output.Enhancement)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writePracticeSection(sb *strings.Builder, title string, practices []model.ECPractice) {
	fmt.Fprintf(sb, "## %s\n\n", title)
	if len(practices) == 0 {
		sb.WriteString("None required.\n\n")
		return
	}

	sb.WriteString("| Practice | Quantity | Unit | Location | Rule |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, p := range practices {
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s (%s) |\n",
			p.PracticeType, formatQuantity(p.Quantity), p.Unit, p.Location, p.RuleID, p.RuleSource)
	}
	sb.WriteString("\n")

	for _, p := range practices {
		if p.Justification != "" {
			fmt.Fprintf(sb, "- **%s**: %s\n", p.PracticeType, p.Justification)
		}
	}
	sb.WriteString("\n")
}

func writePayItems(sb *strings.Builder, items []model.PayItem) {
	sb.WriteString("## Pay Items\n\n")
	if len(items) == 0 {
		sb.WriteString("None.\n\n")
		return
	}

	sb.WriteString("| Item | Description | Quantity | Unit | Unit Cost | Extended |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, item := range items {
		extended := item.Quantity * item.EstimatedUnitCost
		fmt.Fprintf(sb, "| %s | %s | %s | %s | $%.2f | $%.2f |\n",
			item.ItemNumber, item.Description, formatQuantity(item.Quantity),
			item.Unit, item.EstimatedUnitCost, extended)
	}
	sb.WriteString("\n")
}

// formatQuantity trims trailing zeros so whole quantities print without a
// decimal point.
func formatQuantity(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
