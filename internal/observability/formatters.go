// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/themohitbharti/joblens/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of a section score bar at score 10
	barWidth = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScanReport outputs the breakdown of a single scan.
func (p *Printer) PrintScanReport(report *types.ScanReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	b := report.Breakdown

	sb.WriteString(fmt.Sprintf("Domain:   %s\n", report.Domain))
	sb.WriteString(fmt.Sprintf("Role:     %s", report.Profile.Bucket))
	if report.Profile.Level != types.LevelUnspecified {
		sb.WriteString(fmt.Sprintf(" (%s)", report.Profile.Level))
	}
	sb.WriteString("\n")
	if report.Profile.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", report.Profile.Industry))
	}
	sb.WriteString(fmt.Sprintf("Overall:  %d/100  tier %s\n", b.OverallScore, b.Tier))
	sb.WriteString(fmt.Sprintf("Passed:   %d of %d benchmarks\n", b.PassedCount, b.TotalCount))

	if len(b.SectionScores) > 0 {
		sb.WriteString("\nSections:\n")
		for _, s := range b.SectionScores {
			sb.WriteString(fmt.Sprintf("  %-12s %4.1f %s\n", s.Section, s.Score, bar(s.Score)))
		}
	}

	p.printBox("SCAN REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the winner, key differences and recommendations of a
// comparison.
func (p *Printer) PrintComparison(result *types.ComparisonResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("A: %d/100   B: %d/100\n", result.OverallA, result.OverallB))
	switch result.Winner.Side {
	case types.SideTie:
		sb.WriteString(fmt.Sprintf("Result: tie (difference %d)\n", result.Winner.ScoreDifference))
	default:
		sb.WriteString(fmt.Sprintf("Winner: %s by %d\n", strings.ToUpper(string(result.Winner.Side)), result.Winner.ScoreDifference))
	}

	kd := result.KeyDifferences
	writeIDs(&sb, "Advantages A", kd.AdvantagesA)
	writeIDs(&sb, "Advantages B", kd.AdvantagesB)
	writeIDs(&sb, "Common weaknesses", kd.CommonWeaknesses)

	p.printBox("COMPARISON", strings.TrimSuffix(sb.String(), "\n"))

	recs := result.Recommendations
	if len(recs.ForA) == 0 && len(recs.ForB) == 0 {
		return
	}
	sb.Reset()
	writeList(&sb, "For A", recs.ForA)
	writeList(&sb, "For B", recs.ForB)
	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeIDs(sb *strings.Builder, title string, ids []types.BenchmarkID) {
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = string(id)
	}
	writeList(sb, title, items)
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func bar(score float64) string {
	n := int(score / 10 * barWidth)
	n = max(0, min(n, barWidth))
	return strings.Repeat("█", n) + strings.Repeat("·", barWidth-n)
}
