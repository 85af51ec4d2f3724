// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items as bullets followed by an overflow line.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func yesNo(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// PrintAnalysis outputs every section of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintQuality(&result.Quality)
	p.PrintMatch(result.Match)
	p.PrintATSReport(&result.ATS)
	p.PrintPowerVerbs(&result.PowerVerbs)
	p.PrintInsights(&result.Insights)
}

// PrintQuality outputs the quality score and the features that drive it.
func (p *Printer) PrintQuality(quality *types.QualityResult) {
	if quality == nil {
		return
	}

	f := quality.Features
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.2f / 100\n", quality.QualityScore))
	sb.WriteString(fmt.Sprintf("Model:    %s\n", quality.ModelUsed))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Words: %.0f   Sentences: %.0f   Sections: %.0f\n", f.WordCount, f.SentenceCount, f.SectionCount))
	sb.WriteString(fmt.Sprintf("Numbers: %.0f   Percentages: %.0f\n", f.NumbersCount, f.PercentageMentions))
	sb.WriteString(fmt.Sprintf("Power verb ratio: %.2f", f.PowerVerbRatio))

	p.printBox("QUALITY SCORE", sb.String())
}

// PrintMatch outputs the job description match. Nothing is printed when no
// job description was supplied.
func (p *Printer) PrintMatch(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:    %.2f%%\n", match.MatchScore))
	sb.WriteString(fmt.Sprintf("Keywords: %d in JD, %d in resume\n", match.JDKeywordCount, match.ResumeKeywordCount))
	sb.WriteString(fmt.Sprintf("Technical: %d/%d   Important: %d/%d\n",
		match.ScientificKeywordsMatched, match.ScientificKeywordsTotal,
		match.ImportantKeywordsMatched, match.ImportantKeywordsTotal))

	if len(match.CommonKeywords) > 0 {
		sb.WriteString("\nMatched:\n")
		writeList(&sb, match.CommonKeywords, maxItemsToShow)
	}
	if len(match.MissingKeywords) > 0 {
		sb.WriteString("\nMissing:\n")
		writeList(&sb, match.MissingKeywords, maxItemsToShow)
	}

	p.printBox("JOB DESCRIPTION MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSReport outputs section, contact and formatting checks with issues.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	s := report.SectionChecks
	c := report.ContactCheck
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.2f / 100\n", report.ATSScore))
	sb.WriteString(fmt.Sprintf("Sections: %s education %s experience %s skills\n", yesNo(s.Education), yesNo(s.Experience), yesNo(s.Skills)))
	sb.WriteString(fmt.Sprintf("          %s contact %s summary\n", yesNo(s.Contact), yesNo(s.Summary)))
	sb.WriteString(fmt.Sprintf("Contact:  %s email %s phone\n", yesNo(c.HasEmail), yesNo(c.HasPhone)))

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		writeList(&sb, report.Issues, maxItemsToShow)
	}
	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		writeList(&sb, report.Recommendations, 3)
	}

	p.printBox("ATS COMPLIANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPowerVerbs outputs weak verb findings with their suggestions.
func (p *Printer) PrintPowerVerbs(report *types.PowerVerbReport) {
	if report == nil {
		return
	}

	st := report.Stats
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.2f / 100\n", st.PowerVerbScore))
	sb.WriteString(fmt.Sprintf("Strong:   %d   Weak: %d\n", st.StrongVerbCount, st.WeakVerbCount))

	if len(report.Findings) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Findings), maxItemsToShow)
		for i := 0; i < count; i++ {
			finding := report.Findings[i]
			sb.WriteString(fmt.Sprintf("⚠ %s → %s\n", finding.WeakVerb, strings.Join(finding.Suggestions, ", ")))
		}
		if len(report.Findings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more findings\n", len(report.Findings)-maxItemsToShow))
		}
	}

	p.printBox("POWER VERBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs extracted projects and achievements.
func (p *Printer) PrintInsights(insights *types.Insights) {
	if insights == nil || (len(insights.Projects) == 0 && len(insights.Achievements) == 0) {
		return
	}

	var sb strings.Builder
	if len(insights.Projects) > 0 {
		sb.WriteString("Projects:\n")
		for _, project := range insights.Projects {
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", project.Title, project.Confidence))
			if len(project.TechStack) > 0 {
				sb.WriteString(fmt.Sprintf("    [%s]\n", truncate(strings.Join(project.TechStack, ", "), 40)))
			}
		}
	}
	if len(insights.Achievements) > 0 {
		if len(insights.Projects) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Achievements:\n")
		for _, achievement := range insights.Achievements {
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", achievement.Category, achievement.Title))
		}
	}

	p.printBox("INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
