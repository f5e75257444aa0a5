// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-checker/internal/dictionary"
	"github.com/jonathan/ats-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of an analysis result.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Score: %d / 100\n", result.ATSScore))
	if b := result.Breakdown; b != nil {
		sb.WriteString(fmt.Sprintf("  keyword match %d  completeness %d\n", b.KeywordMatch, b.Completeness))
		sb.WriteString(fmt.Sprintf("  formatting %d  density %d\n", b.Formatting, b.Density))
	}
	sb.WriteString("\n")

	writeList(&sb, "Matched keywords", result.MatchedKeywords)
	writeList(&sb, "Missing keywords", result.MissingKeywords)
	writeList(&sb, "Warnings", result.Warnings)
	writeList(&sb, "Suggestions", result.Suggestions)

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDictionary outputs the loaded dictionary version and entry counts.
func (p *Printer) PrintDictionary(dict *dictionary.Dictionary) {
	if dict == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Version:  %s\n", dict.Version()))
	sb.WriteString(fmt.Sprintf("Keywords: %d\n", dict.Len()))

	// Fixed order so output is stable.
	categories := []dictionary.Category{
		dictionary.CategoryLanguage,
		dictionary.CategoryFramework,
		dictionary.CategoryTool,
		dictionary.CategorySoftSkill,
		dictionary.CategoryOther,
	}
	counts := dict.CountByCategory()
	for _, c := range categories {
		if counts[c] > 0 {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", c, counts[c]))
		}
	}

	p.printBox("KEYWORD DICTIONARY", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
