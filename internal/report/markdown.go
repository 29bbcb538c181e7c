// Package report turns session data into markdown documents for the
// interactive viewport.
package report

import (
	"fmt"
	"strings"

	"github.com/vidyasagar/bhist/internal/storage"
)

// Binding is one row of the help table.
type Binding struct {
	Keys string
	Desc string
}

// History lists every recorded visit, oldest first.
func History(records []storage.VisitRecord) string {
	var sb strings.Builder
	sb.WriteString("# History\n\n")
	if len(records) == 0 {
		sb.WriteString("History is empty.\n")
		return sb.String()
	}
	writeRecords(&sb, records)
	return sb.String()
}

// Search lists the visits matching keyword.
func Search(keyword string, records []storage.VisitRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Search: %s\n\n", code(keyword))
	if len(records) == 0 {
		sb.WriteString("No matching entries found.\n")
		return sb.String()
	}
	writeRecords(&sb, records)
	return sb.String()
}

// Summary shows totals, the most recent visit and the top sites.
func Summary(sum storage.Summary) string {
	var sb strings.Builder
	sb.WriteString("# Session Summary\n\n")
	fmt.Fprintf(&sb, "- **Total sites visited:** %d\n", sum.Total)
	fmt.Fprintf(&sb, "- **Most recent visit:** %s\n\n", code(sum.MostRecent))

	sb.WriteString("## Top 3 most visited sites\n\n")
	if len(sum.Top) == 0 {
		sb.WriteString("Nothing visited yet.\n")
		return sb.String()
	}
	sb.WriteString("| # | Site | Visits |\n|---|------|--------|\n")
	for i, site := range sum.Top {
		fmt.Fprintf(&sb, "| %d | %s | %d |\n", i+1, code(site.URL), site.Visits)
	}
	return sb.String()
}

// Bookmarks lists categories and their URLs in the order given.
func Bookmarks(cats []storage.Category) string {
	var sb strings.Builder
	sb.WriteString("# Bookmarks\n\n")
	if len(cats) == 0 {
		sb.WriteString("No bookmarks saved.\n")
		return sb.String()
	}
	for _, c := range cats {
		fmt.Fprintf(&sb, "## %s\n\n", c.Name)
		for _, url := range c.URLs {
			fmt.Fprintf(&sb, "- %s\n", code(url))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Navigation shows the current page and both stacks, most recent first.
func Navigation(current string, back, forward []string) string {
	var sb strings.Builder
	sb.WriteString("# Navigation\n\n")
	if current == "" {
		sb.WriteString("No page loaded.\n\n")
	} else {
		fmt.Fprintf(&sb, "Current Page: %s\n\n", code(current))
	}
	writeStack(&sb, "Back", back)
	writeStack(&sb, "Forward", forward)
	return sb.String()
}

// Help renders the keybinding and command tables.
func Help(keys, commands []Binding) string {
	var sb strings.Builder
	sb.WriteString("# Help\n\n## Keys\n\n")
	writeBindings(&sb, keys)
	sb.WriteString("\n## Commands\n\n")
	writeBindings(&sb, commands)
	return sb.String()
}

func writeRecords(sb *strings.Builder, records []storage.VisitRecord) {
	sb.WriteString("| # | URL | Visited |\n|---|-----|---------|\n")
	for i, rec := range records {
		fmt.Fprintf(sb, "| %d | %s | %s |\n", i+1, code(rec.URL), cell(rec.Timestamp))
	}
}

func writeStack(sb *strings.Builder, name string, stack []string) {
	fmt.Fprintf(sb, "## %s (%d)\n\n", name, len(stack))
	if len(stack) == 0 {
		sb.WriteString("_empty_\n\n")
		return
	}
	for _, url := range stack {
		fmt.Fprintf(sb, "1. %s\n", code(url))
	}
	sb.WriteString("\n")
}

func writeBindings(sb *strings.Builder, bindings []Binding) {
	sb.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, b := range bindings {
		fmt.Fprintf(sb, "| %s | %s |\n", code(b.Keys), cell(b.Desc))
	}
}

// code wraps s in a code span so URL punctuation is not read as markdown.
func code(s string) string {
	s = cell(s)
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}

// cell keeps s from breaking a table row.
func cell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
