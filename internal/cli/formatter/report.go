// Package formatter renders service responses for the terminal (lipgloss)
// and as markdown (go-pretty). Formatters never touch the store.
package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Section is one block of a report: optional free lines followed by an
// optional table.
type Section struct {
	Heading string
	Lines   []string
	Headers []string
	Rows    [][]string
	// Empty is printed instead of the table when Rows is empty.
	Empty string
}

// Report is the presentation model shared by the terminal and markdown
// renderers.
type Report struct {
	Title    string
	Summary  []string
	Sections []Section
	Warnings []string
}

// Terminal renders r with lipgloss styling.
func (r Report) Terminal() string {
	var b strings.Builder
	b.WriteString(RenderBox(r.Title, strings.Join(r.Summary, "\n")))
	b.WriteString("\n")

	for _, s := range r.Sections {
		b.WriteString("\n")
		if s.Heading != "" {
			b.WriteString(Header(s.Heading))
			b.WriteString("\n")
		}
		for _, l := range s.Lines {
			b.WriteString("  " + l + "\n")
		}
		switch {
		case len(s.Headers) > 0 && len(s.Rows) > 0:
			b.WriteString(RenderTable(s.Headers, s.Rows))
		case s.Empty != "":
			b.WriteString("  " + Dim(s.Empty) + "\n")
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range r.Warnings {
			b.WriteString(Warn(w) + "\n")
		}
	}
	return b.String()
}

// Markdown renders r as a markdown document with go-pretty tables. Styling
// in cells is stripped.
func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	for _, l := range r.Summary {
		fmt.Fprintf(&b, "- %s\n", StripANSI(l))
	}

	for _, s := range r.Sections {
		b.WriteString("\n")
		if s.Heading != "" {
			fmt.Fprintf(&b, "## %s\n\n", StripANSI(s.Heading))
		}
		for _, l := range s.Lines {
			fmt.Fprintf(&b, "%s\n", StripANSI(strings.TrimSpace(l)))
		}
		if len(s.Lines) > 0 {
			b.WriteString("\n")
		}
		switch {
		case len(s.Headers) > 0 && len(s.Rows) > 0:
			b.WriteString(MarkdownTable(s.Headers, s.Rows))
			b.WriteString("\n")
		case s.Empty != "":
			fmt.Fprintf(&b, "_%s_\n", s.Empty)
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

// MarkdownTable renders headers and rows as a markdown table.
func MarkdownTable(headers []string, rows [][]string) string {
	t := table.NewWriter()
	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = StripANSI(cell)
		}
		t.AppendRow(r)
	}
	return t.RenderMarkdown()
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes terminal styling escapes.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
