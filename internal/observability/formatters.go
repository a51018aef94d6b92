// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/email-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of candidates to display
	maxItemsToShow = 10
)

// Printer handles formatted output for the lookup command
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
		// Truncate long lines by rune so multi-byte names stay valid UTF-8
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLookupRequest outputs the name and company being searched.
func (p *Printer) PrintLookupRequest(req *types.LookupRequest) {
	if req == nil {
		return
	}
	content := fmt.Sprintf("Name:     %s\nCompany:  %s", req.FullName, req.CompanyURL)
	p.printBox("EMAIL LOOKUP", content)
}

// PrintCandidates outputs the candidates in the order the upstream returned them.
func (p *Printer) PrintCandidates(resp *types.LookupResponse) {
	if resp == nil {
		return
	}

	if len(resp.ValidEmails) == 0 {
		p.printBox("CANDIDATES", "No valid emails found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d candidates:\n\n", len(resp.ValidEmails)))

	count := min(len(resp.ValidEmails), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := resp.ValidEmails[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Email))
		if c.FullName != "" {
			sb.WriteString(fmt.Sprintf("    Name: %s\n", c.FullName))
		}
		sb.WriteString(fmt.Sprintf("    Score: %g%%  Deliverable: %s\n", c.Score, c.DeliverableLabel()))
		if c.SMTPProvider != "" {
			sb.WriteString(fmt.Sprintf("    Provider: %s\n", c.SMTPProvider))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(resp.ValidEmails) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(resp.ValidEmails)-maxItemsToShow))
	}

	p.printBox("CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintError outputs a failed lookup.
func (p *Printer) PrintError(message string) {
	p.printBox("LOOKUP FAILED", message)
}
