package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/email-finder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintLookupRequest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLookupRequest(&types.LookupRequest{FullName: "Jane Roe", CompanyURL: "acme.io"})
	output := buf.String()

	assert.Contains(t, output, "EMAIL LOOKUP")
	assert.Contains(t, output, "Jane Roe")
	assert.Contains(t, output, "acme.io")
}

func TestPrintLookupRequest_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLookupRequest(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &types.LookupResponse{ValidEmails: []types.EmailCandidate{
		{Email: "jane@acme.io", FullName: "Jane Roe", Score: 95, Deliverable: true, SMTPProvider: "Google"},
		{Email: "jroe@acme.io", Score: 40},
	}}

	p.PrintCandidates(resp)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATES")
	assert.Contains(t, output, "Found 2 candidates")
	assert.Contains(t, output, "#1  jane@acme.io")
	assert.Contains(t, output, "#2  jroe@acme.io")
	assert.Contains(t, output, "Score: 95%  Deliverable: Yes")
	assert.Contains(t, output, "Score: 40%  Deliverable: No")
	assert.Contains(t, output, "Provider: Google")
	assert.Less(t, strings.Index(output, "jane@acme.io"), strings.Index(output, "jroe@acme.io"))
}

func TestPrintCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCandidates(&types.LookupResponse{})
	assert.Contains(t, buf.String(), "No valid emails found.")
}

func TestPrintCandidates_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCandidates(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCandidates_Truncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resp := &types.LookupResponse{}
	for i := 0; i < maxItemsToShow+3; i++ {
		resp.ValidEmails = append(resp.ValidEmails, types.EmailCandidate{Email: fmt.Sprintf("user%d@acme.io", i)})
	}

	p.PrintCandidates(resp)

	assert.Contains(t, buf.String(), "... and 3 more candidates")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 60))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintError("upstream responded with status 503")
	assert.Contains(t, buf.String(), "LOOKUP FAILED")
	assert.Contains(t, buf.String(), "503")
}

func TestPrintBox_TruncatesMultiByteNames(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	name := strings.Repeat("a", 42) + "éééééé"
	p.PrintLookupRequest(&types.LookupRequest{FullName: name, CompanyURL: "acme.io"})

	output := buf.String()
	assert.True(t, utf8.ValidString(output))
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, name)

	// every row of the box has the same visible width
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintBox_KeepsShortMultiByteLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLookupRequest(&types.LookupRequest{FullName: "Zoë Ñúñez", CompanyURL: "acme.io"})
	assert.Contains(t, buf.String(), "Zoë Ñúñez")
	assert.NotContains(t, buf.String(), "...")
}
