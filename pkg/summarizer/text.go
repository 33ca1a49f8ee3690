package summarizer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// TextFormatter formats a Summary as plain text.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format converts the summary to a plain text report.
func (f *TextFormatter) Format(summary *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fixture run %s\n", summary.RunID)
	fmt.Fprintf(&b, "Generated at: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	if summary.OutputDir != "" {
		fmt.Fprintf(&b, "Output directory: %s\n", summary.OutputDir)
	}
	b.WriteString("\n")

	for _, file := range summary.Files {
		fmt.Fprintf(&b, "%s: %d bytes (%s), %d lines\n",
			file.Name, file.Bytes, humanize.Bytes(uint64(file.Bytes)), file.Lines)
	}

	fmt.Fprintf(&b, "\nTotal: %d files, %s\n",
		len(summary.Files), humanize.Bytes(uint64(summary.TotalBytes())))

	return b.String()
}

// Ensure TextFormatter implements Formatter
var _ Formatter = (*TextFormatter)(nil)
