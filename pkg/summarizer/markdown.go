package summarizer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// MarkdownFormatter formats a Summary as a markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts the summary to markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var b strings.Builder

	b.WriteString("# Fixture Generation Summary\n\n")
	fmt.Fprintf(&b, "- Run ID: `%s`\n", summary.RunID)
	fmt.Fprintf(&b, "- Generated at: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	if summary.OutputDir != "" {
		fmt.Fprintf(&b, "- Output directory: `%s`\n", summary.OutputDir)
	}
	b.WriteString("\n## Files\n\n")

	b.WriteString("| File | Size | Lines |\n")
	b.WriteString("|---|---|---|\n")
	for _, file := range summary.Files {
		fmt.Fprintf(&b, "| %s | %s (%d bytes) | %d |\n",
			file.Name, humanize.Bytes(uint64(file.Bytes)), file.Bytes, file.Lines)
	}

	fmt.Fprintf(&b, "\n**Total**: %d files, %s\n",
		len(summary.Files), humanize.Bytes(uint64(summary.TotalBytes())))

	return b.String()
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
