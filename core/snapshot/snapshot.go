// Package snapshot converts a fetched tracking page into Markdown so a
// copy of what was scraped can be kept next to the parsed output. The
// upstream pages change without notice; the snapshot is what makes a
// surprising envelope auditable after the fact.
package snapshot

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown converts the raw page HTML into Markdown.
func ToMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
