// cmd/credlens/normalizer.go
package main

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

// Tags whose subtrees carry no article text.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"iframe": true, "svg": true, "nav": true, "footer": true,
}

// NormalizeHTML strips markup from a fetched page into plain text.
// Prefers the page's article/main region when one exists.
func NormalizeHTML(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		// goquery only fails on unreadable input; fall back to the
		// tolerant node walker.
		return flattenFragment(page)
	}

	doc.Find("script, style, noscript, iframe, nav, footer").Remove()

	for _, selector := range []string{"article", "main", "[role=main]", "body"} {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			if text := normalizeWhitespace(sel.First().Text()); text != "" {
				return text
			}
		}
	}

	return normalizeWhitespace(doc.Text())
}

// NormalizeContent prepares pasted or extracted text for scoring. Text
// that still carries markup is flattened first.
func NormalizeContent(content string) string {
	if looksLikeHTML(content) {
		return flattenFragment(content)
	}
	return normalizeWhitespace(content)
}

func looksLikeHTML(content string) bool {
	return strings.Contains(content, "</") ||
		strings.Contains(content, "<p>") ||
		strings.Contains(content, "<div")
}

// flattenFragment walks an HTML fragment with the tolerant x/net/html
// parser, which recovers broken markup the way a browser would.
func flattenFragment(fragment string) string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return normalizeWhitespace(fragment)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return normalizeWhitespace(sb.String())
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			clean = append(clean, line)
		}
	}
	return strings.TrimSpace(newlineRun.ReplaceAllString(strings.Join(clean, "\n"), "\n\n"))
}

// truncateText trims text to a character budget for remote adapters.
func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
