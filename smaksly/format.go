package smaksly

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const wordsPerMinute = 200

// FormatBlogDate renders a long-form display date, e.g. "June 1, 2024".
func FormatBlogDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// EstimateReadTime strips HTML tags from the content, counts
// whitespace-delimited words and estimates reading time at 200 words per
// minute, rounded up and never below one minute.
func EstimateReadTime(content string) string {
	words := countWords(stripTags(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// stripTags walks the parsed document and keeps only text nodes.
func stripTags(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	return b.String()
}
