package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/law-makers/appraiser/internal/text"
)

// Lines returns the visible lines of a selection. <br> and block-level
// elements end a line; empty lines are dropped. A nil selection has no lines.
func Lines(sel *goquery.Selection) []string {
	if sel == nil {
		return nil
	}
	var (
		lines []string
		cur   strings.Builder
	)
	flush := func() {
		if l := text.Clean(cur.String()); l != "" {
			lines = append(lines, l)
		}
		cur.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "br":
				flush()
				return
			case "script", "style":
				return
			}
		}
		block := n.Type == html.ElementNode && isBlock(n.Data)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
		flush()
	}
	return lines
}

func isBlock(tag string) bool {
	switch tag {
	case "div", "p", "li", "tr", "table", "tbody", "ul", "ol", "dd", "dt",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article":
		return true
	}
	return false
}
