// Package webtext fetches web pages and reduces them to readable text.
package webtext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page is the readable content of an HTML document.
type Page struct {
	Title string
	Text  string
}

var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Svg:      true,
	atom.Iframe:   true,
}

var blocks = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
	atom.Ul: true, atom.Ol: true, atom.Table: true, atom.Blockquote: true, atom.Pre: true,
	atom.Dt: true, atom.Dd: true, atom.Hr: true,
}

// Extract walks an HTML document and returns its title and visible text with
// one block per line. Text beyond maxChars runes is dropped; maxChars <= 0
// means no limit.
func Extract(r io.Reader, maxChars int) (Page, error) {
	z := html.NewTokenizer(r)

	var (
		page     Page
		b        strings.Builder
		depth    int // nesting inside skipped elements
		inTitle  bool
		runes    int
		truncate bool
	)

	for !truncate {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				page.Text = tidy(b.String())
				return page, nil
			}
			return Page{}, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tt := z.Token()
			a := tt.DataAtom
			if a == atom.Title && tt.Type == html.StartTagToken {
				inTitle = true
				continue
			}
			if skipped[a] && tt.Type == html.StartTagToken {
				depth++
			}
			if blocks[a] {
				b.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Title {
				inTitle = false
				continue
			}
			if skipped[a] && depth > 0 {
				depth--
			}
			if blocks[a] {
				b.WriteByte('\n')
			}

		case html.TextToken:
			text := string(z.Text())
			if inTitle {
				page.Title = strings.TrimSpace(page.Title + " " + text)
				continue
			}
			if depth > 0 {
				continue
			}
			if maxChars > 0 {
				for _, r := range text {
					if runes >= maxChars {
						truncate = true
						break
					}
					b.WriteRune(r)
					runes++
				}
				continue
			}
			b.WriteString(text)
		}
	}

	page.Text = tidy(b.String())
	return page, nil
}

// tidy collapses whitespace inside lines and drops empty lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
