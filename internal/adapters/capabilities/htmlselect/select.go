// Package htmlselect implements ports.HTMLSelector with goquery.
package htmlselect

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/jsamuelsen11/dataworks/internal/ports"
)

var _ ports.HTMLSelector = Selector{}

// Selector parses HTML documents and renders CSS selections.
type Selector struct{}

// New returns a Selector.
func New() Selector {
	return Selector{}
}

// Select parses doc and returns its serialized form. With a selector, the
// result is the outer HTML of each match joined as "[m1, m2]"; no match
// yields "[]". An invalid selector is an error.
func (Selector) Select(doc io.Reader, selector string) (string, error) {
	d, err := goquery.NewDocumentFromReader(doc)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	if selector == "" {
		html, err := d.Html()
		if err != nil {
			return "", fmt.Errorf("rendering document: %w", err)
		}
		return html, nil
	}

	// goquery treats an unparsable selector as matching nothing.
	if _, err := cascadia.Compile(selector); err != nil {
		return "", fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	var (
		parts  []string
		outErr error
	)
	d.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		html, err := goquery.OuterHtml(s)
		if err != nil {
			outErr = fmt.Errorf("rendering match: %w", err)
			return false
		}
		parts = append(parts, html)
		return true
	})
	if outErr != nil {
		return "", outErr
	}

	return "[" + strings.Join(parts, ", ") + "]", nil
}
