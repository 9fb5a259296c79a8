// Package markdown implements ports.MarkdownRenderer with goldmark.
//
// Extensions are selected by name. Names may carry the "markdown.extensions."
// prefix used by other Markdown toolchains; it is stripped before lookup.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/jsamuelsen11/dataworks/internal/ports"
)

var _ ports.MarkdownRenderer = Renderer{}

// ErrUnknownExtension is returned for an extension name with no mapping.
var ErrUnknownExtension = errors.New("unknown markdown extension")

const extensionPrefix = "markdown.extensions."

// option contributes one named extension to a goldmark instance.
type option struct {
	extenders []goldmark.Extender
	parser    []parser.Option
	renderer  []html.Option
}

var options = map[string]option{
	"tables":        {extenders: []goldmark.Extender{extension.Table}},
	"fenced_code":   {}, // part of CommonMark
	"footnotes":     {extenders: []goldmark.Extender{extension.Footnote}},
	"strikethrough": {extenders: []goldmark.Extender{extension.Strikethrough}},
	"tasklist":      {extenders: []goldmark.Extender{extension.TaskList}},
	"linkify":       {extenders: []goldmark.Extender{extension.Linkify}},
	"typographer":   {extenders: []goldmark.Extender{extension.Typographer}},
	"def_list":      {extenders: []goldmark.Extender{extension.DefinitionList}},
	"toc":           {parser: []parser.Option{parser.WithAutoHeadingID()}},
	"attr_list":     {parser: []parser.Option{parser.WithAttribute()}},
	"nl2br":         {renderer: []html.Option{html.WithHardWraps()}},
	"extra": {
		extenders: []goldmark.Extender{extension.Table, extension.Footnote, extension.DefinitionList},
		parser:    []parser.Option{parser.WithAttribute()},
	},
	"gfm": {extenders: []goldmark.Extender{extension.GFM}},
}

// Names returns the supported extension names in sorted order.
func Names() []string {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Renderer converts Markdown to HTML fragments. Raw HTML in the source is
// passed through.
type Renderer struct{}

// New returns a Renderer.
func New() Renderer {
	return Renderer{}
}

// Render converts source using the named extensions.
func (Renderer) Render(source []byte, extensions []string) ([]byte, error) {
	md, err := build(extensions)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}

func build(extensions []string) (goldmark.Markdown, error) {
	var (
		extenders []goldmark.Extender
		parserOps []parser.Option
		htmlOps   = []html.Option{html.WithUnsafe()}
	)

	for _, raw := range extensions {
		name := strings.TrimPrefix(raw, extensionPrefix)
		opt, ok := options[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, raw)
		}
		for _, e := range opt.extenders {
			if !slices.Contains(extenders, e) {
				extenders = append(extenders, e)
			}
		}
		parserOps = append(parserOps, opt.parser...)
		htmlOps = append(htmlOps, opt.renderer...)
	}

	return goldmark.New(
		goldmark.WithExtensions(extenders...),
		goldmark.WithParserOptions(parserOps...),
		goldmark.WithRendererOptions(htmlOps...),
	), nil
}
