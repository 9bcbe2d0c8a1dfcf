package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Renderer turns plan Markdown into HTML fragments.
type Renderer interface {
	Render(source string) (string, error)
}

// Options tunes the renderer.
type Options struct {
	// HideTitle drops level-1 headings. Day pages show their title elsewhere.
	HideTitle bool
}

type renderer struct {
	md goldmark.Markdown
}

// New creates a goldmark renderer with tables and autolinks. Raw HTML in the
// source is escaped.
func New(opt Options) Renderer {
	parserOpts := []parser.Option{parser.WithAutoHeadingID()}
	if opt.HideTitle {
		parserOpts = append(parserOpts, parser.WithASTTransformers(util.Prioritized(dropTitles{}, 100)))
	}

	return &renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Linkify,
			),
			goldmark.WithParserOptions(parserOpts...),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
			),
		),
	}
}

func (r *renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.String(), nil
}

// dropTitles removes every level-1 heading from the document.
type dropTitles struct{}

func (dropTitles) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	var titles []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			if h.Level == 1 {
				titles = append(titles, h)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	for _, n := range titles {
		n.Parent().RemoveChild(n.Parent(), n)
	}
}
