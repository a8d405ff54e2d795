package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// markupHighlighter highlights rendered component markup for the source view.
var markupHighlighter = newHighlighter("html", "monokai")

// sourceView renders the markup of a component with syntax highlighting.
func sourceView(name string, c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var markup bytes.Buffer
		if err := c.Render(ctx, &markup); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s source</title>`, templ.EscapeString(name))
		if err := markupHighlighter.stylesheet().Render(ctx, w); err != nil {
			return err
		}
		_, _ = io.WriteString(w, `</head><body>`)
		if err := markupHighlighter.highlight(prettyMarkup(markup.String())).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// prettyMarkup puts every tag of single-line markup on its own line.
func prettyMarkup(markup string) string {
	return strings.TrimSpace(strings.ReplaceAll(markup, "><", ">\n<"))
}

// highlighter bundles what chroma needs to turn one language into classed
// HTML. The stylesheet and the highlighted code must come from the same
// highlighter so the classes match.
type highlighter struct {
	lexer     chroma.Lexer
	formatter *html.Formatter
	style     *chroma.Style
}

func newHighlighter(language, styleName string) *highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	return &highlighter{
		lexer: chroma.Coalesce(lexer),
		formatter: html.New(
			html.WithClasses(true),
			html.TabWidth(2),
			html.WithLineNumbers(true),
		),
		style: style,
	}
}

func (h *highlighter) highlight(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		iterator, err := h.lexer.Tokenise(nil, source)
		if err != nil {
			return err
		}
		return h.formatter.Format(w, h.style, iterator)
	})
}

func (h *highlighter) stylesheet() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<style>")
		if err := h.formatter.WriteCSS(w, h.style); err != nil {
			return err
		}
		_, err := io.WriteString(w, ".chroma { white-space: pre-wrap; }\n</style>")
		return err
	})
}
