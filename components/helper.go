package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

// joinClasses joins class fragments and collapses all whitespace, so the
// rendered class attribute does not depend on how fragments are formatted.
func joinClasses(fragments ...string) string {
	fields := lo.FlatMap(fragments, func(fragment string, _ int) []string {
		return strings.Fields(fragment)
	})
	return strings.Join(fields, " ")
}

// attr is a single HTML attribute. An empty value with boolean set renders a
// bare attribute like "disabled".
type attr struct {
	name    string
	value   string
	boolean bool
}

// attrWriter writes HTML and remembers the first error, so rendering code can
// stay linear.
type attrWriter struct {
	w   io.Writer
	err error
}

func (aw *attrWriter) raw(s string) {
	if aw.err != nil {
		return
	}
	_, aw.err = io.WriteString(aw.w, s)
}

func (aw *attrWriter) text(s string) {
	aw.raw(templ.EscapeString(s))
}

func (aw *attrWriter) open(tag string, attrs ...attr) {
	aw.raw("<" + tag)
	for _, a := range attrs {
		if a.boolean {
			aw.raw(" " + a.name)
			continue
		}
		aw.raw(" " + a.name + "=\"" + templ.EscapeString(a.value) + "\"")
	}
	aw.raw(">")
}

func (aw *attrWriter) component(ctx context.Context, c templ.Component) {
	if aw.err != nil || c == nil {
		return
	}
	aw.err = c.Render(ctx, aw.w)
}

func (aw *attrWriter) close(tag string) {
	aw.raw("</" + tag + ">")
}

// when returns the attribute only if cond holds.
func when(cond bool, a attr) []attr {
	if !cond {
		return nil
	}
	return []attr{a}
}

func attrs(groups ...[]attr) []attr {
	return lo.Flatten(groups)
}
