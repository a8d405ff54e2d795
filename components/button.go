package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ButtonProps configures the primary purple Button.
type ButtonProps struct {
	Label    string
	OnClick  func()
	Disabled bool
	// Class adds classes after the design classes.
	Class string
}

// Button renders the primary purple button: fill #38539a, padding 9/16,
// corner radius 32.
func Button(props ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		aw := &attrWriter{w: w}
		aw.open("button", attrs(
			[]attr{
				{name: "type", value: "button"},
				{name: "class", value: buttonClasses(props)},
				{name: "data-component", value: "button"},
			},
			when(props.Disabled, attr{name: "disabled", boolean: true}),
			when(props.Disabled, attr{name: "aria-disabled", value: "true"}),
		)...)
		aw.text(props.Label)
		aw.close("button")
		return aw.err
	})
}

func buttonClasses(props ButtonProps) string {
	return joinClasses(
		// Base classes
		`flex items-center justify-center gap-2
		h-9 w-[343px]
		py-[9px] px-4
		rounded-[32px]
		bg-[#38539a]
		text-[#ffffff]
		text-[14px] font-bold leading-[1.286]
		font-['GT_Walsheim_Pro',system-ui,sans-serif]
		transition-opacity
		disabled:opacity-50 disabled:cursor-not-allowed
		hover:opacity-90 active:opacity-95`,
		// Additional custom classes
		props.Class,
	)
}

// Click forwards a click to OnClick and reports whether it ran. A disabled
// button swallows the click.
func (p ButtonProps) Click() bool {
	if p.Disabled || p.OnClick == nil {
		return false
	}
	p.OnClick()
	return true
}
