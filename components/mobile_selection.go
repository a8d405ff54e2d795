package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

type MobileSelectionVariant string

const (
	MobileSelectionVariantPurple MobileSelectionVariant = "purple"
	MobileSelectionVariantBlue   MobileSelectionVariant = "blue"
)

// MobileSelectionStyle is the colour bundle of a MobileSelection variant.
// Values are CSS hex colours.
type MobileSelectionStyle struct {
	Background string
	Border     string
	Text       string
}

func (s MobileSelectionStyle) classes() string {
	return joinClasses("bg-["+s.Background+"]", "border-["+s.Border+"]", "text-["+s.Text+"]")
}

var mobileSelectionStyles = map[MobileSelectionVariant]MobileSelectionStyle{
	MobileSelectionVariantPurple: {Background: "#f1f2ff", Border: "#38539a", Text: "#38539a"},
	MobileSelectionVariantBlue:   {Background: "#e5fdff", Border: "#00857f", Text: "#2c2c2c"},
}

// MobileSelectionVariants returns all valid variants in declaration order.
func MobileSelectionVariants() []MobileSelectionVariant {
	return []MobileSelectionVariant{MobileSelectionVariantPurple, MobileSelectionVariantBlue}
}

// MobileSelectionStyleFor returns the style bundle of a variant. The empty
// variant resolves to purple.
func MobileSelectionStyleFor(variant MobileSelectionVariant) (MobileSelectionStyle, error) {
	if variant == "" {
		variant = MobileSelectionVariantPurple
	}
	style, ok := mobileSelectionStyles[variant]
	if !ok {
		return MobileSelectionStyle{}, &VariantError{
			Component: "mobile-selection",
			Field:     "variant",
			Variant:   string(variant),
			Allowed:   lo.Map(MobileSelectionVariants(), func(v MobileSelectionVariant, _ int) string { return string(v) }),
		}
	}
	return style, nil
}

type MobileSelectionProps struct {
	// Label is the main text, truncated to the available width.
	Label string
	// Variant defaults to purple.
	Variant MobileSelectionVariant `validate:"omitempty,oneof=purple blue"`
	OnClick func()
	Class   string
}

// Validate rejects unknown variants.
func (p MobileSelectionProps) Validate() error {
	return validateProps("mobile-selection", p)
}

// NewMobileSelection validates props and returns the component.
func NewMobileSelection(props MobileSelectionProps) (templ.Component, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return MobileSelection(props), nil
}

// MobileSelection renders the mobile selection frame: 2px border, padding
// 12/16, corner radius 12 and a trailing chevron. Rendering fails with a
// *VariantError for an unknown variant.
func MobileSelection(props MobileSelectionProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		style, err := MobileSelectionStyleFor(props.Variant)
		if err != nil {
			return err
		}

		variant := props.Variant
		if variant == "" {
			variant = MobileSelectionVariantPurple
		}

		aw := &attrWriter{w: w}
		aw.open("button",
			attr{name: "type", value: "button"},
			attr{name: "class", value: mobileSelectionClasses(style, props.Class)},
			attr{name: "data-component", value: "mobile-selection"},
			attr{name: "data-variant", value: string(variant)},
		)
		aw.open("span", attr{name: "class", value: "flex-1 min-w-0 h-5 leading-5 truncate"})
		aw.text(props.Label)
		aw.close("span")
		aw.open("span",
			attr{name: "class", value: "flex shrink-0 items-center justify-center"},
			attr{name: "aria-hidden", value: "true"},
		)
		aw.component(ctx, ChevronRightIcon())
		aw.close("span")
		aw.close("button")
		return aw.err
	})
}

func mobileSelectionClasses(style MobileSelectionStyle, class string) string {
	return joinClasses(
		// Base classes
		`flex flex-row items-center gap-3
		w-full max-w-[343px] min-w-[343px]
		py-3 px-4
		rounded-[12px]
		border-2 text-left`,
		// Variant classes
		style.classes(),
		`text-[14px] font-medium leading-[1.286]
		font-['GT_Walsheim_Pro',system-ui,sans-serif]
		transition-colors
		hover:opacity-90 active:opacity-95`,
		// Additional custom classes
		class,
	)
}

// Click forwards a click to OnClick and reports whether it ran. Props with an
// unknown variant return the *VariantError and call nothing.
func (p MobileSelectionProps) Click() (bool, error) {
	if _, err := MobileSelectionStyleFor(p.Variant); err != nil {
		return false, err
	}
	if p.OnClick == nil {
		return false, nil
	}
	p.OnClick()
	return true, nil
}
