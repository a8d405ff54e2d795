package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type SurveyButtonVariant string

const (
	SurveyButtonVariantActive    SurveyButtonVariant = "active"
	SurveyButtonVariantInactive  SurveyButtonVariant = "inactive"
	SurveyButtonVariantCorrect   SurveyButtonVariant = "correct"
	SurveyButtonVariantIncorrect SurveyButtonVariant = "incorrect"
)

// SurveyButtonVariants returns all valid variants in declaration order.
func SurveyButtonVariants() []SurveyButtonVariant {
	return []SurveyButtonVariant{
		SurveyButtonVariantActive,
		SurveyButtonVariantInactive,
		SurveyButtonVariantCorrect,
		SurveyButtonVariantIncorrect,
	}
}

type IconPosition string

const (
	IconPositionLeft  IconPosition = "left"
	IconPositionRight IconPosition = "right"
)

type SurveyButtonStyle string

const (
	SurveyButtonStyleOutline SurveyButtonStyle = "outline"
	SurveyButtonStyleSolid   SurveyButtonStyle = "solid"
)

// SurveyButtonProps is the contract between Survey and the renderer of a
// single option.
type SurveyButtonProps struct {
	// OptionID is rendered as data-option-id so events can be routed back.
	OptionID     string
	Variant      SurveyButtonVariant
	Disabled     bool
	Selected     bool
	Icon         templ.Component
	IconPosition IconPosition
	ButtonStyle  SurveyButtonStyle
	Label        string
	// OnClick selects the option through the owning Survey. It is a no-op for
	// disabled options.
	OnClick func()
}

// SurveyButtonRenderer renders one survey option. Survey uses SurveyButton
// unless SurveyProps.OptionButton is set.
type SurveyButtonRenderer func(props SurveyButtonProps) templ.Component

// SurveyButton is the default option renderer.
func SurveyButton(props SurveyButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		aw := &attrWriter{w: w}
		aw.open("button", attrs(
			[]attr{
				{name: "type", value: "button"},
				{name: "class", value: surveyButtonClasses(props)},
				{name: "data-option-id", value: props.OptionID},
				{name: "data-variant", value: string(props.Variant)},
				{name: "aria-pressed", value: boolString(props.Selected)},
			},
			when(props.Disabled, attr{name: "disabled", boolean: true}),
		)...)
		if props.IconPosition != IconPositionRight {
			aw.component(ctx, props.Icon)
		}
		aw.open("span", attr{name: "class", value: "truncate"})
		aw.text(props.Label)
		aw.close("span")
		if props.IconPosition == IconPositionRight {
			aw.component(ctx, props.Icon)
		}
		aw.close("button")
		return aw.err
	})
}

func surveyButtonClasses(props SurveyButtonProps) string {
	var variant string
	switch props.Variant {
	case SurveyButtonVariantInactive:
		variant = "border-[#c4c4c4] text-[#9e9e9e]"
	case SurveyButtonVariantCorrect:
		variant = "border-[#00857f] text-[#00857f]"
	case SurveyButtonVariantIncorrect:
		variant = "border-[#d93025] text-[#d93025]"
	default: // active
		variant = "border-[#38539a] text-[#38539a]"
	}

	var style string
	switch props.ButtonStyle {
	case SurveyButtonStyleSolid:
		style = "border-transparent bg-[#38539a] text-[#ffffff]"
	default: // outline
		style = "border-2 bg-white"
	}

	return joinClasses(
		`flex items-center justify-center gap-2
		h-[51px] w-full
		py-3 px-4
		rounded-[32px]
		text-[14px] font-bold leading-[1.286]
		font-['GT_Walsheim_Pro',system-ui,sans-serif]
		transition-opacity
		disabled:opacity-50 disabled:cursor-not-allowed
		hover:opacity-90 active:opacity-95`,
		variant,
		style,
		selectedClasses(props.Selected),
	)
}

func selectedClasses(selected bool) string {
	if selected {
		return "ring-2 ring-[#9747ff]"
	}
	return ""
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
