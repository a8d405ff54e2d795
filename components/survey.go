package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

// Option ids with a dedicated callback on SurveyProps.
const (
	SurveyOptionOKActive  = "ok-active"
	SurveyOptionCorrect   = "correct"
	SurveyOptionIncorrect = "incorrect"
)

type SurveyOption struct {
	ID       string              `validate:"required"`
	Label    string
	Variant  SurveyButtonVariant `validate:"oneof=active inactive correct incorrect"`
	Disabled bool
}

// DefaultSurveyOptions returns the four options of the survey design:
// OK (active), OK (inactive), That's Correct and That's Incorrect.
func DefaultSurveyOptions() []SurveyOption {
	return []SurveyOption{
		{ID: SurveyOptionOKActive, Label: "OK", Variant: SurveyButtonVariantActive},
		{ID: "ok-inactive", Label: "OK", Variant: SurveyButtonVariantInactive, Disabled: true},
		{ID: SurveyOptionCorrect, Label: "That's Correct", Variant: SurveyButtonVariantCorrect},
		{ID: SurveyOptionIncorrect, Label: "That's Incorrect", Variant: SurveyButtonVariantIncorrect},
	}
}

type SurveyProps struct {
	// Options defaults to DefaultSurveyOptions if nil. A non-nil empty slice
	// renders an empty survey.
	Options []SurveyOption `validate:"unique=ID,dive"`
	// SelectedID marks the highlighted option. Survey never changes it.
	SelectedID string

	// OnOptionSelect is called for every click on an enabled option.
	OnOptionSelect func(optionID string, option SurveyOption)
	// OnOKClick is called after OnOptionSelect for the "ok-active" option.
	OnOKClick func()
	// OnCorrectClick is called after OnOptionSelect for the "correct" option.
	OnCorrectClick func()
	// OnIncorrectClick is called after OnOptionSelect for the "incorrect" option.
	OnIncorrectClick func()

	OnFocus      func(FocusEvent)
	OnBlur       func(FocusEvent)
	OnMouseEnter func(MouseEvent)
	OnMouseLeave func(MouseEvent)

	// OptionButton renders a single option, SurveyButton if nil.
	OptionButton SurveyButtonRenderer
	Class        string
}

func (p SurveyProps) options() []SurveyOption {
	if p.Options == nil {
		return DefaultSurveyOptions()
	}
	return p.Options
}

func (p SurveyProps) withDefaults() SurveyProps {
	p.Options = p.options()
	return p
}

// Validate rejects unknown option variants, empty and duplicate option ids.
func (p SurveyProps) Validate() error {
	return validateProps("survey", p.withDefaults())
}

// NewSurvey validates props and returns the component.
func NewSurvey(props SurveyProps) (templ.Component, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return Survey(props), nil
}

// SurveyIcon returns the leading icon for an option variant, or nil for an
// unknown variant.
func SurveyIcon(variant SurveyButtonVariant) templ.Component {
	switch variant {
	case SurveyButtonVariantActive, SurveyButtonVariantInactive:
		return RadioOIcon()
	case SurveyButtonVariantCorrect:
		return iconGroup(RadioOIcon(), ThumbsUpIcon())
	case SurveyButtonVariantIncorrect:
		return iconGroup(ThumbsDownIcon(), XIcon())
	default:
		return nil
	}
}

// Survey renders the bordered survey container (383px wide, min-height 324px,
// border #9747ff) with one option button per option.
func Survey(props SurveyProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := props.Validate(); err != nil {
			return err
		}

		renderOption := props.OptionButton
		if renderOption == nil {
			renderOption = SurveyButton
		}

		options := props.options()

		aw := &attrWriter{w: w}
		aw.open("div",
			attr{name: "role", value: "group"},
			attr{name: "aria-label", value: "Survey"},
			attr{name: "tabindex", value: "0"},
			attr{name: "class", value: surveyClasses(props.Class)},
			attr{name: "style", value: "min-height: 324px"},
			attr{name: "data-component", value: "survey"},
			attr{name: "data-option-count", value: strconv.Itoa(len(options))},
		)
		for _, option := range options {
			optionID := option.ID
			onClick := func() {
				_, _ = props.SelectOption(optionID)
			}
			aw.component(ctx, renderOption(SurveyButtonProps{
				OptionID:     option.ID,
				Variant:      option.Variant,
				Disabled:     option.Disabled,
				Selected:     props.SelectedID != "" && option.ID == props.SelectedID,
				Icon:         SurveyIcon(option.Variant),
				IconPosition: IconPositionLeft,
				ButtonStyle:  SurveyButtonStyleOutline,
				Label:        option.Label,
				OnClick:      onClick,
			}))
		}
		aw.close("div")
		return aw.err
	})
}

func surveyClasses(class string) string {
	return joinClasses(
		`w-[383px] overflow-hidden rounded-[5px] border p-5
		border-[#9747ff] bg-white
		flex flex-col gap-5
		outline-none focus:ring-2 focus:ring-[#9747ff] focus:ring-offset-2`,
		class,
	)
}

// Option looks up a rendered option by id.
func (p SurveyProps) Option(optionID string) (SurveyOption, bool) {
	return lo.Find(p.options(), func(option SurveyOption) bool {
		return option.ID == optionID
	})
}

// SelectOption forwards a click on the option with the given id. It calls
// OnOptionSelect and then the callback reserved for the id, if any. A
// disabled option calls nothing, and neither do props that fail Validate. The
// returned bool reports whether the click was accepted.
func (p SurveyProps) SelectOption(optionID string) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	option, ok := p.Option(optionID)
	if !ok {
		return false, ErrOptionNotFound
	}
	if option.Disabled {
		return false, nil
	}

	if p.OnOptionSelect != nil {
		p.OnOptionSelect(option.ID, option)
	}

	var named func()
	switch option.ID {
	case SurveyOptionOKActive:
		named = p.OnOKClick
	case SurveyOptionCorrect:
		named = p.OnCorrectClick
	case SurveyOptionIncorrect:
		named = p.OnIncorrectClick
	}
	if named != nil {
		named()
	}
	return true, nil
}

// Focus forwards a focus event on the container.
func (p SurveyProps) Focus(e FocusEvent) {
	if p.OnFocus != nil {
		p.OnFocus(e)
	}
}

// Blur forwards a blur event on the container.
func (p SurveyProps) Blur(e FocusEvent) {
	if p.OnBlur != nil {
		p.OnBlur(e)
	}
}

// MouseEnter forwards a pointer enter event on the container.
func (p SurveyProps) MouseEnter(e MouseEvent) {
	if p.OnMouseEnter != nil {
		p.OnMouseEnter(e)
	}
}

// MouseLeave forwards a pointer leave event on the container.
func (p SurveyProps) MouseLeave(e MouseEvent) {
	if p.OnMouseLeave != nil {
		p.OnMouseLeave(e)
	}
}
