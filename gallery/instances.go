package gallery

import (
	"context"
	"errors"
	"strconv"

	"github.com/a-h/templ"

	"github.com/networkteam/designkit/components"
	"github.com/networkteam/designkit/interaction"
)

// Instance names shown in the gallery.
const (
	InstanceButton                = "button"
	InstanceButtonDisabled        = "button-disabled"
	InstanceMobileSelectionPurple = "mobile-selection-purple"
	InstanceMobileSelectionBlue   = "mobile-selection-blue"
	InstanceSurvey                = "survey"
)

// Instances lists all instance names in page order.
func Instances() []string {
	return []string{
		InstanceButton,
		InstanceButtonDisabled,
		InstanceMobileSelectionPurple,
		InstanceMobileSelectionBlue,
		InstanceSurvey,
	}
}

// Browser events forwarded to instances.
const (
	EventClick      = "click"
	EventFocus      = "focus"
	EventBlur       = "blur"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
)

var (
	errUnknownInstance  = errors.New("unknown component instance")
	errUnsupportedEvent = errors.New("event not supported by component")
)

// browserEvent is an event posted by the gallery page.
type browserEvent struct {
	Instance      string
	Event         string
	OptionID      string
	Target        string
	RelatedTarget string
	ClientX       float64
	ClientY       float64
}

func parseCoordinate(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// instance binds props of one gallery entry to the interaction log.
type instance struct {
	title       string
	description string
	// render returns the component for the current host state.
	render func() templ.Component
	// dispatch forwards a browser event to the props' callbacks.
	dispatch func(ctx context.Context, e browserEvent) error
}

// recorder returns a callback that records an interaction when invoked.
func (h *Handler) recorder(ctx context.Context, e browserEvent, callback string) func() {
	return func() {
		h.interactions.Record(ctx, interaction.New(e.Instance, e.Event, callback).WithOption(e.OptionID))
	}
}

func (h *Handler) instances() map[string]instance {
	return map[string]instance{
		InstanceButton: {
			title:       "Button",
			description: "Primary purple button",
			render: func() templ.Component {
				return components.Button(h.buttonProps(context.Background(), browserEvent{}, false))
			},
			dispatch: func(ctx context.Context, e browserEvent) error {
				return dispatchClick(e, infallible(h.buttonProps(ctx, e, false).Click))
			},
		},
		InstanceButtonDisabled: {
			title:       "Button (disabled)",
			description: "Clicks are swallowed",
			render: func() templ.Component {
				return components.Button(h.buttonProps(context.Background(), browserEvent{}, true))
			},
			dispatch: func(ctx context.Context, e browserEvent) error {
				return dispatchClick(e, infallible(h.buttonProps(ctx, e, true).Click))
			},
		},
		InstanceMobileSelectionPurple: h.mobileSelectionInstance(components.MobileSelectionVariantPurple),
		InstanceMobileSelectionBlue:   h.mobileSelectionInstance(components.MobileSelectionVariantBlue),
		InstanceSurvey: {
			title:       "Survey",
			description: "Controlled survey, the gallery keeps the selected option",
			render: func() templ.Component {
				return components.Survey(h.surveyProps(context.Background(), browserEvent{}))
			},
			dispatch: h.dispatchSurvey,
		},
	}
}

func (h *Handler) buttonProps(ctx context.Context, e browserEvent, disabled bool) components.ButtonProps {
	return components.ButtonProps{
		Label:    "Primary Button",
		Disabled: disabled,
		OnClick:  h.recorder(ctx, e, "OnClick"),
	}
}

func (h *Handler) mobileSelectionInstance(variant components.MobileSelectionVariant) instance {
	props := func(ctx context.Context, e browserEvent) components.MobileSelectionProps {
		return components.MobileSelectionProps{
			Label:   "Your selection text here",
			Variant: variant,
			OnClick: h.recorder(ctx, e, "OnClick"),
		}
	}
	return instance{
		title:       "Mobile selection (" + string(variant) + ")",
		description: "Selection row with trailing chevron",
		render: func() templ.Component {
			return components.MobileSelection(props(context.Background(), browserEvent{}))
		},
		dispatch: func(ctx context.Context, e browserEvent) error {
			return dispatchClick(e, props(ctx, e).Click)
		},
	}
}

func dispatchClick(e browserEvent, click func() (bool, error)) error {
	if e.Event != EventClick {
		return errUnsupportedEvent
	}
	_, err := click()
	return err
}

func infallible(click func() bool) func() (bool, error) {
	return func() (bool, error) {
		return click(), nil
	}
}

func (h *Handler) surveyProps(ctx context.Context, e browserEvent) components.SurveyProps {
	return components.SurveyProps{
		SelectedID: h.selectedOption(),
		OnOptionSelect: func(optionID string, _ components.SurveyOption) {
			h.setSelectedOption(optionID)
			h.recorder(ctx, e, "OnOptionSelect")()
		},
		OnOKClick:        h.recorder(ctx, e, "OnOKClick"),
		OnCorrectClick:   h.recorder(ctx, e, "OnCorrectClick"),
		OnIncorrectClick: h.recorder(ctx, e, "OnIncorrectClick"),
		OnFocus:          func(components.FocusEvent) { h.recorder(ctx, e, "OnFocus")() },
		OnBlur:           func(components.FocusEvent) { h.recorder(ctx, e, "OnBlur")() },
		OnMouseEnter:     func(components.MouseEvent) { h.recorder(ctx, e, "OnMouseEnter")() },
		OnMouseLeave:     func(components.MouseEvent) { h.recorder(ctx, e, "OnMouseLeave")() },
	}
}

func (h *Handler) dispatchSurvey(ctx context.Context, e browserEvent) error {
	props := h.surveyProps(ctx, e)

	focusEvent := components.FocusEvent{Target: e.Target, RelatedTarget: e.RelatedTarget}
	mouseEvent := components.MouseEvent{Target: e.Target, ClientX: e.ClientX, ClientY: e.ClientY}

	switch e.Event {
	case EventClick:
		_, err := props.SelectOption(e.OptionID)
		return err
	case EventFocus:
		props.Focus(focusEvent)
	case EventBlur:
		props.Blur(focusEvent)
	case EventMouseEnter:
		props.MouseEnter(mouseEvent)
	case EventMouseLeave:
		props.MouseLeave(mouseEvent)
	default:
		return errUnsupportedEvent
	}
	return nil
}
