package components_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/designkit/components"
)

var optionIDPattern = regexp.MustCompile(`data-option-id="([^"]*)"`)

func renderedOptionIDs(html string) []string {
	var ids []string
	for _, m := range optionIDPattern.FindAllStringSubmatch(html, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

func TestSurvey_DefaultOptions(t *testing.T) {
	options := components.DefaultSurveyOptions()

	require.Len(t, options, 4)
	assert.Equal(t, components.SurveyButtonVariantActive, options[0].Variant)
	assert.Equal(t, components.SurveyButtonVariantInactive, options[1].Variant)
	assert.Equal(t, components.SurveyButtonVariantCorrect, options[2].Variant)
	assert.Equal(t, components.SurveyButtonVariantIncorrect, options[3].Variant)

	for _, option := range options {
		assert.Equal(t, option.Variant == components.SurveyButtonVariantInactive, option.Disabled, option.ID)
	}

	html := render(t, components.Survey(components.SurveyProps{}))
	assert.Equal(t, []string{"ok-active", "ok-inactive", "correct", "incorrect"}, renderedOptionIDs(html))
	assert.Contains(t, html, `data-option-id="ok-inactive" data-variant="inactive" aria-pressed="false" disabled>`)
	assert.Contains(t, html, "That&#39;s Correct")
}

func TestSurvey_Container(t *testing.T) {
	html := render(t, components.Survey(components.SurveyProps{Class: "mx-auto"}))

	assert.Contains(t, html, `<div role="group" aria-label="Survey" tabindex="0"`)
	assert.Contains(t, html, "w-[383px] overflow-hidden rounded-[5px] border p-5 border-[#9747ff] bg-white flex flex-col gap-5")
	assert.Contains(t, html, "mx-auto\"")
	assert.Contains(t, html, `style="min-height: 324px"`)
}

func TestSurvey_RendersOptionsInOrder(t *testing.T) {
	options := []components.SurveyOption{
		{ID: "c", Label: "Third", Variant: components.SurveyButtonVariantIncorrect},
		{ID: "a", Label: "First", Variant: components.SurveyButtonVariantActive},
		{ID: "b", Label: "Second", Variant: components.SurveyButtonVariantCorrect},
	}

	html := render(t, components.Survey(components.SurveyProps{Options: options}))

	assert.Equal(t, []string{"c", "a", "b"}, renderedOptionIDs(html))
	assert.Contains(t, html, `data-option-count="3"`)
}

func TestSurvey_EmptyOptions(t *testing.T) {
	html := render(t, components.Survey(components.SurveyProps{Options: []components.SurveyOption{}}))

	assert.Empty(t, renderedOptionIDs(html))
	assert.Contains(t, html, `data-option-count="0"`)
}

func TestSurvey_Icons(t *testing.T) {
	tests := []struct {
		variant components.SurveyButtonVariant
		icons   []string
	}{
		{variant: components.SurveyButtonVariantActive, icons: []string{"radio-o"}},
		{variant: components.SurveyButtonVariantInactive, icons: []string{"radio-o"}},
		{variant: components.SurveyButtonVariantCorrect, icons: []string{"radio-o", "thumbs-up"}},
		{variant: components.SurveyButtonVariantIncorrect, icons: []string{"thumbs-down", "x"}},
	}

	iconPattern := regexp.MustCompile(`data-icon="([^"]*)"`)

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			html := render(t, components.SurveyIcon(tt.variant))

			var icons []string
			for _, m := range iconPattern.FindAllStringSubmatch(html, -1) {
				icons = append(icons, m[1])
			}
			assert.Equal(t, tt.icons, icons)
		})
	}

	assert.Nil(t, components.SurveyIcon("unknown"))
}

func TestSurvey_SelectedIDIsOnlyRead(t *testing.T) {
	props := components.SurveyProps{SelectedID: "correct"}

	html := render(t, components.Survey(props))
	assert.Contains(t, html, `data-option-id="correct" data-variant="correct" aria-pressed="true"`)
	assert.Contains(t, html, `data-option-id="ok-active" data-variant="active" aria-pressed="false"`)

	_, err := props.SelectOption("incorrect")
	require.NoError(t, err)
	assert.Equal(t, "correct", props.SelectedID)
}

type callRecorder struct {
	calls []string
}

func (r *callRecorder) props() components.SurveyProps {
	return components.SurveyProps{
		OnOptionSelect: func(optionID string, option components.SurveyOption) {
			r.calls = append(r.calls, "select:"+optionID+":"+option.Label)
		},
		OnOKClick:        func() { r.calls = append(r.calls, "ok") },
		OnCorrectClick:   func() { r.calls = append(r.calls, "correct") },
		OnIncorrectClick: func() { r.calls = append(r.calls, "incorrect") },
	}
}

func TestSurvey_SelectOption(t *testing.T) {
	tests := []struct {
		optionID     string
		wantAccepted bool
		wantCalls    []string
	}{
		{optionID: "ok-active", wantAccepted: true, wantCalls: []string{"select:ok-active:OK", "ok"}},
		{optionID: "correct", wantAccepted: true, wantCalls: []string{"select:correct:That's Correct", "correct"}},
		{optionID: "incorrect", wantAccepted: true, wantCalls: []string{"select:incorrect:That's Incorrect", "incorrect"}},
		{optionID: "ok-inactive", wantAccepted: false, wantCalls: nil},
	}

	for _, tt := range tests {
		t.Run(tt.optionID, func(t *testing.T) {
			rec := &callRecorder{}

			accepted, err := rec.props().SelectOption(tt.optionID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, accepted)
			assert.Equal(t, tt.wantCalls, rec.calls)
		})
	}
}

func TestSurvey_SelectOptionCustomID(t *testing.T) {
	rec := &callRecorder{}
	props := rec.props()
	props.Options = []components.SurveyOption{
		{ID: "maybe", Label: "Maybe", Variant: components.SurveyButtonVariantActive},
	}

	accepted, err := props.SelectOption("maybe")
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, []string{"select:maybe:Maybe"}, rec.calls)
}

func TestSurvey_SelectOptionDisabledCustom(t *testing.T) {
	rec := &callRecorder{}
	props := rec.props()
	props.Options = []components.SurveyOption{
		{ID: "ok-active", Label: "OK", Variant: components.SurveyButtonVariantActive, Disabled: true},
	}

	accepted, err := props.SelectOption("ok-active")
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Empty(t, rec.calls)
}

func TestSurvey_SelectOptionNotFound(t *testing.T) {
	rec := &callRecorder{}

	accepted, err := rec.props().SelectOption("nope")
	assert.ErrorIs(t, err, components.ErrOptionNotFound)
	assert.False(t, accepted)
	assert.Empty(t, rec.calls)
}

func TestSurvey_SelectOptionWithoutCallbacks(t *testing.T) {
	accepted, err := components.SurveyProps{}.SelectOption("ok-active")
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestSurvey_SelectOptionInvalidProps(t *testing.T) {
	t.Run("unknown variant", func(t *testing.T) {
		rec := &callRecorder{}
		props := rec.props()
		props.Options = []components.SurveyOption{
			{ID: components.SurveyOptionOKActive, Label: "OK", Variant: "bogus"},
		}

		accepted, err := props.SelectOption(components.SurveyOptionOKActive)
		assert.ErrorIs(t, err, components.ErrUnknownVariant)
		assert.False(t, accepted)
		assert.Empty(t, rec.calls)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		rec := &callRecorder{}
		props := rec.props()
		props.Options = []components.SurveyOption{
			{ID: "correct", Label: "A", Variant: components.SurveyButtonVariantCorrect},
			{ID: "correct", Label: "B", Variant: components.SurveyButtonVariantCorrect},
		}

		accepted, err := props.SelectOption("correct")
		assert.ErrorIs(t, err, components.ErrInvalidProps)
		assert.False(t, accepted)
		assert.Empty(t, rec.calls)
	})
}

func TestSurvey_ForwardsContainerEvents(t *testing.T) {
	var focus, blur []components.FocusEvent
	var enter, leave []components.MouseEvent

	props := components.SurveyProps{
		OnFocus:      func(e components.FocusEvent) { focus = append(focus, e) },
		OnBlur:       func(e components.FocusEvent) { blur = append(blur, e) },
		OnMouseEnter: func(e components.MouseEvent) { enter = append(enter, e) },
		OnMouseLeave: func(e components.MouseEvent) { leave = append(leave, e) },
	}

	focusEvent := components.FocusEvent{Target: "survey", RelatedTarget: "body"}
	mouseEvent := components.MouseEvent{Target: "survey", ClientX: 12.5, ClientY: 7}

	props.Focus(focusEvent)
	props.Blur(focusEvent)
	props.MouseEnter(mouseEvent)
	props.MouseLeave(mouseEvent)

	assert.Equal(t, []components.FocusEvent{focusEvent}, focus)
	assert.Equal(t, []components.FocusEvent{focusEvent}, blur)
	assert.Equal(t, []components.MouseEvent{mouseEvent}, enter)
	assert.Equal(t, []components.MouseEvent{mouseEvent}, leave)

	// Missing handlers are ignored
	assert.NotPanics(t, func() {
		empty := components.SurveyProps{}
		empty.Focus(focusEvent)
		empty.Blur(focusEvent)
		empty.MouseEnter(mouseEvent)
		empty.MouseLeave(mouseEvent)
	})
}

func TestSurvey_Validation(t *testing.T) {
	t.Run("unknown variant", func(t *testing.T) {
		props := components.SurveyProps{Options: []components.SurveyOption{
			{ID: "a", Label: "A", Variant: components.SurveyButtonVariantActive},
			{ID: "b", Label: "B", Variant: "maybe"},
		}}

		_, err := components.NewSurvey(props)
		require.ErrorIs(t, err, components.ErrUnknownVariant)

		var variantErr *components.VariantError
		require.ErrorAs(t, err, &variantErr)
		assert.Equal(t, "options[1].variant", variantErr.Field)
		assert.Equal(t, "maybe", variantErr.Variant)

		var buf bytes.Buffer
		err = components.Survey(props).Render(context.Background(), &buf)
		assert.ErrorIs(t, err, components.ErrUnknownVariant)
		assert.Empty(t, buf.String())
	})

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := components.NewSurvey(components.SurveyProps{Options: []components.SurveyOption{
			{ID: "a", Label: "A", Variant: components.SurveyButtonVariantActive},
			{ID: "a", Label: "B", Variant: components.SurveyButtonVariantCorrect},
		}})
		require.ErrorIs(t, err, components.ErrInvalidProps)

		var propsErr *components.PropsError
		require.ErrorAs(t, err, &propsErr)
		assert.Equal(t, "unique", propsErr.Tag)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := components.NewSurvey(components.SurveyProps{Options: []components.SurveyOption{
			{Label: "A", Variant: components.SurveyButtonVariantActive},
		}})
		require.ErrorIs(t, err, components.ErrInvalidProps)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		c, err := components.NewSurvey(components.SurveyProps{})
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestSurvey_CustomOptionButton(t *testing.T) {
	var received []components.SurveyButtonProps
	rec := &callRecorder{}
	props := rec.props()
	props.OptionButton = func(p components.SurveyButtonProps) templ.Component {
		received = append(received, p)
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, "[%s]", p.OptionID)
			return err
		})
	}

	html := render(t, components.Survey(props))

	assert.Contains(t, html, "[ok-active][ok-inactive][correct][incorrect]")
	require.Len(t, received, 4)
	for _, p := range received {
		assert.Equal(t, components.IconPositionLeft, p.IconPosition)
		assert.Equal(t, components.SurveyButtonStyleOutline, p.ButtonStyle)
		assert.NotNil(t, p.Icon)
	}
	assert.True(t, received[1].Disabled)
	assert.Equal(t, "That's Incorrect", received[3].Label)

	// A replacement button selects through the handler it was given
	require.NotNil(t, received[0].OnClick)
	received[0].OnClick()
	assert.Equal(t, []string{"select:ok-active:OK", "ok"}, rec.calls)

	received[1].OnClick()
	assert.Equal(t, []string{"select:ok-active:OK", "ok"}, rec.calls, "disabled option must not fire callbacks")

	received[3].OnClick()
	assert.Equal(t, []string{"select:ok-active:OK", "ok", "select:incorrect:That's Incorrect", "incorrect"}, rec.calls)
}

func TestSurveyButton_IconPosition(t *testing.T) {
	props := components.SurveyButtonProps{
		OptionID:     "x",
		Variant:      components.SurveyButtonVariantActive,
		Icon:         components.RadioOIcon(),
		IconPosition: components.IconPositionRight,
		Label:        "Label",
	}

	html := render(t, components.SurveyButton(props))

	labelAt := bytes.Index([]byte(html), []byte("Label"))
	iconAt := bytes.Index([]byte(html), []byte(`data-icon="radio-o"`))
	require.NotEqual(t, -1, labelAt)
	require.NotEqual(t, -1, iconAt)
	assert.Less(t, labelAt, iconAt)
}

func TestSurvey_Idempotent(t *testing.T) {
	props := components.SurveyProps{SelectedID: "ok-active", Class: "shadow"}

	assert.Equal(t, render(t, components.Survey(props)), render(t, components.Survey(props)))
}
