package interaction

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
)

// Interaction is a callback invocation forwarded by a component.
type Interaction struct {
	ID uuid.UUID

	// Component is the name of the component instance (e.g. "survey").
	Component string
	// Event is the browser event that was forwarded (e.g. "click").
	Event string
	// OptionID is set for events on a survey option.
	OptionID string
	// Callback is the props callback that ran (e.g. "OnOKClick").
	Callback string

	Time time.Time
}

// New creates an interaction with a fresh ID stamped with the current time.
func New(component, event, callback string) Interaction {
	return Interaction{
		ID:        uuid.Must(uuid.NewV7()),
		Component: component,
		Event:     event,
		Callback:  callback,
		Time:      time.Now(),
	}
}

// WithOption returns a copy of the interaction for the given survey option.
func (i Interaction) WithOption(optionID string) Interaction {
	i.OptionID = optionID
	return i
}

// Filter selects interactions for a subscription.
type Filter func(Interaction) bool

// ForComponents matches interactions of any of the given component instances.
// Without names it matches everything.
func ForComponents(names ...string) Filter {
	if len(names) == 0 {
		return nil
	}
	return func(i Interaction) bool {
		return lo.Contains(names, i.Component)
	}
}
