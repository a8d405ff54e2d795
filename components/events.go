package components

// FocusEvent is forwarded to focus and blur handlers.
type FocusEvent struct {
	// Target identifies the element that received or lost focus.
	Target string
	// RelatedTarget identifies the element focus moved from or to, if known.
	RelatedTarget string
}

// MouseEvent is forwarded to pointer enter and leave handlers.
type MouseEvent struct {
	Target  string
	ClientX float64
	ClientY float64
}
