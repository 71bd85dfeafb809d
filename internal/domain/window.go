package domain

// WindowObservation is the focused window at sample time. It is replaced
// wholesale on each successful sample and never merged with prior values.
type WindowObservation struct {
	Title   string `json:"title"`
	Process string `json:"process"`
}

// IsZero reports whether nothing was observed.
func (w WindowObservation) IsZero() bool {
	return w.Title == "" && w.Process == ""
}

// WindowSnapshot is the ordered set of currently visible windows, in the
// order the inspector reported them. Order is not guaranteed stable.
type WindowSnapshot []WindowObservation
