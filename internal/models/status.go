package models

import "strings"

// Status is the order life cycle state. The vocabulary is fixed and ordered;
// the index of a status doubles as the progress position for display.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusCooking   Status = "Cooking"
	StatusReady     Status = "Ready"
	StatusServed    Status = "Served"
)

var statusSequence = []Status{
	StatusPending,
	StatusPreparing,
	StatusCooking,
	StatusReady,
	StatusServed,
}

// Statuses returns the life cycle vocabulary in progression order.
func Statuses() []Status {
	out := make([]Status, len(statusSequence))
	copy(out, statusSequence)
	return out
}

// ParseStatus resolves a raw string against the vocabulary, ignoring case
// and surrounding whitespace. The second return is false for unknown values.
func ParseStatus(raw string) (Status, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range statusSequence {
		if strings.EqualFold(trimmed, string(s)) {
			return s, true
		}
	}
	return "", false
}

func (s Status) Valid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in the progression, or -1 if unknown.
func (s Status) Index() int {
	for i, v := range statusSequence {
		if v == s {
			return i
		}
	}
	return -1
}

// Progress maps the status to a 0..1 fill fraction. Served is always 1.
func (s Status) Progress() float64 {
	i := s.Index()
	if i < 0 {
		return 0
	}
	return float64(i) / float64(len(statusSequence)-1)
}

// Terminal reports whether the order has left the active partition.
func (s Status) Terminal() bool {
	return s == StatusServed
}
