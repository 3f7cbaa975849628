package params

import "strings"

// Optional is an argument that may be left out of the request. The zero value
// is "not provided", which is distinct from a provided zero, false or "".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a provided Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an Optional that is not provided.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value, or fallback when it was not provided.
func (o Optional[T]) Or(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

func (o Optional[T]) wireValue() (string, bool) {
	if !o.set {
		return "", false
	}
	return Format(o.value)
}

// JoinedList is a list argument sent as a single delimited string.
type JoinedList struct {
	Items []string
	Sep   string
}

// Joined declares that items are sent joined with sep. A nil slice is treated
// as not provided; an empty non-nil slice is sent as an empty string.
func Joined(items []string, sep string) JoinedList {
	return JoinedList{Items: items, Sep: sep}
}

func (l JoinedList) wireValue() (string, bool) {
	if l.Items == nil {
		return "", false
	}
	return strings.Join(l.Items, l.Sep), true
}
