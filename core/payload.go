// SPDX-License-Identifier: MIT
//
// File: payload.go
// Role: Payload, a present/absent value used for node data.

package core

import "fmt"

// Payload holds either a value (present) or nothing (absent).
// The zero Payload is absent.
type Payload[T any] struct {
	value   T
	present bool
}

// Some returns a present Payload wrapping v.
func Some[T any](v T) Payload[T] {
	return Payload[T]{value: v, present: true}
}

// None returns an absent Payload.
func None[T any]() Payload[T] {
	return Payload[T]{}
}

// Get returns the wrapped value and true, or the zero T and false when absent.
func (p Payload[T]) Get() (T, bool) {
	return p.value, p.present
}

// Present reports whether p holds a value.
func (p Payload[T]) Present() bool { return p.present }

// ValueOr returns the wrapped value, or def when absent.
func (p Payload[T]) ValueOr(def T) T {
	if !p.present {
		return def
	}

	return p.value
}

// String renders "None" or "Some(<value>)".
func (p Payload[T]) String() string {
	if !p.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", p.value)
}
