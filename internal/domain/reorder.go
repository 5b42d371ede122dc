package domain

import (
	"fmt"
	"slices"
)

// Reorder moves the element at from to index to and returns the new order.
// The input slice is left untouched.
func Reorder[T any](list []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(list) {
		return nil, NewValidationError("from", fmt.Sprintf("index %d out of range", from))
	}
	if to < 0 || to >= len(list) {
		return nil, NewValidationError("to", fmt.Sprintf("index %d out of range", to))
	}

	out := make([]T, 0, len(list))
	moved := list[from]
	for i, v := range list {
		if i == from {
			continue
		}
		out = append(out, v)
	}
	return slices.Insert(out, to, moved), nil
}
