// Package mapper holds small generic helpers for converting between
// entities, persistence models and DTOs.
package mapper

import "fmt"

// MapSlice converts every element with mapFunc. A nil input yields an
// empty, non-nil slice so JSON lists render as [].
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithID converts every element and stops at the first failure,
// naming the ID of the element that could not be mapped.
func MapSliceWithID[T any, R any, ID any](
	items []T,
	mapFunc func(T) (R, error),
	getID func(T) ID,
) ([]R, error) {
	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
