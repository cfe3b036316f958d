// Package mapper converts slices between domain entities and DTOs.
package mapper

// MapSlice applies mapFunc to every item. A nil input yields an empty, non-nil
// slice so JSON lists never serialize as null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}
