package util

// MapSlice applies converter to each element of items and returns a new slice.
func MapSlice[T any, R any](items []T, converter func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, converter(item))
	}
	return result
}
