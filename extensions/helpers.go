package extensions

// FilterMultiple return all elements that satisfy the predicate
func FilterMultiple[T any](elements []T, predicate func(T) bool) (results []T) {
	for _, element := range elements {
		if predicate(element) {
			results = append(results, element)
		}
	}
	return
}

// Map applies the transform to every element and returns the results
func Map[T, U any](elements []T, transform func(T) U) []U {
	results := make([]U, len(elements))
	for i, element := range elements {
		results[i] = transform(element)
	}
	return results
}

// AreAllEqual checks if a slice is comprised of the same element by value
func AreAllEqual[T comparable](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[0] {
			return false
		}
	}
	return true
}

func Sum[T Number](inp []T) (res T) {
	for _, v := range inp {
		res += v
	}
	return
}
