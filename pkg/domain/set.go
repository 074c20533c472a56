package domain

// Difference returns the elements of a that are not present in b,
// preserving a's order. Inputs are never mutated.
func Difference(a, b []Condition) []Condition {
	res := make([]Condition, 0, len(a))
	for _, c := range a {
		if !Contains(b, c) {
			res = append(res, c)
		}
	}
	return res
}

// Union returns all elements of a, followed by the elements of b not
// already present in the result, preserving first-occurrence order.
func Union(a, b []Condition) []Condition {
	res := make([]Condition, 0, len(a)+len(b))
	res = append(res, a...)
	for _, c := range b {
		if !Contains(res, c) {
			res = append(res, c)
		}
	}
	return res
}

// Contains reports whether x compares equal to some element of s.
func Contains(s []Condition, x Condition) bool {
	for _, c := range s {
		if c == x {
			return true
		}
	}
	return false
}
