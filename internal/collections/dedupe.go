package collections

// Deduplicate returns the unique elements of the sequence with set
// semantics. The order of the result is unspecified; callers must not rely
// on it.
func Deduplicate[T comparable](sequence []T) []T {
	uniqueElements := make(map[T]struct{}, len(sequence))
	for _, element := range sequence {
		uniqueElements[element] = struct{}{}
	}

	deduplicated := make([]T, 0, len(uniqueElements))
	for element := range uniqueElements {
		deduplicated = append(deduplicated, element)
	}
	return deduplicated
}
