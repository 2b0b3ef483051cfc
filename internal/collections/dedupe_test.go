package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/utilkit/internal/collections"
)

func TestDeduplicateIntegers(testInstance *testing.T) {
	deduplicated := collections.Deduplicate([]int{1, 2, 2, 3, 3, 3})
	require.Len(testInstance, deduplicated, 3)
	require.ElementsMatch(testInstance, []int{1, 2, 3}, deduplicated)
}

func TestDeduplicateStrings(testInstance *testing.T) {
	deduplicated := collections.Deduplicate([]string{"alpha", "beta", "alpha"})
	require.ElementsMatch(testInstance, []string{"alpha", "beta"}, deduplicated)
}

func TestDeduplicateEmptySequence(testInstance *testing.T) {
	require.Empty(testInstance, collections.Deduplicate([]int{}))
}
