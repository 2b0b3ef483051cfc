package environment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/utilkit/internal/environment"
)

func TestLookupReturnsSetValue(testInstance *testing.T) {
	testInstance.Setenv("UTILKIT_TEST_VARIABLE", "configured")
	require.Equal(testInstance, "configured", environment.Lookup("UTILKIT_TEST_VARIABLE", "fallback"))
}

func TestLookupReturnsDefaultWhenUnset(testInstance *testing.T) {
	require.Equal(testInstance, "fallback", environment.Lookup("UTILKIT_UNSET_VARIABLE", "fallback"))
}

func TestLookupDistinguishesEmptyFromUnset(testInstance *testing.T) {
	testInstance.Setenv("UTILKIT_EMPTY_VARIABLE", "")
	require.Equal(testInstance, "", environment.Lookup("UTILKIT_EMPTY_VARIABLE", "fallback"))
}
