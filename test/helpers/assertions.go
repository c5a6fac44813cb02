package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func AssertJSONEquals(t *testing.T, actual, expected string) {
	t.Helper()

	require.JSONEq(t, expected, actual)
}
