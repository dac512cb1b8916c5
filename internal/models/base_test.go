package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Value(t *testing.T) {
	v, err := StringSlice{"Alice", "Amy"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Alice","Amy"]`, v)

	v, err = StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringSlice_Scan(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.Scan([]byte(`["Bob","Ben"]`)))
	assert.Equal(t, StringSlice{"Bob", "Ben"}, s)

	require.NoError(t, s.Scan(`["Bill"]`))
	assert.Equal(t, StringSlice{"Bill"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
}
