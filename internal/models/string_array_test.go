package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayRoundTrip(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"Go"},
		{"Go", "TypeScript", "Postgres"},
		{"with \"quotes\"", "with,comma"},
	}

	for _, in := range cases {
		val, err := StringArray(in).Value()
		require.NoError(t, err)

		var out StringArray
		require.NoError(t, out.Scan(val))
		assert.Equal(t, len(in), len(out))
		for i := range in {
			assert.Equal(t, in[i], out[i])
		}
	}
}

func TestStringArrayScanLegacyValues(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want StringArray
	}{
		{"nil", nil, StringArray{}},
		{"empty string", "", StringArray{}},
		{"json null", "null", StringArray{}},
		{"quoted single value", `"React"`, StringArray{"React"}},
		{"bare legacy value", "React", StringArray{"React"}},
		{"bytes", []byte(`["a","b"]`), StringArray{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out StringArray
			require.NoError(t, out.Scan(tt.raw))
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestStringArrayScanRejectsUnsupportedType(t *testing.T) {
	var out StringArray
	assert.Error(t, out.Scan(42))
}
