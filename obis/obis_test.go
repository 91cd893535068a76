package obis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeID(t *testing.T) {
	assert.Equal(t, ID{1, 0, 1, 7, 0, Unused}, MakeID(1, 0, 1, 7, 0))
	assert.Equal(t, ID{0, 0, 96, 50, 68, Unused}, MakeID(0, 0, 96, 50, 68))
	assert.Equal(t, ID{1, 0, 1, 8, 1, 2}, MakeID(1, 0, 1, 8, 1, 2))
	assert.Equal(t, ID{Unused, Unused, Unused, Unused, Unused, Unused}, MakeID())
}

func TestParseID(t *testing.T) {
	tt := []struct {
		desc         string
		value        string
		expected     ID
		expectedRest string
		invalid      bool
	}{
		{
			desc:         "power delivered",
			value:        "1-0:1.7.0(00.317*kW)",
			expected:     MakeID(1, 0, 1, 7, 0),
			expectedRest: "(00.317*kW)",
		},
		{
			desc:         "gas delivered with two value groups",
			value:        "0-1:24.2.1(150117180000W)(00473.789*m3)",
			expected:     MakeID(0, 1, 24, 2, 1),
			expectedRest: "(150117180000W)(00473.789*m3)",
		},
		{
			desc:         "six groups",
			value:        "1-0:1.8.1.2(000123.456*kWh)",
			expected:     MakeID(1, 0, 1, 8, 1, 2),
			expectedRest: "(000123.456*kWh)",
		},
		{
			desc:    "empty string",
			value:   "",
			invalid: true,
		},
		{
			desc:    "missing medium group",
			value:   "0:96.1.0(4B384547)",
			invalid: true,
		},
		{
			desc:    "non-numeric group",
			value:   "1-0:a.7.0(00.317*kW)",
			invalid: true,
		},
		{
			desc:    "too many groups",
			value:   "1-0:1.7.0.1.2(00.317*kW)",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			id, rest, err := ParseID(tc.value)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, id)
			assert.Equal(t, tc.expectedRest, rest)
		})
	}
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "1-0:1.7.0", MakeID(1, 0, 1, 7, 0).String())
	assert.Equal(t, "1-0:1.8.1.2", MakeID(1, 0, 1, 8, 1, 2).String())
}

func TestIDAsMapKey(t *testing.T) {
	descriptions := map[ID]string{
		MakeID(1, 0, 1, 7, 0): "power delivered",
		MakeID(1, 0, 2, 7, 0): "power returned",
	}
	assert.Equal(t, "power delivered", descriptions[MakeID(1, 0, 1, 7, 0)])
	_, ok := descriptions[MakeID(0, 0, 1, 0, 0)]
	assert.False(t, ok)
}
