package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tt := []struct {
		desc           string
		maxFrac        int
		unit           string
		span           string
		expected       uint32
		expectedRest   string
		expectedOffset int
		invalid        bool
	}{
		{
			desc:     "decimal with three fraction digits",
			maxFrac:  3,
			unit:     "kW",
			span:     "(00.317*kW)",
			expected: 317,
		},
		{
			desc:     "decimal with one fraction digit is scaled up",
			maxFrac:  3,
			unit:     "V",
			span:     "(220.1*V)",
			expected: 220100,
		},
		{
			desc:     "decimal without fraction digits",
			maxFrac:  3,
			unit:     "A",
			span:     "(001*A)",
			expected: 1000,
		},
		{
			desc:     "plain integer without unit",
			maxFrac:  0,
			unit:     "",
			span:     "(00004)",
			expected: 4,
		},
		{
			desc:     "integer with small unit",
			maxFrac:  0,
			unit:     "Wh",
			span:     "(000441879*Wh)",
			expected: 441879,
		},
		{
			desc:         "trailing value group is not consumed",
			maxFrac:      3,
			unit:         "m3",
			span:         "(00473.789*m3)(extra)",
			expected:     473789,
			expectedRest: "(extra)",
		},
		{
			desc:           "too many fraction digits",
			maxFrac:        3,
			unit:           "kW",
			span:           "(0.3175*kW)",
			expectedOffset: 6,
			invalid:        true,
		},
		{
			desc:           "fraction digits on integer field",
			maxFrac:        0,
			unit:           "",
			span:           "(00.4)",
			expectedOffset: 3,
			invalid:        true,
		},
		{
			desc:           "wrong unit",
			maxFrac:        3,
			unit:           "kW",
			span:           "(00.317*kWh)",
			expectedOffset: 8,
			invalid:        true,
		},
		{
			desc:           "missing unit",
			maxFrac:        3,
			unit:           "kW",
			span:           "(00.317)",
			expectedOffset: 7,
			invalid:        true,
		},
		{
			desc:           "non-numeric characters",
			maxFrac:        3,
			unit:           "kW",
			span:           "(0a.317*kW)",
			expectedOffset: 2,
			invalid:        true,
		},
		{
			desc:           "duplicate decimal point",
			maxFrac:        3,
			unit:           "kW",
			span:           "(0.3.7*kW)",
			expectedOffset: 4,
			invalid:        true,
		},
		{
			desc:           "empty value group",
			maxFrac:        3,
			unit:           "kW",
			span:           "()",
			expectedOffset: 1,
			invalid:        true,
		},
		{
			desc:           "missing opening parenthesis",
			maxFrac:        3,
			unit:           "kW",
			span:           "00.317*kW)",
			expectedOffset: 0,
			invalid:        true,
		},
		{
			desc:           "missing closing parenthesis",
			maxFrac:        3,
			unit:           "kW",
			span:           "(00.317*kW",
			expectedOffset: 10,
			invalid:        true,
		},
		{
			desc:           "empty span",
			maxFrac:        3,
			unit:           "kW",
			span:           "",
			expectedOffset: 0,
			invalid:        true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			value, rest, err := parseNumber(tc.maxFrac, tc.unit, tc.span)
			if tc.invalid {
				require.Error(t, err)
				parseErr, ok := err.(*ParseError)
				require.True(t, ok, "expected a *ParseError, got %T", err)
				assert.Equal(t, tc.expectedOffset, parseErr.Offset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
			assert.Equal(t, tc.expectedRest, rest)
		})
	}
}

func TestParseString(t *testing.T) {
	tt := []struct {
		desc         string
		minLen       int
		maxLen       int
		span         string
		expected     string
		expectedRest string
		invalid      bool
	}{
		{
			desc:     "within bounds",
			minLen:   0,
			maxLen:   96,
			span:     "(ABCDEFGH)",
			expected: "ABCDEFGH",
		},
		{
			desc:     "exactly at minimum",
			minLen:   4,
			maxLen:   8,
			span:     "(0001)",
			expected: "0001",
		},
		{
			desc:     "exactly at maximum",
			minLen:   0,
			maxLen:   4,
			span:     "(0001)",
			expected: "0001",
		},
		{
			desc:     "empty string with zero minimum",
			minLen:   0,
			maxLen:   96,
			span:     "()",
			expected: "",
		},
		{
			desc:         "trailing value group is not consumed",
			minLen:       13,
			maxLen:       13,
			span:         "(150117180000W)(00473.789*m3)",
			expected:     "150117180000W",
			expectedRest: "(00473.789*m3)",
		},
		{
			desc:    "below minimum",
			minLen:  4,
			maxLen:  4,
			span:    "(00)",
			invalid: true,
		},
		{
			desc:    "above maximum",
			minLen:  0,
			maxLen:  4,
			span:    "(00000)",
			invalid: true,
		},
		{
			desc:    "missing delimiters",
			minLen:  0,
			maxLen:  96,
			span:    "ABCDEFGH",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			value, rest, err := parseString(tc.minLen, tc.maxLen, tc.span)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
			assert.Equal(t, tc.expectedRest, rest)
		})
	}
}
