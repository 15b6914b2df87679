package words

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert_DefaultStyle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		n    uint64
		want string
	}{
		{0, "zero"},
		{7, "seven"},
		{10, "ten"},
		{13, "thirteen"},
		{19, "nineteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{40, "forty"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{101, "one hundred one"},
		{123, "one hundred twenty-three"},
		{999, "nine hundred ninety-nine"},
		{1000, "one thousand"},
		{1005, "one thousand five"},
		{12345, "twelve thousand three hundred forty-five"},
		{1000000, "one million"},
		{1000001, "one million one"},
		{7000000000, "seven billion"},
		{1000000000000, "one trillion"},
		{2000000000000005, "two quadrillion five"},
		{
			math.MaxUint32,
			"four billion two hundred ninety-four million nine hundred sixty-seven thousand two hundred ninety-five",
		},
		{
			math.MaxUint64,
			"eighteen quintillion four hundred forty-six quadrillion seven hundred forty-four trillion " +
				"seventy-three billion seven hundred nine million five hundred fifty-one thousand six hundred fifteen",
		},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, Convert(tc.n, DefaultOptions()), "n=%d", tc.n)
	}
}

func TestConvert_Options(t *testing.T) {
	t.Parallel()

	british := Options{UseAnd: true, Hyphenate: true}
	plain := Options{}

	testCases := []struct {
		name string
		n    uint64
		opts Options
		want string
	}{
		{"and after hundred", 105, british, "one hundred and five"},
		{"and before trailing small group", 1005, british, "one thousand and five"},
		{"and inside trailing group", 1105, british, "one thousand one hundred and five"},
		{"and with tens", 120, british, "one hundred and twenty"},
		{"no and for round hundreds", 1000100, british, "one million one hundred"},
		{"no and for single group below hundred", 42, british, "forty-two"},
		{"no and for round scale", 2000000, british, "two million"},
		{"unhyphenated tens", 23, plain, "twenty three"},
		{"unhyphenated in larger number", 123456, plain, "one hundred twenty three thousand four hundred fifty six"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Convert(tc.n, tc.opts))
		})
	}
}

func TestConvert_NonEmptyAndDeterministic(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rng := rand.New(rand.NewSource(42))
	samples := make([]uint64, 0, 3000)
	for n := uint64(0); n < 2000; n++ {
		samples = append(samples, n)
	}
	for i := 0; i < 1000; i++ {
		samples = append(samples, rng.Uint64())
	}

	for _, n := range samples {
		// --- Act ---
		first := Convert(n, DefaultOptions())
		second := Convert(n, DefaultOptions())

		// --- Assert ---
		require.NotEmpty(t, first, "n=%d", n)
		require.Equal(t, first, second, "n=%d", n)
		require.Equal(t, strings.ToLower(first), first, "n=%d", n)
		require.NotContains(t, first, "  ", "n=%d", n)
		require.Equal(t, strings.TrimSpace(first), first, "n=%d", n)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Count("zero"))
	require.Equal(t, 3, Count("one hundred twenty-three"))
	require.Equal(t, 4, Count("one hundred twenty three"))
}
