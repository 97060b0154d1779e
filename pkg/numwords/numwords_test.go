package numwords

import (
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestConvert_KnownValues(t *testing.T) {
	cases := map[int64]string{
		0:        "zero",
		7:        "seven",
		10:       "ten",
		19:       "nineteen",
		20:       "twenty",
		42:       "forty two",
		100:      "one hundred",
		119:      "one hundred nineteen",
		681:      "six hundred eighty one",
		1000:     "one thousand",
		1001:     "one thousand one",
		21515:    "twenty one thousand five hundred fifteen",
		99999:    "ninety nine thousand nine hundred ninety nine",
		100000:   "one lakh",
		250075:   "two lakh fifty thousand seventy five",
		9999999:  "ninety nine lakh ninety nine thousand nine hundred ninety nine",
		12345678: "one hundred twenty three lakh forty five thousand six hundred seventy eight",
	}
	for n, want := range cases {
		assert.Equal(t, want, Convert(n), "Convert(%d)", n)
	}
}

func TestConvert_LargeLakhGroup(t *testing.T) {
	assert.Equal(t, "one thousand lakh", Convert(100000000))
}

func TestConvert_Negative(t *testing.T) {
	assert.Equal(t, "minus five", Convert(-5))
	assert.True(t, strings.HasPrefix(Convert(math.MinInt64), "minus "))
}

func TestConvert_ShapeBelowOneLakh(t *testing.T) {
	for n := int64(0); n < 100000; n++ {
		w := Convert(n)
		if w == "" {
			t.Fatalf("Convert(%d) is empty", n)
		}
		if w != strings.TrimSpace(w) || strings.Contains(w, "  ") {
			t.Fatalf("Convert(%d) = %q has stray spaces", n, w)
		}
		for _, r := range w {
			if unicode.IsDigit(r) || unicode.IsUpper(r) {
				t.Fatalf("Convert(%d) = %q has digit or uppercase", n, w)
			}
		}
		if strings.Contains(w, " and") {
			t.Fatalf("Convert(%d) = %q has a conjunction", n, w)
		}
	}
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "RS. SIX HUNDRED EIGHTY ONE ONLY", Rupees(681))
	assert.Equal(t, "RS. ZERO ONLY", Rupees(0))
}

func TestRupeesFloat(t *testing.T) {
	assert.Equal(t, "RS. SIX HUNDRED EIGHTY ONE ONLY", RupeesFloat(681))
	assert.Equal(t, "RS. SIX HUNDRED EIGHTY ONE ONLY", RupeesFloat(680.6))
	assert.Equal(t, "RS. MINUS FOUR ONLY", RupeesFloat(-4))
	assert.Equal(t, "RS. ZERO ONLY", RupeesFloat(-0.2))
	assert.Equal(t, "RS. ZERO ONLY", RupeesFloat(math.NaN()))
}

func TestConvertFloat_BeyondInt64StaysPositive(t *testing.T) {
	assert.Equal(t, convert(10_000_000_000_000_000_000), ConvertFloat(1e19))
	assert.NotContains(t, ConvertFloat(1e19), "minus")

	assert.Equal(t, convert(math.MaxUint64), ConvertFloat(1e30), "clamped to the uint64 range")
	assert.Equal(t, "minus "+convert(math.MaxUint64), ConvertFloat(-1e30))
	assert.Equal(t, Convert(math.MinInt64), ConvertFloat(-0x1p63))
}
