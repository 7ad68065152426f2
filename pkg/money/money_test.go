package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "comma decimal", input: "100,50", want: "100.5"},
		{name: "dot decimal", input: "100.50", want: "100.5"},
		{name: "integer", input: "42", want: "42"},
		{name: "spaces and currency", input: " 1 234,56 € ", want: "1234.56"},
		{name: "dot grouping with comma decimal", input: "1.234,56", want: "1234.56"},
		{name: "comma grouping with dot decimal", input: "1,234.56", want: "1234.56"},
		{name: "repeated dots are grouping", input: "1.000.000", want: "1000000"},
		{name: "trailing separator while typing", input: "12,", want: "12"},
		{name: "leading separator", input: ",5", want: "0.5"},
		{name: "negative", input: "-3,25", want: "-3.25"},
		{name: "percent sign", input: "10%", want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Parse(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantEmpty bool
	}{
		{name: "empty", input: "", wantEmpty: true},
		{name: "blank", input: "   ", wantEmpty: true},
		{name: "lone minus", input: "-", wantEmpty: true},
		{name: "letters", input: "abc", wantEmpty: false},
		{name: "mixed garbage", input: "12x4", wantEmpty: false},
		{name: "exponent", input: "1e5", wantEmpty: false},
		{name: "large exponent", input: "1e8000000", wantEmpty: false},
		{name: "upper exponent with comma", input: "2,5E3", wantEmpty: false},
		{name: "sign in the middle", input: "12-4", wantEmpty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.input, parseErr.Input)
			assert.Equal(t, tt.wantEmpty, errors.Is(err, ErrEmpty))
			assert.Equal(t, !tt.wantEmpty, errors.Is(err, ErrNotPlain))
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.False(t, ParseValue("").Known)
	assert.False(t, ParseValue("x").Known)

	v := ParseValue("0")
	assert.True(t, v.Known)
	assert.False(t, v.Positive())

	assert.True(t, ParseValue("0,01").Positive())
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "4", want: 4},
		{input: "4,9", want: 4},
		{input: "-2,7", want: -2},
		{input: "0,5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IntPart())
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "round to 2 decimals", input: "123.456789", want: "123.46"},
		{name: "already 2 decimals", input: "123.45", want: "123.45"},
		{name: "half goes up", input: "0.125", want: "0.13"},
		{name: "third of a hundred", input: "33.3333333", want: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.input))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Round2() = %s, want %s", got, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "25,00", Format(decimal.NewFromInt(25)))
	assert.Equal(t, "1234,57", Format(decimal.RequireFromString("1234.567")))
	assert.Equal(t, "-0,50", Format(decimal.RequireFromString("-0.5")))
	assert.Equal(t, "3", FormatCount(decimal.RequireFromString("3.9")))

	// отформатированное значение разбирается обратно без потерь
	back, err := Parse(Format(decimal.RequireFromString("9876.5")))
	require.NoError(t, err)
	assert.True(t, back.Equal(decimal.RequireFromString("9876.5")))
}
