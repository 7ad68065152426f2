// Package money содержит разбор и форматирование денежных значений формы.
//
// Значения хранятся как decimal.Decimal, наружу отдаются строкой с запятой
// в качестве десятичного разделителя ("1234,50"). Разбор терпим к вводу:
// принимает и запятую, и точку, пробелы, знаки валюты и процента.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalSeparator используется при форматировании значений для отображения
const DecimalSeparator = ","

var (
	// ErrEmpty возвращается для пустого ввода
	ErrEmpty = errors.New("empty input")
	// ErrNotPlain возвращается для записи не в виде цифр с разделителем (экспонента и т.п.)
	ErrNotPlain = errors.New("not a plain decimal number")
)

// ParseError описывает текст, который не удалось разобрать как число
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("money: cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Value - значение поля формы. Known=false означает "не введено".
type Value struct {
	Amount decimal.Decimal
	Known  bool
}

// Unknown возвращает пустое значение
func Unknown() Value {
	return Value{}
}

// Known оборачивает известное значение
func Known(d decimal.Decimal) Value {
	return Value{Amount: d, Known: true}
}

// Positive сообщает, что значение известно и больше нуля
func (v Value) Positive() bool {
	return v.Known && v.Amount.IsPositive()
}

// Parse разбирает денежное значение.
//
// Если в строке есть и запятая, и точка, десятичным разделителем считается
// последний из них, остальные - разделители разрядов. Одиночный разделитель
// любого вида считается десятичным, повторяющийся - разрядным.
func Parse(raw string) (decimal.Decimal, error) {
	s := normalize(raw)
	if s == "" {
		return decimal.Zero, &ParseError{Input: raw, Err: ErrEmpty}
	}
	if !plain(s) {
		return decimal.Zero, &ParseError{Input: raw, Err: ErrNotPlain}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Input: raw, Err: err}
	}
	return d, nil
}

// ParseValue разбирает ввод и возвращает Unknown для пустого или ошибочного текста
func ParseValue(raw string) Value {
	d, err := Parse(raw)
	if err != nil {
		return Unknown()
	}
	return Known(d)
}

// ParseCount разбирает количество: дробная часть отбрасывается к нулю
func ParseCount(raw string) (decimal.Decimal, error) {
	d, err := Parse(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return TruncCount(d), nil
}

// Round2 округляет до двух знаков, половина - от нуля
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// TruncCount отбрасывает дробную часть количества
func TruncCount(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(0)
}

// Format возвращает строку для отображения с двумя знаками и запятой
func Format(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", DecimalSeparator, 1)
}

// FormatCount возвращает целое количество без дробной части
func FormatCount(d decimal.Decimal) string {
	return TruncCount(d).String()
}

func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '€', '$', '%':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return ""
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	// "12," при наборе означает 12, ",5" - 0.5
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}
	if s == "" || s == "-" || s == "+" {
		return ""
	}
	return s
}

// plain допускает только знак в начале, цифры и одну точку
func plain(s string) bool {
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case (r == '-' || r == '+') && i == 0:
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}
