package validators

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/config"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// Причины ошибок, которые форма сопоставляет с сообщениями для пользователя
const (
	ReasonNotPositive       = "must be a positive number"
	ReasonAccountRequired   = "required when participating"
	ReasonPrincipalRequired = "required when rate or return is set"
	ReasonCountInvalid      = "must be an integer >= 1"
	ReasonRateTooLow        = "must be greater than -100"
)

// FieldError - ошибка проверки одного поля
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Result - результат проверки перед сохранением.
// Ошибки собираются все сразу, в порядке правил.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// OK сообщает, что запись можно сохранять
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err объединяет ошибки в одну или возвращает nil
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Has сообщает, есть ли ошибка для поля
func (r Result) Has(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (r *Result) add(e *FieldError) {
	if e != nil {
		r.Errors = append(r.Errors, *e)
	}
}

// ValidatePositiveAmount проверяет, что сумма введена, положительна и не больше максимума
func ValidatePositiveAmount(field string, v money.Value, maxInclusive float64) *FieldError {
	if !v.Positive() {
		return &FieldError{Field: field, Reason: ReasonNotPositive}
	}
	return ValidateMax(field, v, maxInclusive)
}

// ValidateMax проверяет верхнюю границу известного значения
func ValidateMax(field string, v money.Value, maxInclusive float64) *FieldError {
	limit := decimal.NewFromFloat(maxInclusive)
	if v.Known && v.Amount.GreaterThan(limit) {
		return &FieldError{Field: field, Reason: fmt.Sprintf("must not exceed %s", money.Format(limit))}
	}
	return nil
}

// ValidateIntRange проверяет, что значение целое и в диапазоне [min; max]
func ValidateIntRange(field string, v money.Value, minInclusive, maxInclusive int, belowMin string) *FieldError {
	if !v.Known || !v.Amount.IsInteger() || v.Amount.LessThan(decimal.NewFromInt(int64(minInclusive))) {
		return &FieldError{Field: field, Reason: belowMin}
	}
	if v.Amount.GreaterThan(decimal.NewFromInt(int64(maxInclusive))) {
		return &FieldError{Field: field, Reason: fmt.Sprintf("must not exceed %d", maxInclusive)}
	}
	return nil
}

// MinQuantityReason возвращает причину ошибки количества для режима "между многими"
func MinQuantityReason(cfg *config.Config) string {
	return fmt.Sprintf("must be >= %d", minSplitQuantity(cfg))
}

func minSplitQuantity(cfg *config.Config) int {
	if cfg == nil {
		return config.Default().MinSplitQuantity
	}
	return cfg.MinSplitQuantity
}

func limits(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}
