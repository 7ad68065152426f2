// Package modes описывает режимы оплаты разделенного расхода и таблицу прав на поля.
package modes

import (
	"fmt"
	"strings"
)

// PaymentMode - способ разделения расхода
type PaymentMode int

const (
	PaidByMe PaymentMode = iota
	Guest
	SplitEvenly
	SplitAmongMany
)

// All перечисляет все режимы
var All = []PaymentMode{PaidByMe, Guest, SplitEvenly, SplitAmongMany}

var names = map[PaymentMode]string{
	PaidByMe:       "PAID_BY_ME",
	Guest:          "GUEST",
	SplitEvenly:    "SPLIT_EVENLY",
	SplitAmongMany: "SPLIT_AMONG_MANY",
}

func (m PaymentMode) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("PaymentMode(%d)", int(m))
}

// ParseMode разбирает имя режима без учета регистра
func ParseMode(s string) (PaymentMode, error) {
	for m, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return PaidByMe, fmt.Errorf("unknown payment mode %q", s)
}

// MarshalText реализует encoding.TextMarshaler
func (m PaymentMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (m *PaymentMode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Permissions - права на поля в режиме.
// Quantity равно нулю, если количество вводит пользователь.
type Permissions struct {
	Quantity         int
	QuantityEditable bool
	AmountEditable   bool
	Participates     bool
}

// PermissionsFor возвращает таблицу прав для режима
func PermissionsFor(m PaymentMode) Permissions {
	switch m {
	case Guest:
		return Permissions{Quantity: 1, Participates: false}
	case SplitEvenly:
		return Permissions{Quantity: 2, Participates: true}
	case SplitAmongMany:
		return Permissions{QuantityEditable: true, AmountEditable: true, Participates: true}
	default:
		return Permissions{Quantity: 1, Participates: true}
	}
}

// FixedQuantity сообщает, что количество задано режимом
func (p Permissions) FixedQuantity() bool {
	return !p.QuantityEditable
}

// Selector хранит текущий режим записи
type Selector struct {
	mode PaymentMode
}

// NewSelector создает селектор с начальным режимом
func NewSelector(m PaymentMode) *Selector {
	return &Selector{mode: m}
}

// Mode возвращает текущий режим
func (s *Selector) Mode() PaymentMode {
	return s.mode
}

// Permissions возвращает права текущего режима
func (s *Selector) Permissions() Permissions {
	return PermissionsFor(s.mode)
}

// SetMode переключает режим и возвращает его права.
// Переход возможен из любого режима в любой, только по выбору пользователя.
func (s *Selector) SetMode(m PaymentMode) Permissions {
	s.mode = m
	return PermissionsFor(m)
}
