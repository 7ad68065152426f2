package calculations

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// ErrMissingOperand означает, что пересчет пропущен: операнд пуст, нулевой или отрицательный
var ErrMissingOperand = errors.New("missing operand")

// Field - позиция поля в тройке c = a × f(b)
type Field int

const (
	FieldNone       Field = iota
	FieldBase             // a: сумма на единицу, сумма взноса, основная сумма
	FieldMultiplier       // b: количество, число взносов, ставка
	FieldTotal            // c: итог
)

const fieldCount = 3

// Fields перечисляет поля тройки в порядке отображения
var Fields = [fieldCount]Field{FieldBase, FieldMultiplier, FieldTotal}

func (f Field) valid() bool {
	return f >= FieldBase && f <= FieldTotal
}

func (f Field) index() int {
	return int(f) - 1
}

// Kind определяет правила разбора и форматирования поля
type Kind int

const (
	KindMoney Kind = iota
	KindCount
	KindPercent
)

// FieldSpec описывает поле варианта
type FieldSpec struct {
	Name string
	Kind Kind
}

// Outcome - результат одного прохода согласования
type Outcome int

const (
	OutcomeRecomputed Outcome = iota // зависимое поле пересчитано
	OutcomeSkipped                   // не хватает операнда, зависимое поле не тронуто
	OutcomeUnparsed                  // ввод пуст или не число, снята только блокировка
	OutcomeIgnored                   // поле не редактируется в текущем режиме
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRecomputed:
		return "recomputed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnparsed:
		return "unparsed"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// State - состояние согласования одной открытой формы.
// Значение передается и возвращается по значению, скрытых изменяемых ячеек нет.
type State struct {
	text  [fieldCount]string
	fixed [fieldCount]bool

	// Driver - последнее отредактированное поле, кроме опорного
	Driver Field
	Locks  Locks
}

// NewState создает пустое состояние без ведущего поля и блокировок
func NewState() State {
	return State{}
}

// Text возвращает отображаемый текст поля
func (st State) Text(f Field) string {
	if !f.valid() {
		return ""
	}
	return st.text[f.index()]
}

// WithText записывает текст поля без пересчета
func (st State) WithText(f Field, text string) State {
	if f.valid() {
		st.text[f.index()] = text
	}
	return st
}

// Fixed сообщает, что поле закреплено режимом и недоступно для ввода.
// Это отдельное, более сильное состояние, чем блокировка производного поля.
func (st State) Fixed(f Field) bool {
	return f.valid() && st.fixed[f.index()]
}

// WithFixed закрепляет или освобождает поле
func (st State) WithFixed(f Field, fixed bool) State {
	if f.valid() {
		st.fixed[f.index()] = fixed
	}
	return st
}

// WithDriver назначает ведущее поле
func (st State) WithDriver(f Field) State {
	st.Driver = f
	return st
}

// Value разбирает текст поля по правилам варианта
func (st State) Value(v *Variant, f Field) money.Value {
	if !f.valid() {
		return money.Unknown()
	}
	raw := st.text[f.index()]
	var (
		d   decimal.Decimal
		err error
	)
	if v.Spec(f).Kind == KindCount {
		d, err = money.ParseCount(raw)
	} else {
		d, err = money.Parse(raw)
	}
	if err != nil {
		return money.Unknown()
	}
	return money.Known(d)
}
