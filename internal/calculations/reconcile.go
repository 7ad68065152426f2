package calculations

import (
	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// Reconcile применяет ввод пользователя в поле и пересчитывает зависимое поле.
//
// Правка поля снимает с него блокировку. Пустой или нечисловой ввод только
// снимает блокировку и ничего не пересчитывает. Правка итога решает поле
// Solve, правка Solve пересчитывает итог, правка опорного поля пересчитывает
// то из двух оставшихся полей, которое не является ведущим. Вычисленное поле
// блокируется. Если операнда не хватает, зависимое поле остается как было.
func Reconcile(v *Variant, st State, field Field, raw string) (State, Outcome) {
	if !field.valid() || st.Fixed(field) {
		return st, OutcomeIgnored
	}

	st.text[field.index()] = raw
	st.Locks.Unlock(field)
	if field != v.Anchor() {
		st.Driver = field
	}

	if !st.Value(v, field).Known {
		return st, OutcomeUnparsed
	}

	var target Field
	switch field {
	case v.Anchor():
		target = st.dependent(v)
	case FieldTotal:
		target = v.Solve
	default:
		target = FieldTotal
	}
	return derive(v, st, target)
}

// Rederive пересчитывает зависимое поле без ввода пользователя,
// например после того, как режим переписал опорное поле.
func Rederive(v *Variant, st State) (State, Outcome) {
	return derive(v, st, st.dependent(v))
}

// dependent выбирает поле для пересчета при изменении опорного поля:
// пересчитывается то из двух других полей, которое не ведущее. Если ведущий
// итог, решается Solve, а итог, введенный пользователем, не перезаписывается.
func (st State) dependent(v *Variant) Field {
	switch st.Driver {
	case FieldTotal:
		return v.Solve
	case v.Solve:
		return FieldTotal
	}
	if st.Value(v, v.Solve).Known {
		return FieldTotal
	}
	return v.Solve
}

func derive(v *Variant, st State, target Field) (State, Outcome) {
	d, err := solve(v, st, target)
	if err != nil {
		return st, OutcomeSkipped
	}
	st.text[target.index()] = v.Format(target, d)
	st.Locks.Lock(target)
	return st, OutcomeRecomputed
}

func solve(v *Variant, st State, target Field) (decimal.Decimal, error) {
	a := st.Value(v, FieldBase)
	b := st.Value(v, FieldMultiplier)
	c := st.Value(v, FieldTotal)

	switch target {
	case FieldTotal:
		if !a.Positive() || !v.validMultiplier(b) {
			return decimal.Zero, ErrMissingOperand
		}
		return money.Round2(a.Amount.Mul(v.factor(b.Amount))), nil

	case FieldBase:
		if !c.Positive() || !v.validMultiplier(b) {
			return decimal.Zero, ErrMissingOperand
		}
		return money.Round2(c.Amount.Div(v.factor(b.Amount))), nil

	case FieldMultiplier:
		if v.inverse == nil || !c.Positive() || !a.Positive() {
			return decimal.Zero, ErrMissingOperand
		}
		return money.Round2(v.inverse(c.Amount.Div(a.Amount))), nil
	}
	return decimal.Zero, ErrMissingOperand
}
