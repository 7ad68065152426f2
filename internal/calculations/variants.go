package calculations

import (
	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// Variant задает тройку полей и формулу c = a × f(b).
//
// При правке итога решается поле Solve; оставшееся из a и b - опорное,
// оно всегда вводится пользователем и никогда не вычисляется.
type Variant struct {
	Name   string
	Fields [fieldCount]FieldSpec
	Solve  Field

	factor          func(b decimal.Decimal) decimal.Decimal
	inverse         func(ratio decimal.Decimal) decimal.Decimal
	validMultiplier func(b money.Value) bool
}

// Split - разделение расхода: totalAmount = perUnitAmount × quantity
var Split = &Variant{
	Name: "split",
	Fields: [fieldCount]FieldSpec{
		{Name: "perUnitAmount", Kind: KindMoney},
		{Name: "quantity", Kind: KindCount},
		{Name: "totalAmount", Kind: KindMoney},
	},
	Solve:           FieldBase,
	factor:          identity,
	validMultiplier: positiveCount,
}

// Installment - покупка в рассрочку: totalAmount = amountPerInstallment × installmentCount
var Installment = &Variant{
	Name: "installment",
	Fields: [fieldCount]FieldSpec{
		{Name: "amountPerInstallment", Kind: KindMoney},
		{Name: "installmentCount", Kind: KindCount},
		{Name: "totalAmount", Kind: KindMoney},
	},
	Solve:           FieldBase,
	factor:          identity,
	validMultiplier: positiveCount,
}

// Return - доходность вложения: totalReturn = principal × (1 + ratePercent/100).
// Правка итога пересчитывает ставку, основная сумма остается опорной.
var Return = &Variant{
	Name: "return",
	Fields: [fieldCount]FieldSpec{
		{Name: "principal", Kind: KindMoney},
		{Name: "ratePercent", Kind: KindPercent},
		{Name: "totalReturn", Kind: KindMoney},
	},
	Solve:  FieldMultiplier,
	factor: growth,
	inverse: func(ratio decimal.Decimal) decimal.Decimal {
		return ratio.Sub(decimal.NewFromInt(1)).Mul(hundred)
	},
	validMultiplier: func(b money.Value) bool {
		// убыток допустим, пока итог остается положительным
		return b.Known && growth(b.Amount).IsPositive()
	},
}

// Variants перечисляет поддерживаемые варианты
var Variants = []*Variant{Split, Installment, Return}

// VariantByName возвращает вариант по имени
func VariantByName(name string) (*Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Spec возвращает описание поля
func (v *Variant) Spec(f Field) FieldSpec {
	if !f.valid() {
		return FieldSpec{}
	}
	return v.Fields[f.index()]
}

// FieldName возвращает внешнее имя поля
func (v *Variant) FieldName(f Field) string {
	return v.Spec(f).Name
}

// FieldByName ищет поле по внешнему имени
func (v *Variant) FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if v.FieldName(f) == name {
			return f, true
		}
	}
	return FieldNone, false
}

// Anchor возвращает опорное поле варианта
func (v *Variant) Anchor() Field {
	if v.Solve == FieldBase {
		return FieldMultiplier
	}
	return FieldBase
}

// Format форматирует вычисленное значение для поля
func (v *Variant) Format(f Field, d decimal.Decimal) string {
	if v.Spec(f).Kind == KindCount {
		return money.FormatCount(d)
	}
	return money.Format(d)
}

func identity(b decimal.Decimal) decimal.Decimal {
	return b
}

func growth(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate.Div(hundred))
}

func positiveCount(b money.Value) bool {
	return b.Known && money.TruncCount(b.Amount).IsPositive()
}
