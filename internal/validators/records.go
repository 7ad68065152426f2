package validators

import (
	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/config"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/modes"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// Имена полей в ошибках проверки
const (
	FieldTotalAmount          = "totalAmount"
	FieldQuantity             = "quantity"
	FieldSettlementAccount    = "settlementAccount"
	FieldInstallmentCount     = "installmentCount"
	FieldAmountPerInstallment = "amountPerInstallment"
	FieldPrincipal            = "principal"
	FieldRatePercent          = "ratePercent"
	FieldTotalReturn          = "totalReturn"
)

// SplitRecord - разделенный расход на момент сохранения
type SplitRecord struct {
	Mode          modes.PaymentMode
	Quantity      money.Value
	TotalAmount   money.Value
	PerUnitAmount money.Value
	Participates  bool
	Account       string
}

// InstallmentRecord - покупка в рассрочку на момент сохранения
type InstallmentRecord struct {
	InstallmentCount     money.Value
	AmountPerInstallment money.Value
	TotalAmount          money.Value
}

// ReturnRecord - доходность вложения на момент сохранения
type ReturnRecord struct {
	Principal   money.Value
	RatePercent money.Value
	TotalReturn money.Value
}

// ValidateSplit проверяет разделенный расход
func ValidateSplit(cfg *config.Config, rec SplitRecord) Result {
	cfg = limits(cfg)
	var res Result

	res.add(ValidatePositiveAmount(FieldTotalAmount, rec.TotalAmount, cfg.MaxAmount))

	if rec.Mode == modes.SplitAmongMany {
		res.add(ValidateIntRange(FieldQuantity, rec.Quantity, cfg.MinSplitQuantity, cfg.MaxQuantity, MinQuantityReason(cfg)))
	}

	if rec.Participates && rec.Account == "" {
		res.add(&FieldError{Field: FieldSettlementAccount, Reason: ReasonAccountRequired})
	}

	return res
}

// ValidateInstallment проверяет покупку в рассрочку
func ValidateInstallment(cfg *config.Config, rec InstallmentRecord) Result {
	cfg = limits(cfg)
	var res Result

	res.add(ValidatePositiveAmount(FieldTotalAmount, rec.TotalAmount, cfg.MaxAmount))
	res.add(ValidateIntRange(FieldInstallmentCount, rec.InstallmentCount, 1, cfg.MaxInstallments, ReasonCountInvalid))
	res.add(ValidateMax(FieldAmountPerInstallment, rec.AmountPerInstallment, cfg.MaxAmount))

	return res
}

// ValidateReturn проверяет доходность вложения.
// Ставка или итог без основной суммы никогда не принимаются молча.
// Если основная сумма есть, итог обязан быть положительным.
func ValidateReturn(cfg *config.Config, rec ReturnRecord) Result {
	cfg = limits(cfg)
	var res Result

	missingPrincipal := (rec.RatePercent.Known || rec.TotalReturn.Known) && !rec.Principal.Positive()
	if missingPrincipal {
		res.add(&FieldError{Field: FieldPrincipal, Reason: ReasonPrincipalRequired})
	}
	res.add(ValidateMax(FieldPrincipal, rec.Principal, cfg.MaxAmount))

	if rec.RatePercent.Known {
		if rec.RatePercent.Amount.LessThanOrEqual(decimal.NewFromInt(-100)) {
			res.add(&FieldError{Field: FieldRatePercent, Reason: ReasonRateTooLow})
		}
		res.add(ValidateMax(FieldRatePercent, rec.RatePercent, cfg.MaxRate))
	}

	if missingPrincipal {
		res.add(ValidateMax(FieldTotalReturn, rec.TotalReturn, cfg.MaxAmount))
	} else {
		res.add(ValidatePositiveAmount(FieldTotalReturn, rec.TotalReturn, cfg.MaxAmount))
	}

	return res
}
