package forms

import (
	"context"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/calculations"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/metrics"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/modes"
)

// SetMode переключает режим оплаты и пересчитывает зависимые поля
func (f *Form) SetMode(ctx context.Context, mode modes.PaymentMode) (View, error) {
	if f.selector == nil {
		return View{}, ErrNoPaymentMode
	}

	ctx, span := f.tracer.Start(ctx, "form.set_mode")
	defer span.End()

	f.mu.Lock()
	defer f.mu.Unlock()

	from := f.selector.Mode()
	f.applyMode(mode)

	span.SetAttributes(
		attribute.String("form_id", f.id.String()),
		attribute.String("from", from.String()),
		attribute.String("to", mode.String()),
	)
	metrics.ModeChanges.WithLabelValues(mode.String()).Inc()
	slog.InfoContext(ctx, "Payment mode changed",
		"form_id", f.id,
		"from", from,
		"to", mode,
		"quantity", f.state.Text(calculations.FieldMultiplier),
	)

	return f.view(), nil
}

// applyMode переписывает поля, закрепленные режимом. Вызывается под мьютексом.
func (f *Form) applyMode(mode modes.PaymentMode) {
	perms := f.selector.SetMode(mode)
	st := f.state.
		WithFixed(calculations.FieldMultiplier, perms.FixedQuantity()).
		WithFixed(calculations.FieldBase, !perms.AmountEditable)

	switch {
	case perms.FixedQuantity():
		st = st.WithText(calculations.FieldMultiplier, strconv.Itoa(perms.Quantity))
		f.quantityEntered = false
	case st.Text(calculations.FieldMultiplier) == "" || !f.quantityEntered:
		// значение, введенное пользователем, не перезаписывается
		st = st.WithText(calculations.FieldMultiplier, strconv.Itoa(f.cfg.DefaultSplitQuantity))
	}

	// сумму на участника нельзя вводить, ведущим становится итог
	if !perms.AmountEditable && st.Driver == calculations.FieldBase {
		st = st.WithDriver(calculations.FieldTotal)
		st.Locks.Unlock(calculations.FieldTotal)
	}

	f.state, _ = calculations.Rederive(calculations.Split, st)

	if !perms.Participates {
		f.account = ""
	}
}

// SelectAccount выбирает счет расчета. Пока пользователь не участвует в расходе,
// выбор игнорируется.
func (f *Form) SelectAccount(accountID string) (View, error) {
	if f.selector == nil {
		return View{}, ErrNoPaymentMode
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selector.Permissions().Participates {
		f.account = accountID
	}
	return f.view(), nil
}

// Mode возвращает текущий режим оплаты
func (f *Form) Mode() (modes.PaymentMode, error) {
	if f.selector == nil {
		return modes.PaidByMe, ErrNoPaymentMode
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selector.Mode(), nil
}
