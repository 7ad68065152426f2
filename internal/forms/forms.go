// Package forms связывает движок согласования с открытой формой.
//
// Form владеет состоянием одной записи от открытия формы до ее закрытия.
// Каждая операция выполняется под мьютексом: чтение, пересчет и запись тройки
// полей не перемежаются между нажатиями клавиш, даже если ввод приходит
// из нескольких горутин.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/calculations"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/config"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/metrics"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/modes"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/validators"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// ErrNoPaymentMode возвращается для операций режима на формах без режима оплаты
var ErrNoPaymentMode = errors.New("form has no payment mode")

// Form - состояние согласования одной открытой формы
type Form struct {
	mu      sync.Mutex
	id      uuid.UUID
	cfg     *config.Config
	tracer  trace.Tracer
	variant *calculations.Variant
	state   calculations.State

	// только для разделенного расхода
	selector        *modes.Selector
	account         string
	quantityEntered bool
}

// SplitSeed - начальные значения формы разделенного расхода.
// Quantity учитывается только в режиме SPLIT_AMONG_MANY.
type SplitSeed struct {
	Mode        modes.PaymentMode
	Quantity    int
	TotalAmount decimal.NullDecimal
	Account     string
}

// InstallmentSeed - начальные значения формы рассрочки
type InstallmentSeed struct {
	InstallmentCount int
	TotalAmount      decimal.NullDecimal
}

// ReturnSeed - начальные значения формы доходности
type ReturnSeed struct {
	Principal   decimal.NullDecimal
	RatePercent decimal.NullDecimal
	TotalReturn decimal.NullDecimal
}

func newForm(cfg *config.Config, tracer trace.Tracer, v *calculations.Variant) *Form {
	if cfg == nil {
		cfg = config.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Form{
		id:      uuid.New(),
		cfg:     cfg,
		tracer:  tracer,
		variant: v,
		state:   calculations.NewState(),
	}
}

// NewSplitForm открывает форму разделенного расхода
func NewSplitForm(cfg *config.Config, tracer trace.Tracer, seed SplitSeed) *Form {
	f := newForm(cfg, tracer, calculations.Split)
	f.selector = modes.NewSelector(seed.Mode)
	if seed.Mode == modes.SplitAmongMany && seed.Quantity > 0 {
		f.state = f.state.WithText(calculations.FieldMultiplier, strconv.Itoa(seed.Quantity))
		f.quantityEntered = true
	}
	f.applyMode(seed.Mode)
	f.seed(calculations.FieldTotal, seed.TotalAmount)
	if f.selector.Permissions().Participates {
		f.account = seed.Account
	}
	return f
}

// NewInstallmentForm открывает форму рассрочки
func NewInstallmentForm(cfg *config.Config, tracer trace.Tracer, seed InstallmentSeed) *Form {
	f := newForm(cfg, tracer, calculations.Installment)
	if seed.InstallmentCount > 0 {
		f.state, _ = calculations.Reconcile(f.variant, f.state, calculations.FieldMultiplier, strconv.Itoa(seed.InstallmentCount))
	}
	f.seed(calculations.FieldTotal, seed.TotalAmount)
	return f
}

// NewReturnForm открывает форму доходности вложения
func NewReturnForm(cfg *config.Config, tracer trace.Tracer, seed ReturnSeed) *Form {
	f := newForm(cfg, tracer, calculations.Return)
	f.seed(calculations.FieldBase, seed.Principal)
	f.seed(calculations.FieldMultiplier, seed.RatePercent)
	f.seed(calculations.FieldTotal, seed.TotalReturn)
	return f
}

// seed проводит сохраненное значение через тот же путь, что и ввод пользователя
func (f *Form) seed(field calculations.Field, value decimal.NullDecimal) {
	if !value.Valid {
		return
	}
	f.state, _ = calculations.Reconcile(f.variant, f.state, field, f.variant.Format(field, value.Decimal))
}

// ID возвращает идентификатор сессии формы
func (f *Form) ID() uuid.UUID {
	return f.id
}

// Variant возвращает вариант формы
func (f *Form) Variant() *calculations.Variant {
	return f.variant
}

// Edit применяет ввод пользователя в поле и возвращает обновленное представление
func (f *Form) Edit(ctx context.Context, fieldName, raw string) (View, error) {
	ctx, span := f.tracer.Start(ctx, "form.edit")
	defer span.End()

	field, ok := f.variant.FieldByName(fieldName)
	if !ok {
		span.SetAttributes(attribute.String("error", "unknown_field"))
		return View{}, fmt.Errorf("unknown field %q for %s form", fieldName, f.variant.Name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var outcome calculations.Outcome
	f.state, outcome = calculations.Reconcile(f.variant, f.state, field, raw)
	if f.selector != nil && field == calculations.FieldMultiplier && outcome != calculations.OutcomeIgnored {
		f.quantityEntered = true
	}

	span.SetAttributes(
		attribute.String("form_id", f.id.String()),
		attribute.String("variant", f.variant.Name),
		attribute.String("field", fieldName),
		attribute.String("outcome", outcome.String()),
	)
	metrics.ReconcilePasses.WithLabelValues(f.variant.Name, fieldName, outcome.String()).Inc()
	slog.DebugContext(ctx, "Field edited",
		"form_id", f.id,
		"variant", f.variant.Name,
		"field", fieldName,
		"outcome", outcome,
	)

	return f.view(), nil
}

// View возвращает текущее представление формы
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view()
}

// Schedule возвращает график взносов для формы рассрочки
func (f *Form) Schedule() ([]calculations.ScheduleEntry, error) {
	if f.variant != calculations.Installment {
		return nil, fmt.Errorf("%s form has no installment schedule", f.variant.Name)
	}

	f.mu.Lock()
	total := f.state.Value(f.variant, calculations.FieldTotal)
	count := f.state.Value(f.variant, calculations.FieldMultiplier)
	f.mu.Unlock()

	if !total.Known || !count.Known {
		return nil, fmt.Errorf("total and installment count are required: %w", calculations.ErrMissingOperand)
	}
	// число взносов ограничено до построения графика
	if fe := validators.ValidateIntRange(validators.FieldInstallmentCount, count, 1, f.cfg.MaxInstallments, validators.ReasonCountInvalid); fe != nil {
		return nil, *fe
	}
	return calculations.InstallmentSchedule(money.Round2(total.Amount), int(count.Amount.IntPart()))
}
