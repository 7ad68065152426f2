package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconcilePasses счетчик проходов согласования по исходу
	ReconcilePasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_passes_total",
			Help: "Количество проходов согласования полей формы",
		},
		[]string{"variant", "field", "outcome"},
	)

	// ModeChanges счетчик переключений режима оплаты
	ModeChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_mode_changes_total",
			Help: "Количество переключений режима оплаты",
		},
		[]string{"mode"},
	)

	// Submissions счетчик попыток сохранения
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Попытки сохранения формы",
		},
		[]string{"variant", "status"},
	)

	// ValidationErrors счетчик ошибок проверки по полям
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_errors_total",
			Help: "Ошибки проверки перед сохранением",
		},
		[]string{"variant", "field"},
	)
)
