package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты взятия сделки
const (
	ClaimResultWon      = "won"
	ClaimResultConflict = "conflict"
	ClaimResultError    = "error"
)

// DealMetrics содержит метрики жизненного цикла сделок.
// Все методы безопасны для nil-получателя, чтобы сервисы работали без метрик.
type DealMetrics struct {
	DealsCreatedTotal        *prometheus.CounterVec
	DealsCreatedAmountTotal  prometheus.Counter
	DealClaimsTotal          *prometheus.CounterVec
	ClaimDuration            prometheus.Histogram
	ChecksSubmittedTotal     *prometheus.CounterVec
	DealsAdvancedTotal       *prometheus.CounterVec
	RequisiteResolutionTotal *prometheus.CounterVec
	ChangeEventsTotal        *prometheus.CounterVec
	NotifyErrorsTotal        *prometheus.CounterVec
}

// NewRegistry создает реестр со стандартными коллекторами процесса и рантайма
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewDealMetrics регистрирует метрики в reg
func NewDealMetrics(reg prometheus.Registerer) *DealMetrics {
	factory := promauto.With(reg)

	return &DealMetrics{
		DealsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_created_total",
				Help: "Количество созданных P2P-заявок",
			},
			[]string{"country"},
		),

		DealsCreatedAmountTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "deals_created_amount_rub_total",
				Help: "Общая сумма созданных заявок в рублях",
			},
		),

		DealClaimsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deal_claims_total",
				Help: "Попытки взять сделку по результату",
			},
			[]string{"result"},
		),

		ClaimDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "deal_claim_duration_seconds",
				Help:    "Время условного обновления при взятии сделки",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),

		ChecksSubmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checks_submitted_total",
				Help: "Загруженные чеки по типу привязки",
			},
			[]string{"binding"},
		),

		DealsAdvancedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deals_advanced_total",
				Help: "Переводы сделок в check_sent по источнику",
			},
			[]string{"source"},
		),

		RequisiteResolutionTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requisite_resolutions_total",
				Help: "Разрешения реквизитов банка по результату",
			},
			[]string{"found"},
		),

		ChangeEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "change_events_total",
				Help: "События ленты изменений, доставленные подписчикам",
			},
			[]string{"topic"},
		),

		NotifyErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notify_errors_total",
				Help: "Неудачные внешние уведомления",
			},
			[]string{"event"},
		),
	}
}

// RecordDealCreated записывает созданную заявку
func (m *DealMetrics) RecordDealCreated(country string, amountRub float64) {
	if m == nil {
		return
	}
	m.DealsCreatedTotal.WithLabelValues(country).Inc()
	m.DealsCreatedAmountTotal.Add(amountRub)
}

// RecordClaim записывает попытку взять сделку
func (m *DealMetrics) RecordClaim(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DealClaimsTotal.WithLabelValues(result).Inc()
	m.ClaimDuration.Observe(duration.Seconds())
}

// RecordCheckSubmitted записывает загруженный чек
func (m *DealMetrics) RecordCheckSubmitted(binding string) {
	if m == nil {
		return
	}
	m.ChecksSubmittedTotal.WithLabelValues(binding).Inc()
}

// RecordDealAdvanced записывает перевод сделки в check_sent
func (m *DealMetrics) RecordDealAdvanced(source string) {
	if m == nil {
		return
	}
	m.DealsAdvancedTotal.WithLabelValues(source).Inc()
}

// RecordRequisiteResolution записывает результат поиска реквизита
func (m *DealMetrics) RecordRequisiteResolution(found bool) {
	if m == nil {
		return
	}
	foundStr := "false"
	if found {
		foundStr = "true"
	}
	m.RequisiteResolutionTotal.WithLabelValues(foundStr).Inc()
}

// RecordChangeEvent записывает доставленное событие ленты
func (m *DealMetrics) RecordChangeEvent(topic string) {
	if m == nil {
		return
	}
	m.ChangeEventsTotal.WithLabelValues(topic).Inc()
}

// RecordNotifyError записывает неудачное уведомление
func (m *DealMetrics) RecordNotifyError(event string) {
	if m == nil {
		return
	}
	m.NotifyErrorsTotal.WithLabelValues(event).Inc()
}
