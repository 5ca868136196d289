package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics содержит метрики операций над корзиной.
type CartMetrics struct {
	// Счётчики операций по типу (add, set_quantity, remove, clear, view...)
	opsTotal    *prometheus.CounterVec
	opsFailed   *prometheus.CounterVec
	opDuration  *prometheus.HistogramVec

	// Строки, отброшенные при гидрации из-за исчезнувших товаров.
	hydrationDropped prometheus.Counter

	// Размер корзины в момент сохранения.
	saveLines prometheus.Histogram
}

// NewCartMetrics регистрирует метрики в DefaultRegisterer.
func NewCartMetrics() *CartMetrics {
	return newCartMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCartMetricsWithRegisterer(registerer prometheus.Registerer) *CartMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CartMetrics{
		opsTotal: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "cart_ops_total",
			Help: "Total number of cart operations by type",
		}, []string{"op"}),
		opsFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "cart_ops_failed_total",
			Help: "Total number of failed cart operations by type",
		}, []string{"op"}),
		opDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "cart_op_duration_seconds",
			Help:    "Duration of cart operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"op"}),
		hydrationDropped: registerCounter(registerer, prometheus.CounterOpts{
			Name: "cart_hydration_dropped_lines_total",
			Help: "Total number of stale cart lines dropped during hydration",
		}),
		saveLines: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "cart_save_lines",
			Help:    "Number of lines in the cart at save time",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOp увеличивает счётчик успешных операций данного типа.
func (m *CartMetrics) RecordOp(op string) {
	m.opsTotal.WithLabelValues(op).Inc()
}

// RecordOpFailed увеличивает счётчик неудачных операций данного типа.
func (m *CartMetrics) RecordOpFailed(op string) {
	m.opsFailed.WithLabelValues(op).Inc()
}

// RecordOpDuration записывает длительность операции.
func (m *CartMetrics) RecordOpDuration(op string, duration time.Duration) {
	m.opDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordHydrationDropped учитывает строки, отброшенные при гидрации.
func (m *CartMetrics) RecordHydrationDropped(n int) {
	if n <= 0 {
		return
	}
	m.hydrationDropped.Add(float64(n))
}

// RecordSaveSize записывает размер корзины в момент сохранения.
func (m *CartMetrics) RecordSaveSize(lines int) {
	m.saveLines.Observe(float64(lines))
}
