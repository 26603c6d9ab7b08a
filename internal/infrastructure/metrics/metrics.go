package metrics

import "github.com/prometheus/client_golang/prometheus"

// GatewayMetrics exposes counters/histograms for booking flows and backend calls.
type GatewayMetrics struct {
	bookingTotal    *prometheus.CounterVec
	scheduleLoads   *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "gateway",
			Name:      "booking_submissions_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		scheduleLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "gateway",
			Name:      "schedule_loads_total",
			Help:      "Schedule store loads by outcome (applied, stale, failed)",
		}, []string{"outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "gateway",
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the clinic backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingTotal, m.scheduleLoads, m.backendDuration)
	return m
}

func (m *GatewayMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingTotal.WithLabelValues(outcome).Inc()
}

func (m *GatewayMetrics) ObserveScheduleLoad(outcome string) {
	if m == nil {
		return
	}
	m.scheduleLoads.WithLabelValues(outcome).Inc()
}

func (m *GatewayMetrics) ObserveBackendRequest(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.backendDuration.WithLabelValues(operation, status).Observe(seconds)
}

// BookingCounter returns the counter of one booking outcome.
func (m *GatewayMetrics) BookingCounter(outcome string) prometheus.Counter {
	return m.bookingTotal.WithLabelValues(outcome)
}
