// Package metrics defines the Prometheus instruments for the block daemon.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GRPCServerHandlingSeconds is a histogram for gRPC server request latencies
	GRPCServerHandlingSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_server_handling_seconds",
			Help:    "Histogram of response latency (seconds) of gRPC that had been application-level handled by the server.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "code"},
	)

	// StepLatencySeconds is a histogram for per-tick inference latency
	StepLatencySeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "block_step_latency_seconds",
			Help:    "Histogram of per-step inference latency (seconds) excluding transport overhead.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// StepsTotal counts Step invocations by result
	StepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "block_steps_total",
			Help: "Total number of block Step invocations, by result.",
		},
		[]string{"result"},
	)

	// InstancesActive is a gauge tracking live block instances
	InstancesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "block_instances_active",
			Help: "Number of block instances currently held by the daemon.",
		},
	)

	// ModelsLoaded is a gauge tracking instances whose model is loaded
	ModelsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "block_models_loaded",
			Help: "Number of block instances with a successfully loaded model.",
		},
	)

	// HealthStatus is a gauge indicating the health status of the service
	HealthStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "health_status",
			Help: "Health status of the service (1 = healthy, 0 = unhealthy).",
		},
	)
)

// RecordGRPCLatency records the latency of a gRPC method call
func RecordGRPCLatency(method, code string, seconds float64) {
	GRPCServerHandlingSeconds.WithLabelValues(method, code).Observe(seconds)
}

// RecordStepLatency records the latency of one Step invocation
func RecordStepLatency(seconds float64) {
	StepLatencySeconds.Observe(seconds)
}

// RecordStep counts one Step invocation with the given result ("ok" or
// "error")
func RecordStep(result string) {
	StepsTotal.WithLabelValues(result).Inc()
}

// InstanceCreated increments the active instance gauge
func InstanceCreated() {
	InstancesActive.Inc()
}

// InstanceTerminated decrements the active instance gauge
func InstanceTerminated() {
	InstancesActive.Dec()
}

// ModelLoaded increments the loaded-model gauge
func ModelLoaded() {
	ModelsLoaded.Inc()
}

// ModelUnloaded decrements the loaded-model gauge
func ModelUnloaded() {
	ModelsLoaded.Dec()
}

// SetHealthy sets the health status to healthy
func SetHealthy() {
	HealthStatus.Set(1)
}

// SetUnhealthy sets the health status to unhealthy
func SetUnhealthy() {
	HealthStatus.Set(0)
}
