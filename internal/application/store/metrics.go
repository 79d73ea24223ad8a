package store

import "github.com/prometheus/client_golang/prometheus"

var (
	remoteReadFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vendas_remote_read_failures_total", Help: "Lecturas remotas fallidas absorbidas por el store"},
		[]string{"collection"},
	)
	remoteWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vendas_remote_write_failures_total", Help: "Escrituras remotas fallidas devueltas al llamador"},
		[]string{"collection", "op"},
	)
	loadAllDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vendas_store_load_all_duration_seconds",
			Help:    "Duración de la carga completa de colecciones",
			Buckets: prometheus.DefBuckets,
		},
	)
	staleTaskResponses = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "vendas_stale_task_responses_total", Help: "Respuestas de tareas descartadas por fecha obsoleta"},
	)
)

func init() {
	prometheus.MustRegister(remoteReadFailures, remoteWriteFailures, loadAllDuration, staleTaskResponses)
}
