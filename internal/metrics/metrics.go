package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pages"

var (
	DocumentsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "content", Name: "documents_loaded_total", Help: "Number of documents accepted by validation."},
		[]string{"collection"},
	)
	DocumentsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "content", Name: "documents_rejected_total", Help: "Number of documents rejected by validation."},
		[]string{"collection", "reason"},
	)
	Entries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: namespace, Subsystem: "content", Name: "entries", Help: "Entries in the current snapshot."},
		[]string{"collection"},
	)
	Reloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "content", Name: "reloads_total", Help: "Content reloads by result."},
		[]string{"result"},
	)
	MissingTranslations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "locale", Name: "missing_translations_total", Help: "Translation lookups that found no string."},
		[]string{"language"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsLoaded)
	reg.MustRegister(DocumentsRejected)
	reg.MustRegister(Entries)
	reg.MustRegister(Reloads)
	reg.MustRegister(MissingTranslations)
}
