package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// once 用来保证指标只注册一次。
	// Prometheus 的 registry 不允许重复注册同名指标，否则会直接 panic。
	once sync.Once

	// Registry 只包含本工具的指标，不带 go_* / process_* 默认采集器，
	// 写入 node_exporter textfile 时不会和 node_exporter 自己的指标冲突。
	Registry = prometheus.NewRegistry()

	// HashTotal：累计哈希次数（Counter）。
	//
	// labels：
	// - result：ok / error
	HashTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hashpass_hash_total",
			Help: "bcrypt 哈希的总次数",
		},
		[]string{"result"},
	)

	// HashDurationSeconds：单次 bcrypt 耗时（Histogram）。
	// cost=12 时通常在 100ms~500ms 之间，所以桶从 50ms 开始。
	HashDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hashpass_hash_duration_seconds",
			Help:    "bcrypt hashing latency distributions.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)
)

// Init 注册指标：只允许注册一次（否则 panic: duplicate metrics collector registration）
func Init() {
	once.Do(func() {
		Registry.MustRegister(
			HashTotal,
			HashDurationSeconds,
		)
	})
}

// WriteTextfile writes the registry in text exposition format to path.
// The write goes through a temp file and rename, as node_exporter's textfile collector expects.
func WriteTextfile(path string) error {
	Init()
	return prometheus.WriteToTextfile(path, Registry)
}
