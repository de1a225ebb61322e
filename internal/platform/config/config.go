package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// 日志配置信息，日志只写 stderr
	LogLevel    slog.Level
	LogFormat   string // text | json
	ServiceName string

	OtlpGrpcEndpoint string
	TracingEnabled   bool

	// 为空时不导出指标
	MetricsTextfile string
}

func Load() Config {
	cfg := Config{
		LogLevel:    slog.LevelWarn,
		LogFormat:   "text",
		ServiceName: "hashpass",

		OtlpGrpcEndpoint: "127.0.0.1:4317",
		TracingEnabled:   false,

		MetricsTextfile: "",
	}

	_ = godotenv.Load(".env")

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = ParseLevel(v)
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		switch strings.ToLower(v) {
		case "json":
			cfg.LogFormat = "json"
		default:
			cfg.LogFormat = "text"
		}
	}
	if v, ok := os.LookupEnv("SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}

	if v, ok := os.LookupEnv("TRACING_ENABLED"); ok && v != "" {
		cfg.TracingEnabled = strings.ToLower(v) == "true"
	}
	if v, ok := os.LookupEnv("OTLP_GRPC_ENDPOINT"); ok && v != "" {
		cfg.OtlpGrpcEndpoint = v
	}

	if v, ok := os.LookupEnv("METRICS_TEXTFILE"); ok && v != "" {
		cfg.MetricsTextfile = v
	}

	return cfg
}

// ParseLevel maps LOG_LEVEL values to slog levels; unknown values fall back to warn.
func ParseLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
