package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"hashpass.local/internal/app/hashpass"
	"hashpass.local/internal/platform/config"
	"hashpass.local/internal/platform/logging"
	"hashpass.local/internal/platform/metrics"
	"hashpass.local/internal/platform/trace"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code.
// stdout 只输出哈希或 usage，其它信息一律走 stderr。
func execute(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	slog.SetDefault(logging.New(stderr, cfg))

	slog.Debug("hashpass starting", "version", buildSummary())

	metrics.Init()
	if cfg.MetricsTextfile != "" {
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
				slog.Error("write metrics textfile failed", "path", cfg.MetricsTextfile, "err", err)
			}
		}()
	}

	if cfg.TracingEnabled {
		shutdown := trace.InitTrace(cfg.OtlpGrpcEndpoint, cfg.ServiceName, version)
		if shutdown == nil {
			slog.Error("Trace init failed")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					slog.Error("trace shutdown failed", "err", err)
				}
			}()
		}
	} else {
		slog.Debug("Tracing disabled by config", "TRACING_ENABLED", false)
	}

	cmd := newRootCmd(hashpass.NewHasher(nil))
	cmd.SetArgs(positional(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	if errors.Is(err, errMissingPassword) {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}

	// 错误只输出一行，不打印 usage 和堆栈
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	fmt.Fprintln(stderr, msg)
	return 1
}
