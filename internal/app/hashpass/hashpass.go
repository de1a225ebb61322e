package hashpass

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"hashpass.local/internal/platform/metrics"
)

// Cost 固定为 12，不接受配置。
const Cost = 12

const tracerName = "hashpass.local/internal/app/hashpass"

// Hasher 负责生成 bcrypt 哈希，并附带 trace / metrics。
type Hasher struct {
	tracer trace.Tracer
}

// NewHasher uses the global tracer provider when tp is nil.
func NewHasher(tp trace.TracerProvider) *Hasher {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Hasher{tracer: tp.Tracer(tracerName)}
}

// Hash returns the $2b$ encoded bcrypt hash of password with a fresh salt.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	_, span := h.tracer.Start(ctx, "hashpass.Hash")
	defer span.End()
	// 只记录 cost，不记录密码或其长度
	span.SetAttributes(attribute.Int("bcrypt.cost", Cost))

	start := time.Now()
	raw, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	metrics.HashDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.HashTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "bcrypt failed")
		return "", fmt.Errorf("hash password: %w", err)
	}
	metrics.HashTotal.WithLabelValues("ok").Inc()
	return string(retag(raw)), nil
}

// retag rewrites the $2a$ tag emitted by x/crypto to $2b$.
// x/crypto refuses passwords over 72 bytes, so 2a and 2b compute the same digest here.
func retag(raw []byte) []byte {
	if len(raw) > 3 && raw[0] == '$' && raw[1] == '2' && raw[2] == 'a' && raw[3] == '$' {
		raw[2] = 'b'
	}
	return raw
}
