package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/shoppinglist/internal/metrics"
)

// LoggingInterceptor records each shopping list RPC under the identity
// resolved by IdentityInterceptor, so it must be installed after it.
// Rejected commands (permission, archive, validation) log at warn with their
// Connect code; anything without a code is an unexpected failure and logs
// at error. Every call is counted in metrics.RPCTotal by procedure and code.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			user := GetUser(ctx)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					metrics.RPCTotal.WithLabelValues(procedure, connectErr.Code().String()).Inc()
					slog.Warn("RPC error",
						"procedure", procedure,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"user", user,
						"duration_ms", duration,
					)
				} else {
					metrics.RPCTotal.WithLabelValues(procedure, connect.CodeUnknown.String()).Inc()
					slog.Error("RPC error",
						"procedure", procedure,
						"error", err,
						"user", user,
						"duration_ms", duration,
					)
				}
			} else {
				metrics.RPCTotal.WithLabelValues(procedure, "ok").Inc()
				slog.Info("RPC ok",
					"procedure", procedure,
					"user", user,
					"duration_ms", duration,
				)
			}

			return resp, err
		}
	}
}
