// Package connectobs instruments connect-go RPCs with observations. Each
// unary call becomes one observation named "rpc" with the procedure as its
// contextual name, made current for the duration of the call so nested
// instrumentation can attach to it.
package connectobs

import (
	"context"

	"connectrpc.com/connect"

	"github.com/tailored-agentic-units/observation/observation"
)

// Interceptor returns a unary interceptor that wraps every call in an
// observation from reg. With the NOOP registry or a rejecting predicate the
// call proceeds with the shared no-op observation and no further cost.
func Interceptor(reg *observation.Registry) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			spec := req.Spec()
			kind := "server"
			if spec.IsClient {
				kind = "client"
			}

			obs := observation.New("rpc", reg).
				ContextualName(spec.Procedure).
				Tag("rpc.procedure", spec.Procedure).
				Tag("rpc.kind", kind)
			obs.Start()

			scope := obs.OpenScope()
			defer scope.Close()

			resp, err := next(ctx, req)
			if err != nil {
				obs.Error(err)
			}
			obs.Stop()
			return resp, err
		}
	}
}
