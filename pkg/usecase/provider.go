package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

func (x *UseCase) provider(rpc types.RPC) (interfaces.ConfigProvider, error) {
	p := x.clients.ConfigProvider()
	if p == nil {
		return nil, goerr.Wrap(types.ErrUnavailable, "config provider is not configured",
			goerr.V(logging.KeyRPC, rpc),
		)
	}
	return p, nil
}

// callProvider runs fn under the provider timeout and maps its error to the
// error taxonomy of the config service. No retry is performed.
func callProvider[T any](ctx context.Context, x *UseCase, rpc types.RPC, fn func(ctx context.Context, p interfaces.ConfigProvider) (T, error)) (T, error) {
	var zero T

	p, err := x.provider(rpc)
	if err != nil {
		return zero, err
	}

	if x.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.providerTimeout)
		defer cancel()
	}

	resp, err := fn(ctx, p)
	if err != nil {
		return zero, classify(rpc, err)
	}
	return resp, nil
}

func classify(rpc types.RPC, err error) error {
	switch {
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrUnavailable):
		return goerr.Wrap(err, "config provider failed", goerr.V(logging.KeyRPC, rpc))

	case errors.Is(err, context.DeadlineExceeded):
		return goerr.Wrap(types.ErrUnavailable, "config provider timed out",
			goerr.V(logging.KeyRPC, rpc),
			goerr.V("reason", err.Error()),
		)

	default:
		return goerr.Wrap(types.ErrUnavailable, "config provider failed",
			goerr.V(logging.KeyRPC, rpc),
			goerr.V("reason", err.Error()),
		)
	}
}
