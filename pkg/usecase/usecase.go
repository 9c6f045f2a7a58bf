package usecase

import (
	"time"

	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/infra"
)

const DefaultProviderTimeout = 10 * time.Second

type UseCase struct {
	clients         *infra.Clients
	providerTimeout time.Duration
	version         string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithProviderTimeout bounds every provider call. Zero or negative disables it.
func WithProviderTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.providerTimeout = d
	}
}

// WithVersion sets the version reported by GetAbout when the provider has none
func WithVersion(version string) Option {
	return func(x *UseCase) {
		x.version = version
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		providerTimeout: DefaultProviderTimeout,
		version:         types.AppVersion,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
