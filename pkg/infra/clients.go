package infra

import (
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
)

type Clients struct {
	configProvider interfaces.ConfigProvider
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) ConfigProvider() interfaces.ConfigProvider {
	return x.configProvider
}

func WithConfigProvider(provider interfaces.ConfigProvider) Option {
	return func(x *Clients) {
		x.configProvider = provider
	}
}
