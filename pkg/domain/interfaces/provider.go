package interfaces

import (
	"context"

	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

//go:generate moq -out ../mock/provider.go -pkg mock . ConfigProvider

// ConfigProvider is the authoritative source of projects, workspaces and about
// metadata. Implementations must be safe for concurrent reads and must return
// values that the caller is free to modify.
type ConfigProvider interface {
	// GetProjects returns projects of the index. An empty index selects the
	// only index when the provider has exactly one. It returns an error
	// wrapping types.ErrNotFound for an unknown index and types.ErrUnavailable
	// when the source can not be read.
	GetProjects(ctx context.Context, index types.IndexName) ([]*model.ProjectDefinition, error)

	// GetWorkspaces returns all workspaces in provider order
	GetWorkspaces(ctx context.Context) ([]*model.Workspace, error)

	GetAbout(ctx context.Context) (*model.About, error)
}
