package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

// Provider keeps a config document in memory. It is also the lookup engine of
// the file and object storage providers, which Replace the document on reload.
type Provider struct {
	mu         sync.RWMutex
	workspaces []*model.WorkspaceConfig
	index      map[types.IndexName]int
	about      *model.About
}

var _ interfaces.ConfigProvider = (*Provider)(nil)

// New creates a new in-memory provider. A nil document is an empty one.
func New(doc *model.Document) (*Provider, error) {
	p := &Provider{}
	if err := p.Replace(doc); err != nil {
		return nil, err
	}
	return p, nil
}

// Replace swaps the whole document atomically. On validation failure the
// current document is kept.
func (x *Provider) Replace(doc *model.Document) error {
	if doc == nil {
		doc = &model.Document{}
	}
	if err := doc.Validate(); err != nil {
		return goerr.Wrap(err, "invalid config document")
	}

	workspaces := make([]*model.WorkspaceConfig, 0, len(doc.Workspaces))
	index := make(map[types.IndexName]int, len(doc.Workspaces))
	for i, ws := range doc.Workspaces {
		workspaces = append(workspaces, ws.Copy())
		index[types.IndexName(ws.Name)] = i
	}

	about := doc.About.Copy()
	if about == nil {
		about = &model.About{}
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.workspaces = workspaces
	x.index = index
	x.about = about

	return nil
}

func (x *Provider) GetProjects(ctx context.Context, index types.IndexName) ([]*model.ProjectDefinition, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	ws, err := x.lookup(index)
	if err != nil {
		return nil, err
	}

	projects := make([]*model.ProjectDefinition, 0, len(ws.Projects))
	for _, p := range ws.Projects {
		projects = append(projects, p.Copy())
	}
	return projects, nil
}

// lookup resolves the index to a workspace; caller must hold the lock
func (x *Provider) lookup(index types.IndexName) (*model.WorkspaceConfig, error) {
	if index == "" {
		if len(x.workspaces) == 1 {
			return x.workspaces[0], nil
		}
		return nil, goerr.Wrap(types.ErrNotFound, "index is required when there is not exactly one index",
			goerr.V("indices", len(x.workspaces)),
		)
	}

	i, ok := x.index[index]
	if !ok {
		return nil, goerr.Wrap(types.ErrNotFound, "index not found",
			goerr.V("index", index),
		)
	}
	return x.workspaces[i], nil
}

func (x *Provider) GetWorkspaces(ctx context.Context) ([]*model.Workspace, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	workspaces := make([]*model.Workspace, 0, len(x.workspaces))
	for _, ws := range x.workspaces {
		workspaces = append(workspaces, &model.Workspace{Name: ws.Name.String()})
	}
	return workspaces, nil
}

func (x *Provider) GetAbout(ctx context.Context) (*model.About, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return x.about.Copy(), nil
}
