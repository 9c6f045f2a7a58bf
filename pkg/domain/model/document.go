package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

// Document is the source-of-truth layout shared by file, object storage and
// Firestore providers. Keys unknown to this service (crawlers, idents, ...) are
// ignored when a document is parsed.
type Document struct {
	About      *About             `yaml:"about" json:"about"`
	Workspaces []*WorkspaceConfig `yaml:"workspaces" json:"workspaces"`
}

// WorkspaceConfig is a workspace together with the projects of its index
type WorkspaceConfig struct {
	Name     types.WorkspaceName  `yaml:"name" json:"name" firestore:"name"`
	Projects []*ProjectDefinition `yaml:"projects" json:"projects" firestore:"projects"`
}

func (x *WorkspaceConfig) Copy() *WorkspaceConfig {
	if x == nil {
		return nil
	}
	cpy := &WorkspaceConfig{
		Name:     x.Name,
		Projects: make([]*ProjectDefinition, 0, len(x.Projects)),
	}
	for _, p := range x.Projects {
		if p != nil {
			cpy.Projects = append(cpy.Projects, p.Copy())
		}
	}
	return cpy
}

// Validate checks the uniqueness invariants that the message shape itself can
// not express: workspace names are unique in a document and project names are
// unique in a workspace.
func (x *Document) Validate() error {
	seen := make(map[types.WorkspaceName]struct{}, len(x.Workspaces))
	for i, ws := range x.Workspaces {
		if ws == nil {
			return goerr.Wrap(types.ErrValidationFailed, "workspace is null", goerr.V("index", i))
		}
		if ws.Name == "" {
			return goerr.Wrap(types.ErrValidationFailed, "workspace name is empty", goerr.V("index", i))
		}
		if _, ok := seen[ws.Name]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicated workspace name", goerr.V("workspace", ws.Name))
		}
		seen[ws.Name] = struct{}{}

		projects := make(map[string]struct{}, len(ws.Projects))
		for j, p := range ws.Projects {
			if p == nil || p.Name == "" {
				return goerr.Wrap(types.ErrValidationFailed, "project name is empty",
					goerr.V("workspace", ws.Name),
					goerr.V("index", j),
				)
			}
			if _, ok := projects[p.Name]; ok {
				return goerr.Wrap(types.ErrValidationFailed, "duplicated project name",
					goerr.V("workspace", ws.Name),
					goerr.V("project", p.Name),
				)
			}
			projects[p.Name] = struct{}{}
		}
	}

	if x.About != nil {
		for i, link := range x.About.Links {
			if link == nil {
				return goerr.Wrap(types.ErrValidationFailed, "about link is null", goerr.V("index", i))
			}
		}
	}

	return nil
}
