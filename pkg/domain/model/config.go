package model

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

// ProjectDefinition is a named rule set. The regex fields are carried verbatim;
// matching them against a repository/branch/file triple happens elsewhere.
type ProjectDefinition struct {
	Name            string `json:"name" yaml:"name" firestore:"name"`
	RepositoryRegex string `json:"repository_regex" yaml:"repository_regex" firestore:"repository_regex"`
	BranchRegex     string `json:"branch_regex" yaml:"branch_regex" firestore:"branch_regex"`
	FileRegex       string `json:"file_regex" yaml:"file_regex" firestore:"file_regex"`
}

func (x *ProjectDefinition) Copy() *ProjectDefinition {
	if x == nil {
		return nil
	}
	cpy := *x
	return &cpy
}

type Workspace struct {
	Name string `json:"name"`
}

type About struct {
	Version string       `json:"version" yaml:"version" firestore:"version"`
	Links   []*AboutLink `json:"links" yaml:"links" firestore:"links"`
}

type AboutLink struct {
	Name     string `json:"name" yaml:"name" firestore:"name"`
	URL      string `json:"url" yaml:"url" firestore:"url"`
	Category string `json:"category" yaml:"category" firestore:"category"`
}

// Copy returns a deep copy so that callers can not modify the provider's data
func (x *About) Copy() *About {
	if x == nil {
		return nil
	}
	cpy := &About{
		Version: x.Version,
		Links:   make([]*AboutLink, 0, len(x.Links)),
	}
	for _, link := range x.Links {
		if link == nil {
			continue
		}
		l := *link
		cpy.Links = append(cpy.Links, &l)
	}
	return cpy
}

type GetProjectsRequest struct {
	Index string `json:"index"`
}

// UnmarshalJSON matches the "index" key exactly, the way the binary codec
// matches field numbers. Other keys are ignored and null leaves the field unset.
func (x *GetProjectsRequest) UnmarshalJSON(data []byte) error {
	if !utf8.Valid(data) {
		return goerr.Wrap(types.ErrMalformedRequest, "request is not valid UTF-8")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return goerr.Wrap(types.ErrMalformedRequest, "failed to decode GetProjectsRequest", goerr.V("reason", err.Error()))
	}

	*x = GetProjectsRequest{}
	raw, ok := fields["index"]
	if !ok {
		return nil
	}
	var index *string
	if err := json.Unmarshal(raw, &index); err != nil {
		return goerr.Wrap(types.ErrMalformedRequest, "index must be a string", goerr.V("reason", err.Error()))
	}
	if index != nil {
		x.Index = *index
	}
	return nil
}

type GetProjectsResponse struct {
	Projects []*ProjectDefinition `json:"projects"`
}

// GetWorkspacesRequest has no parameters. The original schema carried an unused
// "void" string as field 1; it is skipped on decode like any unknown field.
type GetWorkspacesRequest struct{}

type GetWorkspacesResponse struct {
	Workspaces []*Workspace `json:"workspaces"`
}

// GetAboutRequest has no parameters, see GetWorkspacesRequest.
type GetAboutRequest struct{}

type GetAboutResponse struct {
	About *About `json:"about"`
}
