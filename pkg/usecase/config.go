package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

func (x *UseCase) GetProjects(ctx context.Context, req *model.GetProjectsRequest) (*model.GetProjectsResponse, error) {
	index := types.IndexName(req.Index)

	projects, err := callProvider(ctx, x, types.RPCGetProjects,
		func(ctx context.Context, p interfaces.ConfigProvider) ([]*model.ProjectDefinition, error) {
			return p.GetProjects(ctx, index)
		})
	if err != nil {
		return nil, err
	}

	resp := &model.GetProjectsResponse{
		Projects: make([]*model.ProjectDefinition, 0, len(projects)),
	}
	for _, p := range projects {
		if p != nil {
			resp.Projects = append(resp.Projects, p)
		}
	}

	logging.From(ctx).Debug("projects resolved",
		slog.String("index", index.String()),
		slog.Int("count", len(resp.Projects)),
	)
	return resp, nil
}

func (x *UseCase) GetWorkspaces(ctx context.Context, _ *model.GetWorkspacesRequest) (*model.GetWorkspacesResponse, error) {
	workspaces, err := callProvider(ctx, x, types.RPCGetWorkspaces,
		func(ctx context.Context, p interfaces.ConfigProvider) ([]*model.Workspace, error) {
			return p.GetWorkspaces(ctx)
		})
	if err != nil {
		return nil, err
	}

	resp := &model.GetWorkspacesResponse{
		Workspaces: make([]*model.Workspace, 0, len(workspaces)),
	}
	for _, ws := range workspaces {
		if ws != nil {
			resp.Workspaces = append(resp.Workspaces, ws)
		}
	}
	return resp, nil
}

func (x *UseCase) GetAbout(ctx context.Context, _ *model.GetAboutRequest) (*model.GetAboutResponse, error) {
	about, err := callProvider(ctx, x, types.RPCGetAbout,
		func(ctx context.Context, p interfaces.ConfigProvider) (*model.About, error) {
			return p.GetAbout(ctx)
		})
	if err != nil {
		return nil, err
	}

	resp := &model.GetAboutResponse{
		About: &model.About{Links: []*model.AboutLink{}},
	}
	if about != nil {
		resp.About.Version = about.Version
		for _, link := range about.Links {
			if link != nil {
				resp.About.Links = append(resp.About.Links, link)
			}
		}
	}
	if resp.About.Version == "" {
		resp.About.Version = x.version
	}

	return resp, nil
}
