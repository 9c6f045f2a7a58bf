package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/monoconf/pkg/domain/model"
)

type UseCase interface {
	GetProjects(ctx context.Context, req *model.GetProjectsRequest) (*model.GetProjectsResponse, error)
	GetWorkspaces(ctx context.Context, req *model.GetWorkspacesRequest) (*model.GetWorkspacesResponse, error)
	GetAbout(ctx context.Context, req *model.GetAboutRequest) (*model.GetAboutResponse, error)
}
