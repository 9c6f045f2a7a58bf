package testhelper

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Document returns the fixture that TestAll expects the provider to serve
func Document() *model.Document {
	return &model.Document{
		About: &model.About{
			Version: "1.2.0",
			Links: []*model.AboutLink{
				{Name: "docs", URL: "https://example/docs", Category: "reference"},
			},
		},
		Workspaces: []*model.WorkspaceConfig{
			{
				Name: "team-a",
				Projects: []*model.ProjectDefinition{
					{Name: "core", RepositoryRegex: ".*", BranchRegex: "main", FileRegex: `.*\.py`},
					{Name: "web", RepositoryRegex: "^org/web$", BranchRegex: "", FileRegex: ""},
				},
			},
			{
				Name: "team-b",
			},
		},
	}
}

// SingleIndexDocument returns the fixture that TestSingleIndex expects
func SingleIndexDocument() *model.Document {
	return &model.Document{
		About: &model.About{
			Version: "1.2.0",
			Links: []*model.AboutLink{
				{Name: "docs", URL: "https://example/docs", Category: "reference"},
			},
		},
		Workspaces: []*model.WorkspaceConfig{
			{
				Name: "default",
				Projects: []*model.ProjectDefinition{
					{Name: "core", RepositoryRegex: ".*", BranchRegex: "main", FileRegex: `.*\.py`},
				},
			},
		},
	}
}

// TestAll runs all test cases for ConfigProvider serving Document().
// This is the main entry point for testing any ConfigProvider implementation
func TestAll(t *testing.T, p interfaces.ConfigProvider) {
	t.Run("GetWorkspaces", func(t *testing.T) {
		TestGetWorkspaces(t, p)
	})
	t.Run("GetProjects", func(t *testing.T) {
		TestGetProjects(t, p)
	})
	t.Run("GetProjectsNotFound", func(t *testing.T) {
		TestGetProjectsNotFound(t, p)
	})
	t.Run("GetAbout", func(t *testing.T) {
		TestGetAbout(t, p)
	})
	t.Run("ReturnedValuesAreCopies", func(t *testing.T) {
		TestReturnedValuesAreCopies(t, p)
	})
	t.Run("ConcurrentRead", func(t *testing.T) {
		TestConcurrentRead(t, p)
	})
}

// TestGetWorkspaces checks that workspaces come back in the order the provider holds them
func TestGetWorkspaces(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()

	workspaces, err := p.GetWorkspaces(ctx)
	gt.NoError(t, err)
	gt.V(t, workspaces).Equal([]*model.Workspace{
		{Name: "team-a"},
		{Name: "team-b"},
	})
}

func TestGetProjects(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()

	projects, err := p.GetProjects(ctx, "team-a")
	gt.NoError(t, err)
	gt.V(t, projects).Equal(Document().Workspaces[0].Projects)

	// known index without any project
	projects, err = p.GetProjects(ctx, "team-b")
	gt.NoError(t, err)
	gt.V(t, len(projects)).Equal(0)
}

func TestGetProjectsNotFound(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()

	_, err := p.GetProjects(ctx, "missing")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrNotFound))

	// empty index is ambiguous with two indices
	_, err = p.GetProjects(ctx, "")
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

// TestGetAbout checks that about is served exactly as configured on every call
func TestGetAbout(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		about, err := p.GetAbout(ctx)
		gt.NoError(t, err)
		gt.V(t, about).Equal(Document().About)
	}
}

func TestReturnedValuesAreCopies(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()

	projects, err := p.GetProjects(ctx, "team-a")
	gt.NoError(t, err)
	projects[0].Name = "mutated"

	about, err := p.GetAbout(ctx)
	gt.NoError(t, err)
	about.Version = "mutated"
	about.Links[0].Name = "mutated"

	projects, err = p.GetProjects(ctx, "team-a")
	gt.NoError(t, err)
	gt.V(t, projects[0].Name).Equal("core")

	about, err = p.GetAbout(ctx)
	gt.NoError(t, err)
	gt.V(t, about).Equal(Document().About)
}

func TestConcurrentRead(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()

	var wg sync.WaitGroup
	errCh := make(chan error, 30)
	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			if _, err := p.GetProjects(ctx, "team-a"); err != nil {
				errCh <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := p.GetWorkspaces(ctx); err != nil {
				errCh <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := p.GetAbout(ctx); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		gt.NoError(t, err)
	}
}

// TestSingleIndex checks the provider serving SingleIndexDocument(), where an
// empty index selects the only index
func TestSingleIndex(t *testing.T, p interfaces.ConfigProvider) {
	ctx := context.Background()
	expected := []*model.ProjectDefinition{
		{Name: "core", RepositoryRegex: ".*", BranchRegex: "main", FileRegex: `.*\.py`},
	}

	projects, err := p.GetProjects(ctx, "default")
	gt.NoError(t, err)
	gt.V(t, projects).Equal(expected)

	projects, err = p.GetProjects(ctx, "")
	gt.NoError(t, err)
	gt.V(t, projects).Equal(expected)

	about, err := p.GetAbout(ctx)
	gt.NoError(t, err)
	gt.V(t, about).Equal(SingleIndexDocument().About)
}

// EncodeYAML renders a fixture document as a config file
func EncodeYAML(t *testing.T, doc *model.Document) []byte {
	t.Helper()
	return gt.R1(yaml.Marshal(doc)).NoError(t)
}
