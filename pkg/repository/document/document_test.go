package document_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/repository/document"
)

const sampleConfig = `
about:
  links:
    - name: docs
      url: https://example/docs
      category: reference
workspaces:
  - name: team-a
    crawlers:
      - name: github-org
        provider:
          github_organization: org
    projects:
      - name: core
        repository_regex: ".*"
        branch_regex: main
        file_regex: '.*\.py'
      - name: web
        repository_regex: "^org/web$"
  - name: team-b
`

func TestParse(t *testing.T) {
	t.Run("parse document with unknown keys", func(t *testing.T) {
		doc, err := document.Parse([]byte(sampleConfig))
		gt.NoError(t, err)

		gt.V(t, doc.About).Equal(&model.About{
			Links: []*model.AboutLink{
				{Name: "docs", URL: "https://example/docs", Category: "reference"},
			},
		})
		gt.V(t, len(doc.Workspaces)).Equal(2)
		gt.V(t, doc.Workspaces[0].Name).Equal(types.WorkspaceName("team-a"))
		gt.V(t, doc.Workspaces[0].Projects).Equal([]*model.ProjectDefinition{
			{Name: "core", RepositoryRegex: ".*", BranchRegex: "main", FileRegex: `.*\.py`},
			{Name: "web", RepositoryRegex: "^org/web$"},
		})
		gt.V(t, doc.Workspaces[1].Name).Equal(types.WorkspaceName("team-b"))
		gt.V(t, len(doc.Workspaces[1].Projects)).Equal(0)
	})

	t.Run("parse JSON document", func(t *testing.T) {
		doc, err := document.Parse([]byte(`{"about":{"version":"1.2.0"},"workspaces":[{"name":"default","projects":[{"name":"core"}]}]}`))
		gt.NoError(t, err)
		gt.V(t, doc.About.Version).Equal("1.2.0")
		gt.V(t, doc.Workspaces[0].Projects[0].Name).Equal("core")
	})

	t.Run("empty document fails", func(t *testing.T) {
		_, err := document.Parse([]byte(""))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("broken YAML fails", func(t *testing.T) {
		_, err := document.Parse([]byte("workspaces: ["))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("workspace without name fails schema", func(t *testing.T) {
		_, err := document.Parse([]byte("workspaces:\n  - projects: []\n"))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.S(t, err.Error()).Contains("does not match schema")
	})

	t.Run("non string regex fails schema", func(t *testing.T) {
		_, err := document.Parse([]byte("workspaces:\n  - name: a\n    projects:\n      - name: p\n        branch_regex: 1\n"))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("link without url fails schema", func(t *testing.T) {
		_, err := document.Parse([]byte("about:\n  links:\n    - name: docs\n"))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("duplicated workspace fails", func(t *testing.T) {
		_, err := document.Parse([]byte("workspaces:\n  - name: a\n  - name: a\n"))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.S(t, err.Error()).Contains("duplicated workspace name")
	})
}
