package memory_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/repository/memory"
	"github.com/m-mizutani/monoconf/pkg/repository/testhelper"
)

func TestMemoryProvider(t *testing.T) {
	p := gt.R1(memory.New(testhelper.Document())).NoError(t)
	testhelper.TestAll(t, p)
}

func TestSingleIndexProvider(t *testing.T) {
	p := gt.R1(memory.New(testhelper.SingleIndexDocument())).NoError(t)
	testhelper.TestSingleIndex(t, p)
}

func TestReplace(t *testing.T) {
	p := gt.R1(memory.New(nil)).NoError(t)

	t.Run("invalid document keeps the current one", func(t *testing.T) {
		gt.NoError(t, p.Replace(testhelper.SingleIndexDocument()))

		err := p.Replace(&model.Document{
			Workspaces: []*model.WorkspaceConfig{{Name: "dup"}, {Name: "dup"}},
		})
		gt.Error(t, err)

		testhelper.TestSingleIndex(t, p)
	})

	t.Run("caller can not modify the stored document", func(t *testing.T) {
		doc := testhelper.SingleIndexDocument()
		gt.NoError(t, p.Replace(doc))

		doc.Workspaces[0].Projects[0].Name = "changed"
		doc.About.Links[0].URL = "changed"

		testhelper.TestSingleIndex(t, p)
	})
}
