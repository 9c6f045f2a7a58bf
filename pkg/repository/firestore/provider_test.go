package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/repository/firestore"
	"github.com/m-mizutani/monoconf/pkg/repository/testhelper"
	"github.com/m-mizutani/monoconf/pkg/utils/safe"
	"github.com/m-mizutani/monoconf/pkg/utils/testutil"
)

func TestFirestoreProvider(t *testing.T) {
	projectID, databaseID := testutil.FirestoreTarget(t)

	ctx := context.Background()
	p, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)
	defer safe.Close(ctx, p)

	t.Run("stale workspaces are removed on import", func(t *testing.T) {
		gt.NoError(t, p.Import(ctx, &model.Document{
			Workspaces: []*model.WorkspaceConfig{{Name: "stale"}},
		}))
	})

	gt.NoError(t, p.Import(ctx, testhelper.Document()))
	testhelper.TestAll(t, p)
}

func TestToDocID(t *testing.T) {
	// Valid cases
	id, err := firestore.ToDocID("team-a")
	gt.NoError(t, err)
	gt.V(t, id).Equal("team-a")

	id, err = firestore.ToDocID("チーム")
	gt.NoError(t, err)
	gt.V(t, id).Equal("チーム")

	// Invalid cases
	for _, name := range []types.WorkspaceName{"", ".", "..", "team/a", "__reserved__"} {
		_, err = firestore.ToDocID(name)
		gt.Error(t, err)
	}
}

func TestBatchRanges(t *testing.T) {
	t.Run("import within one batch is a single commit", func(t *testing.T) {
		gt.V(t, firestore.BatchRangesForTest(1, 500)).Equal([][2]int{{0, 1}})
		gt.V(t, firestore.BatchRangesForTest(500, 500)).Equal([][2]int{{0, 500}})
	})

	t.Run("larger import is split", func(t *testing.T) {
		gt.V(t, firestore.BatchRangesForTest(1201, 500)).Equal([][2]int{{0, 500}, {500, 1000}, {1000, 1201}})
	})

	t.Run("no writes", func(t *testing.T) {
		gt.A(t, firestore.BatchRangesForTest(0, 500)).Length(0)
	})
}
