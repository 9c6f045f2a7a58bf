package firestore

import (
	"context"
	"log/slog"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionWorkspace = "workspace"
	collectionAbout     = "about"
	docAbout            = "default"
	batchSize           = 500
)

type Provider struct {
	client *firestore.Client
}

var _ interfaces.ConfigProvider = (*Provider)(nil)

type workspaceDoc struct {
	Name     string                    `firestore:"name"`
	Order    int                       `firestore:"order"`
	Projects []model.ProjectDefinition `firestore:"projects"`
}

type aboutDoc struct {
	Version string            `firestore:"version"`
	Links   []model.AboutLink `firestore:"links"`
}

// ToDocID converts a workspace name to a Firestore document ID
func ToDocID(name types.WorkspaceName) (string, error) {
	s := string(name)
	if s == "" || s == "." || s == ".." {
		return "", goerr.Wrap(types.ErrInvalidOption, "workspace name can not be used as document ID",
			goerr.V("name", name),
		)
	}
	if strings.Contains(s, "/") {
		return "", goerr.Wrap(types.ErrInvalidOption, "workspace name contains invalid character '/'",
			goerr.V("name", name),
		)
	}
	if strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__") {
		return "", goerr.Wrap(types.ErrInvalidOption, "workspace name is reserved by Firestore",
			goerr.V("name", name),
		)
	}
	return s, nil
}

func unavailable(err error, msg string, options ...goerr.Option) error {
	return goerr.Wrap(types.ErrUnavailable, msg, append(options, goerr.V("reason", err.Error()))...)
}

func toProjects(doc *workspaceDoc) []*model.ProjectDefinition {
	projects := make([]*model.ProjectDefinition, 0, len(doc.Projects))
	for i := range doc.Projects {
		p := doc.Projects[i]
		projects = append(projects, &p)
	}
	return projects
}

func (x *Provider) GetProjects(ctx context.Context, index types.IndexName) ([]*model.ProjectDefinition, error) {
	if index == "" {
		return x.getDefaultProjects(ctx)
	}

	docID, err := ToDocID(types.WorkspaceName(index))
	if err != nil {
		return nil, goerr.Wrap(types.ErrNotFound, "index not found", goerr.V("index", index))
	}

	snap, err := x.client.Collection(collectionWorkspace).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(types.ErrNotFound, "index not found",
				goerr.V("index", index),
			)
		}
		return nil, unavailable(err, "failed to get workspace", goerr.V("index", index))
	}

	var doc workspaceDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, unavailable(err, "failed to decode workspace", goerr.V("index", index))
	}

	return toProjects(&doc), nil
}

// getDefaultProjects returns projects of the only workspace
func (x *Provider) getDefaultProjects(ctx context.Context) ([]*model.ProjectDefinition, error) {
	iter := x.client.Collection(collectionWorkspace).Limit(2).Documents(ctx)
	defer iter.Stop()

	var docs []*workspaceDoc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, unavailable(err, "failed to iterate workspaces")
		}

		var doc workspaceDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, unavailable(err, "failed to decode workspace")
		}
		docs = append(docs, &doc)
	}

	if len(docs) != 1 {
		return nil, goerr.Wrap(types.ErrNotFound, "index is required when there is not exactly one index")
	}
	return toProjects(docs[0]), nil
}

func (x *Provider) GetWorkspaces(ctx context.Context) ([]*model.Workspace, error) {
	iter := x.client.Collection(collectionWorkspace).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	workspaces := []*model.Workspace{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, unavailable(err, "failed to iterate workspaces")
		}

		var doc workspaceDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, unavailable(err, "failed to decode workspace")
		}
		workspaces = append(workspaces, &model.Workspace{Name: doc.Name})
	}

	return workspaces, nil
}

func (x *Provider) GetAbout(ctx context.Context) (*model.About, error) {
	snap, err := x.client.Collection(collectionAbout).Doc(docAbout).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &model.About{Links: []*model.AboutLink{}}, nil
		}
		return nil, unavailable(err, "failed to get about")
	}

	var doc aboutDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, unavailable(err, "failed to decode about")
	}

	about := &model.About{
		Version: doc.Version,
		Links:   make([]*model.AboutLink, 0, len(doc.Links)),
	}
	for i := range doc.Links {
		link := doc.Links[i]
		about.Links = append(about.Links, &link)
	}
	return about, nil
}

// Import replaces stored workspaces and about with the document. Workspaces
// missing from the document are deleted.
//
// Up to batchSize writes are committed as one atomic batch. A larger import
// is split and is not atomic: if a later batch fails, earlier batches stay
// committed. Writes are ordered as upserts, then deletes, then about, so a
// partial import never loses a workspace that the document still has and
// re-running Import completes it.
func (x *Provider) Import(ctx context.Context, doc *model.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	collection := x.client.Collection(collectionWorkspace)

	type write struct {
		ref  *firestore.DocumentRef
		data any // nil means delete
	}
	var writes []write

	keep := make(map[string]struct{}, len(doc.Workspaces))
	for i, ws := range doc.Workspaces {
		docID, err := ToDocID(ws.Name)
		if err != nil {
			return err
		}
		keep[docID] = struct{}{}

		data := &workspaceDoc{
			Name:     ws.Name.String(),
			Order:    i,
			Projects: make([]model.ProjectDefinition, 0, len(ws.Projects)),
		}
		for _, p := range ws.Projects {
			data.Projects = append(data.Projects, *p)
		}
		writes = append(writes, write{ref: collection.Doc(docID), data: data})
	}

	refs, err := collection.DocumentRefs(ctx).GetAll()
	if err != nil {
		return goerr.Wrap(err, "failed to list workspaces")
	}
	for _, ref := range refs {
		if _, ok := keep[ref.ID]; !ok {
			writes = append(writes, write{ref: ref})
		}
	}

	about := &aboutDoc{Links: []model.AboutLink{}}
	if doc.About != nil {
		about.Version = doc.About.Version
		for _, link := range doc.About.Links {
			about.Links = append(about.Links, *link)
		}
	}
	writes = append(writes, write{ref: x.client.Collection(collectionAbout).Doc(docAbout), data: about})

	ranges := batchRanges(len(writes), batchSize)
	if len(ranges) > 1 {
		logging.From(ctx).Warn("config import exceeds one batch and is not atomic",
			slog.Int("writes", len(writes)),
			slog.Int("batches", len(ranges)),
		)
	}

	for _, r := range ranges {
		i, end := r[0], r[1]
		batch := x.client.Batch()
		for _, w := range writes[i:end] {
			if w.data == nil {
				batch.Delete(w.ref)
			} else {
				batch.Set(w.ref, w.data)
			}
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to import config document",
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}

	return nil
}

// batchRanges splits n writes into [start, end) ranges of at most size
func batchRanges(n, size int) [][2]int {
	var ranges [][2]int
	for i := 0; i < n; i += size {
		end := i + size
		if end > n {
			end = n
		}
		ranges = append(ranges, [2]int{i, end})
	}
	return ranges
}
