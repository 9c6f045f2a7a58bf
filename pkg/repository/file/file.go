package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/repository/document"
	"github.com/m-mizutani/monoconf/pkg/repository/memory"
)

// Provider serves a config document from a local file. The file is re-read
// when its modification time or size changes.
type Provider struct {
	*memory.Reloader
}

var _ interfaces.ConfigProvider = (*Provider)(nil)

type source struct {
	path string
}

func (x *source) Revision(ctx context.Context) (string, error) {
	st, err := os.Stat(x.path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to stat config file", goerr.V("path", x.path))
	}
	return fmt.Sprintf("%d-%d", st.ModTime().UnixNano(), st.Size()), nil
}

func (x *source) Load(ctx context.Context) (*model.Document, error) {
	return Load(x.path)
}

// New loads the document at path. The first load must succeed.
func New(path string, options ...memory.ReloaderOption) (*Provider, error) {
	src := &source{path: filepath.Clean(path)}
	options = append([]memory.ReloaderOption{
		memory.WithLogAttrs(slog.String("path", src.path)),
	}, options...)

	reloader, err := memory.NewReloader(context.Background(), src, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config file", goerr.V("path", src.path))
	}
	return &Provider{Reloader: reloader}, nil
}

// Load reads and validates the document at path without creating a provider
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid config file", goerr.V("path", path))
	}
	return doc, nil
}
