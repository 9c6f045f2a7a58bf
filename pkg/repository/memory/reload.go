package memory

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
	"golang.org/x/sync/singleflight"
)

// DefaultReloadTimeout bounds a single check and load of the source
const DefaultReloadTimeout = time.Minute

// Source is a document store that can tell cheaply whether its content changed
type Source interface {
	// Revision returns a value that differs whenever the stored document differs
	Revision(ctx context.Context) (string, error)
	Load(ctx context.Context) (*model.Document, error)
}

// Reloader serves the document of a Source and reloads it when the revision
// changes. Once a document has been loaded it is served until a newer valid
// one replaces it: an unreachable source or a broken revision only logs a
// warning. Reloads run outside of any lock and concurrent callers share one
// reload; a caller whose context ends first gets the current document.
type Reloader struct {
	src     Source
	mem     *Provider
	timeout time.Duration
	attrs   []any
	group   singleflight.Group

	mu       sync.RWMutex
	revision string
	loaded   bool
}

var _ interfaces.ConfigProvider = (*Reloader)(nil)

type ReloaderOption func(*Reloader)

func WithReloadTimeout(d time.Duration) ReloaderOption {
	return func(x *Reloader) {
		x.timeout = d
	}
}

// WithLogAttrs adds attributes identifying the source to reload logs
func WithLogAttrs(attrs ...slog.Attr) ReloaderOption {
	return func(x *Reloader) {
		for _, attr := range attrs {
			x.attrs = append(x.attrs, attr)
		}
	}
}

// NewReloader loads the first document. It must succeed, otherwise
// types.ErrUnavailable is returned.
func NewReloader(ctx context.Context, src Source, options ...ReloaderOption) (*Reloader, error) {
	mem, err := New(nil)
	if err != nil {
		return nil, err
	}

	x := &Reloader{
		src:     src,
		mem:     mem,
		timeout: DefaultReloadTimeout,
	}
	for _, opt := range options {
		opt(x)
	}

	if err := x.refresh(ctx); err != nil {
		return nil, err
	}
	return x, nil
}

func (x *Reloader) state() (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.revision, x.loaded
}

func (x *Reloader) refresh(ctx context.Context) error {
	// The reload is shared, so it must not be cut short by one caller
	ch := x.group.DoChan("reload", func() (any, error) {
		reloadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), x.timeout)
		defer cancel()
		return nil, x.reload(reloadCtx)
	})

	select {
	case res := <-ch:
		return res.Err

	case <-ctx.Done():
		if _, loaded := x.state(); loaded {
			logging.From(ctx).Warn("config reload is still running, serving current document", x.attrs...)
			return nil
		}
		return goerr.Wrap(types.ErrUnavailable, "config source is not loaded yet",
			goerr.V("reason", ctx.Err().Error()),
		)
	}
}

func (x *Reloader) reload(ctx context.Context) error {
	current, loaded := x.state()
	logger := logging.From(ctx).With(x.attrs...)

	revision, err := x.src.Revision(ctx)
	if err != nil {
		if loaded {
			logger.Warn("config source is not accessible, serving last loaded document", logging.ErrorAttr(err))
			return nil
		}
		return goerr.Wrap(types.ErrUnavailable, "config source is not accessible", goerr.V("reason", err.Error()))
	}
	if loaded && revision == current {
		return nil
	}

	doc, err := x.src.Load(ctx)
	if err == nil {
		err = x.mem.Replace(doc)
	}
	if err != nil {
		if !loaded {
			return goerr.Wrap(types.ErrUnavailable, "failed to load config source", goerr.V("reason", err.Error()))
		}

		logger.Warn("failed to reload config source, serving last loaded document",
			slog.String("revision", revision),
			logging.ErrorAttr(err),
		)
		// Broken content of a revision never heals, so it is not tried again.
		// A read failure may be transient and is retried on the next call.
		if !errors.Is(err, types.ErrUnavailable) {
			x.mu.Lock()
			x.revision = revision
			x.mu.Unlock()
		}
		return nil
	}

	x.mu.Lock()
	x.revision = revision
	x.loaded = true
	x.mu.Unlock()

	if loaded {
		logger.Info("config source reloaded", slog.String("revision", revision))
	}
	return nil
}

func (x *Reloader) GetProjects(ctx context.Context, index types.IndexName) ([]*model.ProjectDefinition, error) {
	if err := x.refresh(ctx); err != nil {
		return nil, err
	}
	return x.mem.GetProjects(ctx, index)
}

func (x *Reloader) GetWorkspaces(ctx context.Context) ([]*model.Workspace, error) {
	if err := x.refresh(ctx); err != nil {
		return nil, err
	}
	return x.mem.GetWorkspaces(ctx)
}

func (x *Reloader) GetAbout(ctx context.Context) (*model.About, error) {
	if err := x.refresh(ctx); err != nil {
		return nil, err
	}
	return x.mem.GetAbout(ctx)
}
