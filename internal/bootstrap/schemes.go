package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/infrastructure/assets"
	"github.com/bnema/webwindow/internal/infrastructure/config"
	"github.com/bnema/webwindow/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Schemes holds the scheme handlers built from configuration and the
// resources they keep open.
type Schemes struct {
	Handlers map[string]port.SchemeHandler
	loaders  []*assets.Loader
	closers  []io.Closer
}

// OpenSchemes builds one background loader per configured scheme. Sources
// are opened in parallel; the first failure closes everything opened so far.
func OpenSchemes(ctx context.Context, content config.ContentConfig) (*Schemes, error) {
	resolvers := make([]assets.Resolver, len(content.Schemes))
	var (
		mu      sync.Mutex
		closers []io.Closer
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, sc := range content.Schemes {
		i, sc := i, sc // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			r, closer, err := openResolver(gctx, sc)
			if err != nil {
				return fmt.Errorf("scheme %q: %w", sc.Name, err)
			}
			resolvers[i] = r
			if closer != nil {
				mu.Lock()
				closers = append(closers, closer)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, c := range closers {
			_ = c.Close()
		}
		return nil, err
	}

	s := &Schemes{
		Handlers: make(map[string]port.SchemeHandler, len(resolvers)),
		closers:  closers,
	}
	for i, sc := range content.Schemes {
		loader := assets.NewLoader(ctx, resolvers[i], content.MaxConcurrentLoads)
		s.Handlers[sc.Name] = loader
		s.loaders = append(s.loaders, loader)
	}
	logging.FromContext(ctx).Debug().Int("schemes", len(s.Handlers)).Msg("scheme handlers ready")
	return s, nil
}

func openResolver(ctx context.Context, sc config.SchemeConfig) (assets.Resolver, io.Closer, error) {
	switch {
	case sc.Dir != "":
		info, err := os.Stat(sc.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("open dir: %w", err)
		}
		if !info.IsDir() {
			return nil, nil, fmt.Errorf("open dir: %s is not a directory", sc.Dir)
		}
		return assets.NewDirResolver(os.DirFS(sc.Dir)), nil, nil
	case sc.Archive != "":
		archive, err := assets.OpenArchive(ctx, sc.Archive)
		if err != nil {
			return nil, nil, err
		}
		return archive, archive, nil
	default:
		router := assets.NewPageRouter(ctx)
		paths := make([]string, 0, len(sc.Pages))
		for p := range sc.Pages {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			router.RegisterPage(p, assets.StaticPage("text/html; charset=utf-8", []byte(sc.Pages[p])))
		}
		return router, nil, nil
	}
}

// Close waits for in-flight loads and releases archives.
func (s *Schemes) Close() error {
	if s == nil {
		return nil
	}
	for _, l := range s.loaders {
		l.Wait()
	}
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
