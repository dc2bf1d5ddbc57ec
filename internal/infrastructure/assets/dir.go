package assets

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// IndexFile is served for directory paths.
const IndexFile = "index.html"

// DirResolver serves files from a file system. Bodies are streamed.
type DirResolver struct {
	fsys fs.FS
}

var _ Resolver = (*DirResolver)(nil)

// NewDirResolver serves fsys.
func NewDirResolver(fsys fs.FS) *DirResolver {
	return &DirResolver{fsys: fsys}
}

// Resolve implements Resolver.
func (d *DirResolver) Resolve(ctx context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := cleanName(req.Host, req.Path)

	info, err := fs.Stat(d.fsys, name)
	if err == nil && info.IsDir() {
		name = path.Join(name, IndexFile)
	}

	f, err := d.fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return notFound(), nil
	}
	if err != nil {
		return nil, err
	}
	return &entity.ResourceResponse{
		StatusCode:  http.StatusOK,
		ContentType: ContentTypeFor(name),
		Body:        f,
	}, nil
}

// cleanName maps a scheme URL onto an fs.FS name. Hosts act as the first
// path segment except for the conventional "localhost" and "app" hosts, so
// both app://index.html and app://localhost/index.html work.
func cleanName(host, p string) string {
	if host != "" && host != "localhost" && host != "app" {
		p = host + "/" + strings.TrimPrefix(p, "/")
	}
	name := path.Clean("/" + p)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

// ContentTypeFor guesses the content type from the file extension.
func ContentTypeFor(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
