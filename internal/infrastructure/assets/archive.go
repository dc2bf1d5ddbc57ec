package assets

import (
	"bytes"
	"compress/zlib"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

const (
	modeTypeMask = 0o170000
	modeDir      = 0o040000
	modeRegular  = 0o100000
)

const createSqlar = `CREATE TABLE IF NOT EXISTS sqlar(
	name TEXT PRIMARY KEY,
	mode INT,
	mtime INT,
	sz INT,
	data BLOB
)`

// Archive serves files from a SQLite Archive (the sqlar table written by
// `sqlite3 -A`). Entries whose stored size differs from their blob length
// are zlib-compressed.
type Archive struct {
	db   *sql.DB
	path string
}

var _ Resolver = (*Archive)(nil)

// OpenArchive opens a read-only archive.
func OpenArchive(ctx context.Context, dbPath string) (*Archive, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("archive path cannot be empty")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+filepath.ToSlash(dbPath)+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to archive: %w", err)
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlar'`).Scan(&n); err != nil || n == 0 {
		_ = db.Close()
		if err == nil {
			err = errors.New("no sqlar table")
		}
		return nil, fmt.Errorf("open archive %s: %w", dbPath, err)
	}

	logging.FromContext(ctx).Debug().Str("path", dbPath).Msg("archive opened")
	return &Archive{db: db, path: dbPath}, nil
}

// configurePool sets connection pool parameters for a read-only archive.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(DefaultMaxConcurrent)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}

// Path returns the archive file path.
func (a *Archive) Path() string { return a.path }

// Close closes the archive.
func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Resolve implements Resolver.
func (a *Archive) Resolve(ctx context.Context, req entity.ResourceRequest) (*entity.ResourceResponse, error) {
	name := cleanName(req.Host, req.Path)
	if name == "." {
		name = IndexFile
	}

	data, mode, found, err := a.read(ctx, name)
	if err != nil {
		return nil, err
	}
	if found && mode&modeTypeMask == modeDir {
		name = path.Join(name, IndexFile)
		data, _, found, err = a.read(ctx, name)
		if err != nil {
			return nil, err
		}
	}
	if !found {
		return notFound(), nil
	}
	return &entity.ResourceResponse{
		StatusCode:  http.StatusOK,
		ContentType: ContentTypeFor(name),
		Data:        data,
	}, nil
}

func (a *Archive) read(ctx context.Context, name string) ([]byte, int64, bool, error) {
	var (
		mode int64
		sz   int64
		blob []byte
	)
	err := a.db.QueryRowContext(ctx, `SELECT mode, sz, data FROM sqlar WHERE name = ?`, name).Scan(&mode, &sz, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("read %s from archive: %w", name, err)
	}
	if mode&modeTypeMask == modeDir {
		return nil, mode, true, nil
	}
	if int64(len(blob)) == sz {
		return blob, mode, true, nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, 0, false, fmt.Errorf("inflate %s: %w", name, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(io.LimitReader(zr, sz))
	if err != nil {
		return nil, 0, false, fmt.Errorf("inflate %s: %w", name, err)
	}
	return out, mode, true, nil
}

// Pack writes every regular file and directory of fsys into the archive at
// dbPath, creating it if needed. Files are stored compressed when that
// makes them smaller.
func Pack(ctx context.Context, dbPath string, fsys fs.FS) (int, error) {
	const dbDirPerm = 0o750
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return 0, fmt.Errorf("failed to create archive directory: %w", err)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open archive: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createSqlar); err != nil {
		return 0, fmt.Errorf("create sqlar table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `REPLACE INTO sqlar(name, mode, mtime, sz, data) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		mtime := info.ModTime().Unix()
		if d.IsDir() {
			_, err = stmt.ExecContext(ctx, name, modeDir|int64(info.Mode().Perm()), mtime, 0, nil)
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		stored, err := deflate(raw)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, name, modeRegular|int64(info.Mode().Perm()), mtime, len(raw), stored); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("pack %s: %w", dbPath, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	logging.FromContext(ctx).Info().Str("path", dbPath).Int("files", count).Msg("archive packed")
	return count, nil
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	if buf.Len() >= len(raw) {
		return raw, nil
	}
	return buf.Bytes(), nil
}
