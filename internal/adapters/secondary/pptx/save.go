package pptx

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// Extension is appended to output paths that lack it
const Extension = ".pptx"

// Save writes the deck to path, appending ".pptx" when path has another
// extension, and returns the path written. Parent directories are created.
//
// The deck is serialized to a hidden temporary file next to the target
// and renamed into place, so a failed save leaves no partial output and
// any previous file at path untouched.
func (b *Builder) Save(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &entities.ValidationError{Index: -1, Field: "output", Reason: "output path cannot be empty"}
	}

	if !strings.EqualFold(filepath.Ext(path), Extension) {
		path += Extension
	}

	dir := filepath.Dir(path)
	if err := b.fs.MkdirAll(dir, 0o750); err != nil {
		return "", entities.NewIOError("create directory", dir, err)
	}

	if info, err := b.fs.Stat(path); err == nil && info.IsDir() {
		return "", entities.NewIOError("save deck", path, errors.New("is a directory"))
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := b.fs.CreateExclusive(tmpPath)
	if err != nil {
		return "", entities.NewIOError("create temporary file", tmpPath, err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = b.fs.Remove(tmpPath)
		}
	}()

	if err := b.pres.Save(f); err != nil {
		_ = f.Close()
		return "", entities.NewIOError("write deck", path, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return "", entities.NewIOError("sync deck", path, err)
	}

	if err := f.Close(); err != nil {
		return "", entities.NewIOError("close deck", path, err)
	}

	if err := b.fs.Rename(tmpPath, path); err != nil {
		return "", entities.NewIOError("rename deck", path, err)
	}
	committed = true

	attrs := []any{slog.String("path", path), slog.Int("slides", b.SlideCount())}
	if info, err := b.fs.Stat(path); err == nil {
		attrs = append(attrs, slog.String("size", humanize.Bytes(uint64(info.Size()))))
	}
	b.logger.Info("presentation saved", attrs...)

	return path, nil
}
