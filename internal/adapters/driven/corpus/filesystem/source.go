// Package filesystem provides a corpus source backed by a local
// notes directory. Markdown and PDF files are reduced to plain text
// before they reach the ingestion pipeline.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/corpus/extract"
	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// Supported note file extensions.
var extensions = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".txt":      "text/plain",
	".pdf":      "application/pdf",
}

// Source reads note files from a directory tree.
type Source struct {
	root string
}

// NewSource creates a filesystem source rooted at dir.
func NewSource(dir string) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrCorpusUnavailable, dir)
	}
	return &Source{root: dir}, nil
}

// Name identifies the source for logging.
func (s *Source) Name() string {
	return "filesystem:" + s.root
}

// Documents walks the notes directory and returns every supported
// file as a plain-text document. Hidden directories are skipped.
func (s *Source) Documents(ctx context.Context) ([]domain.RawDocument, error) {
	var docs []domain.RawDocument

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}

		mime, ok := extensions[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		content, err := readNoteFile(path, mime)
		if err != nil {
			// A single unreadable file should not sink the whole walk.
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}

		label, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			label = filepath.Base(path)
		}

		docs = append(docs, domain.RawDocument{
			URI:      "file://" + path,
			Label:    filepath.ToSlash(label),
			MIMEType: mime,
			Content:  content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk %s: %v", domain.ErrCorpusUnavailable, s.root, err)
	}

	return docs, nil
}

// readNoteFile loads one file and strips its markup.
func readNoteFile(path, mime string) (string, error) {
	switch mime {
	case "application/pdf":
		return extractPDFText(path)
	case "text/markdown":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return extract.Markdown(raw), nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}
