// Package github provides a corpus source that pulls notes from a
// GitHub repository. Useful for class notes shared through a repo.
package github

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/aldergate-labs/physika-cli/internal/adapters/driven/corpus/extract"
	"github.com/aldergate-labs/physika-cli/internal/core/domain"
	"github.com/aldergate-labs/physika-cli/internal/core/ports/driven"
	"github.com/aldergate-labs/physika-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles requests well under the authenticated
	// GitHub limit (5000/hour).
	ProactiveRate = 1.2
)

// Config identifies the repository and subtree to read notes from.
type Config struct {
	// Owner is the repository owner (required).
	Owner string

	// Repo is the repository name (required).
	Repo string

	// Path is the subtree holding the notes. Empty means the
	// repository root.
	Path string

	// Ref is the branch or tag to read. Empty uses the default branch.
	Ref string

	// Token authenticates API requests. Empty works for public
	// repositories at a much lower rate limit.
	Token string
}

// Source reads markdown and text notes from a GitHub repository.
type Source struct {
	cfg     Config
	client  *gh.Client
	limiter *rate.Limiter
}

// NewSource creates a GitHub corpus source.
func NewSource(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, fmt.Errorf("%w: github source requires owner and repo", domain.ErrCorpusUnavailable)
	}

	var client *gh.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = DefaultTimeout
		client = gh.NewClient(tc)
	} else {
		client = gh.NewClient(nil)
	}

	return &Source{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}, nil
}

// Name identifies the source for logging.
func (s *Source) Name() string {
	return fmt.Sprintf("github:%s/%s", s.cfg.Owner, s.cfg.Repo)
}

// Documents fetches every markdown and text file under the
// configured path.
func (s *Source) Documents(ctx context.Context) ([]domain.RawDocument, error) {
	docs, err := s.collect(ctx, s.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	return docs, nil
}

// collect walks one directory of the repository, recursing into
// subdirectories.
func (s *Source) collect(ctx context.Context, dir string) ([]domain.RawDocument, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	opts := &gh.RepositoryContentGetOptions{Ref: s.cfg.Ref}
	file, entries, _, err := s.client.Repositories.GetContents(ctx, s.cfg.Owner, s.cfg.Repo, dir, opts)
	if err != nil {
		return nil, fmt.Errorf("get contents %q: %w", dir, err)
	}

	// A single file path returns file != nil.
	if file != nil {
		doc, ok, err := s.toDocument(file)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []domain.RawDocument{doc}, nil
	}

	var docs []domain.RawDocument
	for _, entry := range entries {
		switch entry.GetType() {
		case "dir":
			sub, err := s.collect(ctx, entry.GetPath())
			if err != nil {
				return nil, err
			}
			docs = append(docs, sub...)

		case "file":
			if !noteFile(entry.GetName()) {
				continue
			}
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
			full, _, _, err := s.client.Repositories.GetContents(ctx, s.cfg.Owner, s.cfg.Repo, entry.GetPath(), opts)
			if err != nil {
				return nil, fmt.Errorf("get file %q: %w", entry.GetPath(), err)
			}
			doc, ok, err := s.toDocument(full)
			if err != nil {
				logger.Warn("skipping %s: %v", entry.GetPath(), err)
				continue
			}
			if ok {
				docs = append(docs, doc)
			}
		}
	}

	return docs, nil
}

// toDocument converts a fetched file into a raw document.
func (s *Source) toDocument(file *gh.RepositoryContent) (domain.RawDocument, bool, error) {
	if file == nil || !noteFile(file.GetName()) {
		return domain.RawDocument{}, false, nil
	}

	content, err := file.GetContent()
	if err != nil {
		return domain.RawDocument{}, false, fmt.Errorf("decode %q: %w", file.GetPath(), err)
	}

	mime := "text/plain"
	if ext := strings.ToLower(path.Ext(file.GetName())); ext == ".md" || ext == ".markdown" {
		mime = "text/markdown"
		content = extract.Markdown([]byte(content))
	}

	return domain.RawDocument{
		URI:      file.GetHTMLURL(),
		Label:    s.cfg.Owner + "/" + s.cfg.Repo + "/" + file.GetPath(),
		MIMEType: mime,
		Content:  content,
	}, true, nil
}

// noteFile reports whether a repository entry looks like a note.
func noteFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}
