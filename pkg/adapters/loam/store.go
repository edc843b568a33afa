package loam

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/aretw0/loam"
)

// kind tags the documents this store writes; other documents in the
// directory are ignored.
const kind = "dfa"

// record is the front matter of a stored document.
type record struct {
	Kind string            `json:"kind"`
	DFA  schema.Definition `json:"dfa"`
}

// Store implements ports.DFAStore on a directory of Markdown documents:
// the DFA definition lives in the front matter and the body is a
// readable transition list.
type Store struct {
	repo *loam.TypedRepository[record]
	mu   sync.Mutex
}

// New opens (creating when missing) a document directory at dir.
func New(dir string) (*Store, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	// The caller picks the directory, so Loam must not re-root it into a
	// sandbox under go run or go test.
	repo, err := loam.Init(absPath,
		loam.WithVersioning(false),
		loam.WithForceTemp(false),
		loam.WithDevSafety(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return &Store{repo: loam.NewTypedRepository[record](repo)}, nil
}

// Save writes the definition as <key>.md.
func (s *Store) Save(ctx context.Context, key string, def *schema.Definition) error {
	if err := validKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Save(ctx, &loam.DocumentModel[record]{
		ID:      key,
		Content: body(def),
		Data:    record{Kind: kind, DFA: *def},
	})
	if err != nil {
		return fmt.Errorf("loam save failed for %s: %w", key, err)
	}
	return nil
}

// Load reads the definition saved under key.
// Documents not written by a Store read as missing.
func (s *Store) Load(ctx context.Context, key string) (*schema.Definition, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.get(ctx, key)
	if err != nil {
		return nil, err
	}
	def := rec.DFA
	return &def, nil
}

// Delete removes the document. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(ctx, key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("loam delete failed for %s: %w", key, err)
	}
	return nil
}

// List returns the stored keys, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	keys := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Data.Kind != kind {
			continue
		}
		keys = append(keys, doc.ID)
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *Store) get(ctx context.Context, key string) (*record, error) {
	doc, err := s.repo.Get(ctx, key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("dfa %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", key, err)
	}
	if doc.Data.Kind != kind {
		return nil, fmt.Errorf("dfa %q: %w", key, domain.ErrNotFound)
	}
	return &doc.Data, nil
}

// validKey keeps keys inside the store directory.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

// body renders a human-readable summary below the front matter.
func body(def *schema.Definition) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# DFA\n\nStart: `%s`\n\n", def.Start)
	for _, t := range def.Transitions {
		fmt.Fprintf(&sb, "- `%s` --%s--> `%s`\n", t.From, t.Symbol, t.To)
	}
	return sb.String()
}
