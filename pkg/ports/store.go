package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/schema"
)

// DFAStore persists converted automata, keyed by the fingerprint of the NFA
// they were built from. It lets repeated conversions skip the subset construction.
type DFAStore interface {
	// Save persists the DFA definition under key, replacing any previous value.
	Save(ctx context.Context, key string, def *schema.Definition) error

	// Load retrieves the DFA definition stored under key.
	// Returns domain.ErrNotFound if nothing is stored.
	Load(ctx context.Context, key string) (*schema.Definition, error)

	// Delete removes the entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the stored keys.
	List(ctx context.Context) ([]string, error)
}
