package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDFAStoreContract runs a suite of tests to verify that a DFAStore implementation
// adheres to the defined interface contract.
func RunDFAStoreContract(t *testing.T, store DFAStore) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405")

	sample := func() *schema.Definition {
		return &schema.Definition{
			States: []string{"[q0]", "[q1]"},
			Start:  "[q0]",
			Final:  []string{"[q1]"},
			Transitions: []schema.TransitionDef{
				{From: "[q0]", Symbol: "a", To: "[q0]"},
				{From: "[q0]", Symbol: "b", To: "[q1]"},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		def := sample()
		require.NoError(t, store.Save(ctx, key, def), "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, def, loaded)
	})

	t.Run("Isolation", func(t *testing.T) {
		def := sample()
		require.NoError(t, store.Save(ctx, key, def))
		def.States[0] = "mutated"

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "[q0]", loaded.States[0], "stored value must not alias the caller's")

		loaded.Final = nil
		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"[q1]"}, again.Final)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, sample()))
		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound, "Load after Delete should return ErrNotFound")

		assert.NoError(t, store.Delete(ctx, key), "deleting twice is fine")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		require.NoError(t, store.Save(ctx, id1, sample()))
		require.NoError(t, store.Save(ctx, id2, sample()))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
