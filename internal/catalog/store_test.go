package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abarbosa/catalogo/internal/models"
	"github.com/abarbosa/catalogo/internal/storage"
)

const testKey = "@catalogo_test_v1"

// newTestStore creates a store over a fresh in-memory backend
func newTestStore(t *testing.T) (*Store, *storage.MemoryBackend) {
	t.Helper()

	backend := storage.NewMemoryBackend()
	adapter := storage.NewAdapter(backend, nil)
	return NewStore(adapter, testKey, nil), backend
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("starts from seed data before hydration", func(t *testing.T) {
		store, _ := newTestStore(t)
		state := store.State()

		if state.Hydrated {
			t.Error("store should not report hydrated before Hydrate")
		}
		if len(state.Categories) != 2 {
			t.Errorf("expected 2 seed categories, got %d", len(state.Categories))
		}
		if len(state.Products) != 2 {
			t.Errorf("expected 2 seed products, got %d", len(state.Products))
		}
	})

	t.Run("Hydrate falls back to seed when nothing is stored", func(t *testing.T) {
		store, backend := newTestStore(t)
		store.Hydrate(ctx)

		state := store.State()
		if !state.Hydrated {
			t.Error("store should report hydrated")
		}
		if len(state.Products) != 2 || len(state.Categories) != 2 {
			t.Errorf("expected seed collections after fallback, got %d/%d",
				len(state.Categories), len(state.Products))
		}

		if _, ok, _ := backend.Get(ctx, testKey); ok {
			t.Error("hydration alone should not write to durable storage")
		}
	})

	t.Run("Hydrate is idempotent", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)
		store.Hydrate(ctx)

		state := store.State()
		if len(state.Products) != 2 {
			t.Errorf("expected 2 products after double hydrate, got %d", len(state.Products))
		}
	})

	t.Run("new product is prepended with fresh id and timestamp", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)

		before := time.Now().UnixMilli()
		store.UpsertProduct(models.ProductInput{Name: "Boné", Price: 39.9})
		after := time.Now().UnixMilli()

		state := store.State()
		if len(state.Products) != 3 {
			t.Fatalf("expected 3 products, got %d", len(state.Products))
		}

		p := state.Products[0]
		if p.Name != "Boné" {
			t.Errorf("new product should be first, got %s", p.Name)
		}
		if p.ID == "" {
			t.Error("new product should have a generated id")
		}
		if p.CreatedAt < before || p.CreatedAt > after {
			t.Errorf("createdAt %d outside [%d, %d]", p.CreatedAt, before, after)
		}
	})

	t.Run("removing a category clears references without deleting products", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)
		store.UpsertProduct(models.ProductInput{Name: "Boné", Price: 39.9})

		store.RemoveCategory("cat1")

		state := store.State()
		if _, ok := FindCategory(state.Categories, "cat1"); ok {
			t.Error("cat1 should be gone")
		}
		if len(state.Products) != 3 {
			t.Errorf("no product should be deleted, got %d", len(state.Products))
		}

		runner, ok := FindProduct(state.Products, "p1")
		if !ok {
			t.Fatal("seed product p1 should still exist")
		}
		if runner.CategoryID != nil {
			t.Errorf("p1 categoryId should be cleared, got %q", *runner.CategoryID)
		}

		// The other seed product kept its reference.
		shirt, _ := FindProduct(state.Products, "p2")
		if shirt.CategoryID == nil || *shirt.CategoryID != "cat2" {
			t.Error("p2 should still reference cat2")
		}
	})

	t.Run("every generated id is unique", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)

		for i := 0; i < 25; i++ {
			store.UpsertProduct(models.ProductInput{Name: "Produto", Price: 1})
			store.UpsertCategory(models.CategoryInput{Name: "Categoria"})
		}

		state := store.State()
		seen := map[string]bool{}
		for _, p := range state.Products {
			if seen[p.ID] {
				t.Fatalf("duplicate product id: %s", p.ID)
			}
			seen[p.ID] = true
		}
		seen = map[string]bool{}
		for _, c := range state.Categories {
			if seen[c.ID] {
				t.Fatalf("duplicate category id: %s", c.ID)
			}
			seen[c.ID] = true
		}
	})

	t.Run("updating a product preserves createdAt and position", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)

		store.UpsertProduct(models.ProductInput{Name: "Boné", Price: 39.9})
		created := store.State().Products[0]

		store.UpsertProduct(models.ProductInput{
			ID:       created.ID,
			Name:     "Boné Azul",
			Price:    44.9,
			Featured: true,
		})

		state := store.State()
		updated := state.Products[0]
		if updated.ID != created.ID {
			t.Error("update should preserve position at the head")
		}
		if updated.CreatedAt != created.CreatedAt {
			t.Errorf("createdAt changed: %d -> %d", created.CreatedAt, updated.CreatedAt)
		}
		if updated.Name != "Boné Azul" || updated.Price != 44.9 || !updated.Featured {
			t.Error("updated fields should be replaced")
		}
		if len(state.Products) != 3 {
			t.Errorf("update should not change collection size, got %d", len(state.Products))
		}
	})

	t.Run("updating a category preserves its position", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)

		store.UpsertCategory(models.CategoryInput{ID: "cat2", Name: "Roupas"})

		state := store.State()
		if len(state.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(state.Categories))
		}
		if state.Categories[1].ID != "cat2" || state.Categories[1].Name != "Roupas" {
			t.Errorf("cat2 should be renamed in place, got %+v", state.Categories[1])
		}
	})

	t.Run("toggling favorite twice restores the original value", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)

		original, _ := FindProduct(store.State().Products, "p1")

		store.ToggleFavorite("p1")
		flipped, _ := FindProduct(store.State().Products, "p1")
		if flipped.Favorite == original.Favorite {
			t.Error("one toggle should flip the flag")
		}

		store.ToggleFavorite("p1")
		restored, _ := FindProduct(store.State().Products, "p1")
		if restored.Favorite != original.Favorite {
			t.Error("two toggles should restore the flag")
		}
	})

	t.Run("mutations on unknown ids are no-ops", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)
		before := store.State()

		store.RemoveProduct("missing")
		store.RemoveCategory("missing")
		store.ToggleFavorite("missing")

		after := store.State()
		if len(after.Products) != len(before.Products) || len(after.Categories) != len(before.Categories) {
			t.Error("unknown ids should not change the collections")
		}
	})

	t.Run("mutations reach durable storage after Flush", func(t *testing.T) {
		store, backend := newTestStore(t)
		store.Hydrate(ctx)

		store.UpsertProduct(models.ProductInput{Name: "Boné", Price: 39.9})
		if err := store.Flush(ctx); err != nil {
			t.Fatalf("flush failed: %v", err)
		}

		data, ok, err := backend.Get(ctx, testKey)
		if err != nil || !ok {
			t.Fatalf("expected a stored document, ok=%v err=%v", ok, err)
		}

		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			t.Fatalf("stored document is not valid JSON: %v", err)
		}
		if len(snap.Products) != 3 || snap.Products[0].Name != "Boné" {
			t.Errorf("stored snapshot should contain the new product, got %d products", len(snap.Products))
		}
	})

	t.Run("a second store hydrates the persisted state", func(t *testing.T) {
		backend := storage.NewMemoryBackend()
		adapter := storage.NewAdapter(backend, nil)

		first := NewStore(adapter, testKey, nil)
		first.Hydrate(ctx)
		first.UpsertProduct(models.ProductInput{Name: "Boné", Price: 39.9})
		first.RemoveCategory("cat2")
		if err := first.Flush(ctx); err != nil {
			t.Fatalf("flush failed: %v", err)
		}

		second := NewStore(adapter, testKey, nil)
		second.Hydrate(ctx)

		state := second.State()
		if len(state.Products) != 3 {
			t.Errorf("expected 3 products after rehydration, got %d", len(state.Products))
		}
		if _, ok := FindCategory(state.Categories, "cat2"); ok {
			t.Error("cat2 removal should survive rehydration")
		}
	})

	t.Run("subscribers receive every state change until cancelled", func(t *testing.T) {
		store, _ := newTestStore(t)

		var got []State
		cancel := store.Subscribe(func(st State) { got = append(got, st) })

		store.Hydrate(ctx)
		store.UpsertProduct(models.ProductInput{Name: "Boné", Price: 39.9})

		if len(got) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(got))
		}
		if !got[0].Hydrated {
			t.Error("first notification should carry the hydrated state")
		}
		if len(got[1].Products) != 3 {
			t.Errorf("second notification should carry the mutation, got %d products", len(got[1].Products))
		}

		cancel()
		store.RemoveProduct("p1")
		if len(got) != 2 {
			t.Error("cancelled subscriber should not be notified")
		}
	})

	t.Run("handed-out state is isolated from later mutations", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Hydrate(ctx)

		before := store.State()
		store.RemoveCategory("cat1")

		p, _ := FindProduct(before.Products, "p1")
		if p.CategoryID == nil || *p.CategoryID != "cat1" {
			t.Error("previously read state should not observe the mutation")
		}
	})
}
