// package catalog implements the canonical in-memory catalog state and its
// persistence contract.
//
// The core abstraction is [Store], the single writer for the category and
// product collections. Mutations apply synchronously against an immutable
// state value, notify subscribers with the new state, then hand the snapshot
// to a write-behind worker that persists it without blocking the caller.
package catalog

import (
	"context"
	"sync"

	"github.com/abarbosa/catalogo/internal/models"
	"github.com/abarbosa/catalogo/internal/shared"
	"github.com/abarbosa/catalogo/internal/storage"
	"github.com/charmbracelet/log"
)

// State is the subscriber-visible view of the store: both collections plus
// whether durable storage has been consulted yet. Values handed out are deep
// copies; holders never observe later mutations.
type State struct {
	Hydrated   bool
	Categories []models.Category
	Products   []models.Product
}

// Subscriber receives the new state after every applied mutation and after
// hydration. Called synchronously, in registration order, outside the store
// lock (so a subscriber may safely call back into the store).
type Subscriber func(State)

// Store owns the catalog collections and mediates all reads and writes.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]Subscriber
	nextSub int

	adapter *storage.Adapter
	key     string
	log     *log.Logger

	// Write-behind queue of depth one: the latest snapshot wins, a single
	// worker goroutine drains it. Guarded by pmu; cond signals drain completion.
	pmu      sync.Mutex
	cond     *sync.Cond
	pending  *models.Snapshot
	draining bool
}

// NewStore creates a store holding the built-in seed data, not yet hydrated.
// The logger is optional and only used for dropped persist failures.
func NewStore(adapter *storage.Adapter, key string, logger *log.Logger) *Store {
	s := &Store{
		state:   seedState(),
		subs:    map[int]Subscriber{},
		adapter: adapter,
		key:     key,
		log:     logger,
	}
	s.cond = sync.NewCond(&s.pmu)
	return s
}

// seedState is the catalog a fresh install starts from.
func seedState() State {
	now := shared.NowMillis()
	return State{
		Categories: []models.Category{
			{ID: "cat1", Name: "Tênis"},
			{ID: "cat2", Name: "Camisas"},
		},
		Products: []models.Product{
			{
				ID:          "p1",
				Name:        "Tênis Runner",
				Price:       299.9,
				Description: models.Ptr("Confortável para o dia a dia."),
				CategoryID:  models.Ptr("cat1"),
				Featured:    true,
				CreatedAt:   now - 100000,
			},
			{
				ID:          "p2",
				Name:        "Camiseta Básica",
				Price:       59.9,
				Description: models.Ptr("Algodão premium."),
				CategoryID:  models.Ptr("cat2"),
				Favorite:    true,
				CreatedAt:   now - 50000,
			},
		},
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

// Subscribe registers fn for state change notifications and returns a cancel
// function. fn is not invoked with the current state at registration; call
// [Store.State] for that.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Hydrate replaces the in-memory state with the persisted snapshot, falling
// back to whatever is currently in memory (the seed on first call) when
// nothing usable is stored. Sets the hydrated flag and notifies subscribers.
//
// Calling Hydrate again re-reads durable storage and overwrites in-memory
// state, discarding mutations whose persist has not landed yet; avoiding
// that is the caller's responsibility.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	fallback := models.Snapshot{Categories: s.state.Categories, Products: s.state.Products}.Clone()
	s.mu.Unlock()

	snap := s.adapter.Load(ctx, s.key, fallback)

	s.mu.Lock()
	s.state = State{Hydrated: true, Categories: snap.Categories, Products: snap.Products}
	subs, state := s.notifyArgsLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// UpsertCategory creates a category (fresh id, prepended) when the input has
// no id, or replaces the fields of the matching category in place.
func (s *Store) UpsertCategory(in models.CategoryInput) {
	id := in.ID
	if id == "" {
		id = shared.NewID()
	}

	s.mutate(func(st State) State {
		exists := false
		for _, c := range st.Categories {
			if c.ID == id {
				exists = true
				break
			}
		}

		var categories []models.Category
		if exists {
			categories = make([]models.Category, len(st.Categories))
			for i, c := range st.Categories {
				if c.ID == id {
					c.Name = in.Name
				}
				categories[i] = c
			}
		} else {
			categories = append([]models.Category{{ID: id, Name: in.Name}}, st.Categories...)
		}

		st.Categories = categories
		return st
	})
}

// RemoveCategory deletes the category and clears the reference on every
// product that pointed at it. Products are never deleted here; the category
// reference is soft. Unknown ids are a no-op that still persists.
func (s *Store) RemoveCategory(id string) {
	s.mutate(func(st State) State {
		categories := make([]models.Category, 0, len(st.Categories))
		for _, c := range st.Categories {
			if c.ID != id {
				categories = append(categories, c)
			}
		}

		products := models.CloneProducts(st.Products)
		for i := range products {
			if products[i].CategoryID != nil && *products[i].CategoryID == id {
				products[i].CategoryID = nil
			}
		}

		st.Categories = categories
		st.Products = products
		return st
	})
}

// UpsertProduct creates a product (fresh id and creation timestamp,
// prepended) when the input has no id, or replaces all supplied fields of the
// matching product in place, preserving its original creation timestamp.
func (s *Store) UpsertProduct(in models.ProductInput) {
	id := in.ID
	if id == "" {
		id = shared.NewID()
	}

	s.mutate(func(st State) State {
		createdAt := shared.NowMillis()
		exists := false
		for _, p := range st.Products {
			if p.ID == id {
				exists = true
				createdAt = p.CreatedAt
				break
			}
		}

		next := models.Product{
			ID:          id,
			Name:        in.Name,
			Price:       in.Price,
			Description: in.Description,
			CategoryID:  in.CategoryID,
			Featured:    in.Featured,
			Favorite:    in.Favorite,
			ImageURL:    in.ImageURL,
			CreatedAt:   createdAt,
		}

		var products []models.Product
		if exists {
			products = make([]models.Product, len(st.Products))
			for i, p := range st.Products {
				if p.ID == id {
					p = next
				}
				products[i] = p
			}
		} else {
			products = append([]models.Product{next}, models.CloneProducts(st.Products)...)
		}

		st.Products = products
		return st
	})
}

// RemoveProduct deletes the product with the given id. Unknown ids are a
// no-op that still persists.
func (s *Store) RemoveProduct(id string) {
	s.mutate(func(st State) State {
		products := make([]models.Product, 0, len(st.Products))
		for _, p := range st.Products {
			if p.ID != id {
				products = append(products, p)
			}
		}
		st.Products = products
		return st
	})
}

// ToggleFavorite flips the favorite flag on the product with the given id.
// Unknown ids are a no-op that still persists.
func (s *Store) ToggleFavorite(id string) {
	s.mutate(func(st State) State {
		products := models.CloneProducts(st.Products)
		for i := range products {
			if products[i].ID == id {
				products[i].Favorite = !products[i].Favorite
			}
		}
		st.Products = products
		return st
	})
}

// Flush blocks until every snapshot enqueued so far has been handed to the
// adapter (or ctx is done). Mutations are already visible in memory before
// Flush is called; this only makes the write-behind deterministic.
func (s *Store) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pmu.Lock()
		for s.draining || s.pending != nil {
			s.cond.Wait()
		}
		s.pmu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains the write-behind queue before returning.
func (s *Store) Close() error {
	return s.Flush(context.Background())
}

// mutate applies fn to the current state in one unobserved step, notifies
// subscribers with the resulting state, then enqueues a full-snapshot persist.
func (s *Store) mutate(fn func(State) State) {
	s.mu.Lock()
	next := fn(s.copyStateLocked())
	s.state = next
	subs, state := s.notifyArgsLocked()
	snap := models.Snapshot{Categories: next.Categories, Products: next.Products}.Clone()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(state)
	}

	s.enqueuePersist(snap)
}

func (s *Store) copyStateLocked() State {
	return State{
		Hydrated:   s.state.Hydrated,
		Categories: models.CloneCategories(s.state.Categories),
		Products:   models.CloneProducts(s.state.Products),
	}
}

func (s *Store) notifyArgsLocked() ([]Subscriber, State) {
	subs := make([]Subscriber, 0, len(s.subs))
	for id := 0; id < s.nextSub; id++ {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs, s.copyStateLocked()
}

// enqueuePersist replaces any not-yet-written pending snapshot (latest wins)
// and starts the drain worker if one is not running.
func (s *Store) enqueuePersist(snap models.Snapshot) {
	s.pmu.Lock()
	s.pending = &snap
	if !s.draining {
		s.draining = true
		go s.drain()
	}
	s.pmu.Unlock()
}

func (s *Store) drain() {
	for {
		s.pmu.Lock()
		snap := s.pending
		s.pending = nil
		if snap == nil {
			s.draining = false
			s.cond.Broadcast()
			s.pmu.Unlock()
			return
		}
		s.pmu.Unlock()

		// Persist failures are dropped: in-memory state stays correct for the
		// session and the next successful mutation rewrites the full document.
		if err := s.adapter.Store(context.Background(), s.key, *snap); err != nil && s.log != nil {
			s.log.Debug("persist failed, keeping in-memory state", "key", s.key, "error", err)
		}
	}
}
