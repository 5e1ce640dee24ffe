package categories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hiddenhaul/haul/internal/client/repositories/localstore"
)

// StorageKey is the local-store key holding the serialized tree.
const StorageKey = "admin_categories"

var ErrCategoryNotFound = errors.New("category not found")

// Manager binds the in-memory tree to its durable copy. Every mutation is
// a functional update of the slice followed by a full re-persist.
type Manager struct {
	mu   sync.Mutex
	cats []Category
	repo localstore.Repository
}

func NewManager(repo localstore.Repository) *Manager {
	return &Manager{repo: repo}
}

// Load hydrates the tree from the store, seeding (and persisting) the
// defaults when nothing is stored. A malformed stored tree is replaced by
// the defaults rather than surfaced.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := m.repo.Get(ctx, StorageKey)
	if err != nil {
		return err
	}

	if raw != nil {
		var cats []Category
		if err := json.Unmarshal(raw, &cats); err == nil {
			m.cats = cats
			return nil
		}
	}

	m.cats = DefaultTree()
	return m.persistLocked(ctx)
}

// Categories returns a copy of the current tree.
func (m *Manager) Categories() []Category {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Category, len(m.cats))
	copy(out, m.cats)
	return out
}

// AddCategory appends a new empty category with the next id.
func (m *Manager) AddCategory(ctx context.Context, name string) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cat := Category{ID: nextID(m.cats), Name: name, Subcategories: []string{}}
	m.cats = append(m.cats, cat)

	if err := m.persistLocked(ctx); err != nil {
		return Category{}, err
	}
	return cat, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.cats[:0]
	found := false
	for _, c := range m.cats {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("%w: id %d", ErrCategoryNotFound, id)
	}
	m.cats = kept

	return m.persistLocked(ctx)
}

func (m *Manager) AddSubcategory(ctx context.Context, categoryID int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cats {
		if m.cats[i].ID == categoryID {
			m.cats[i].Subcategories = append(m.cats[i].Subcategories, name)
			return m.persistLocked(ctx)
		}
	}
	return fmt.Errorf("%w: id %d", ErrCategoryNotFound, categoryID)
}

func (m *Manager) DeleteSubcategory(ctx context.Context, categoryID int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cats {
		if m.cats[i].ID != categoryID {
			continue
		}
		kept := m.cats[i].Subcategories[:0]
		for _, sub := range m.cats[i].Subcategories {
			if sub != name {
				kept = append(kept, sub)
			}
		}
		m.cats[i].Subcategories = kept
		return m.persistLocked(ctx)
	}
	return fmt.Errorf("%w: id %d", ErrCategoryNotFound, categoryID)
}

func (m *Manager) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(m.cats)
	if err != nil {
		return fmt.Errorf("failed to serialize category tree: %w", err)
	}
	return m.repo.Set(ctx, StorageKey, raw)
}
