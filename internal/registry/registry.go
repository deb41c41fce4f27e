package registry

import (
	"strings"
	"time"

	"tradepost/internal/domain"
)

// Registry is the id-assigning arena for traders and items. It replaces
// the ambient global counters of older designs: construct one per process
// (or per test) and pass it by reference.
//
// Registry itself is not safe for concurrent use; the trade service
// serializes all access behind its lock.
type Registry struct {
	traders map[int]*domain.Trader
	names   map[string]int
	items   map[int]*domain.Item

	lastTraderID int
	lastItemID   int
}

func New() *Registry {
	return &Registry{
		traders: make(map[int]*domain.Trader),
		names:   make(map[string]int),
		items:   make(map[int]*domain.Item),
	}
}

// AddTrader registers a new trader under a unique name and assigns the
// next id. Returns ErrTraderExists when the name is taken.
func (r *Registry) AddTrader(name string, role domain.Role, description, hash string, credits int) (*domain.Trader, error) {
	if _, taken := r.names[strings.ToLower(name)]; taken {
		return nil, domain.ErrTraderExists
	}
	r.lastTraderID++
	t := &domain.Trader{
		ID:          r.lastTraderID,
		Name:        name,
		Role:        role,
		Credits:     credits,
		ItemIDs:     make(map[int]struct{}),
		Description: description,
		ImagePath:   domain.DefaultImagePath,
		Hash:        hash,
	}
	r.traders[t.ID] = t
	r.names[strings.ToLower(name)] = t.ID
	return t, nil
}

func (r *Registry) TraderByID(id int) *domain.Trader { return r.traders[id] }

func (r *Registry) TraderByName(name string) *domain.Trader {
	id, ok := r.names[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return r.traders[id]
}

func (r *Registry) Traders() []*domain.Trader {
	out := make([]*domain.Trader, 0, len(r.traders))
	for id := 1; id <= r.lastTraderID; id++ {
		if t, ok := r.traders[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// AddItem creates an item owned by the proposer. New items start inactive.
func (r *Registry) AddItem(name string, price int, owner *domain.Trader, description string, kind domain.ItemKind, endTime time.Time, minIncrement int) *domain.Item {
	r.lastItemID++
	it := &domain.Item{
		ID:           r.lastItemID,
		Name:         name,
		Description:  description,
		ImagePath:    domain.DefaultImagePath,
		Kind:         kind,
		Price:        price,
		EndTime:      endTime,
		MinIncrement: minIncrement,
	}
	if kind == domain.KindAuction {
		it.Bidders = make(map[int]int)
	}
	r.items[it.ID] = it
	r.Attach(owner, it)
	return it
}

func (r *Registry) ItemByID(id int) *domain.Item { return r.items[id] }

// Items returns items in id order, optionally only active ones.
func (r *Registry) Items(activeOnly bool) []*domain.Item {
	out := make([]*domain.Item, 0, len(r.items))
	for id := 1; id <= r.lastItemID; id++ {
		it, ok := r.items[id]
		if !ok || (activeOnly && !it.Active) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Attach and Release are the only mutators of the ownership relation, so
// the two sides (item.OwnerID and trader.ItemIDs) can never diverge.

func (r *Registry) Attach(t *domain.Trader, it *domain.Item) {
	t.ItemIDs[it.ID] = struct{}{}
	it.OwnerID = t.ID
}

// Release detaches the item from the trader. No-op if the trader does not
// currently own it.
func (r *Registry) Release(t *domain.Trader, it *domain.Item) {
	if !t.Owns(it.ID) {
		return
	}
	delete(t.ItemIDs, it.ID)
	it.OwnerID = 0
}

// RemoveItem drops the item from the arena. The caller releases ownership
// first.
func (r *Registry) RemoveItem(it *domain.Item) {
	delete(r.items, it.ID)
}
