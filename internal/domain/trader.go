package domain

import "time"

type Role string

const (
	RoleUser         Role = "USER"
	RoleOrganization Role = "ORG"
)

// Trader is a participant in the marketplace: an individual user or an
// organization. Both variants share the same record; Role tags the variant.
type Trader struct {
	ID          int
	Name        string
	Role        Role
	Credits     int
	ItemIDs     map[int]struct{}
	Description string
	ImagePath   string
	Hash        string // bcrypt password hash

	// LastViewedItemsAt is refreshed whenever the trader opens an item
	// page; activation requests older than the item's last edit are
	// rejected as stale.
	LastViewedItemsAt time.Time
}

func (t *Trader) IsOrganization() bool { return t.Role == RoleOrganization }

// Owns reports whether the item id is in the trader's ownership set.
func (t *Trader) Owns(itemID int) bool {
	_, ok := t.ItemIDs[itemID]
	return ok
}

// CanEdit is true only for the current owner while the item is not listed.
// Once an item is active its terms are frozen for buyers.
func (t *Trader) CanEdit(it *Item) bool {
	return it.OwnerID == t.ID && !it.Active
}

func (t *Trader) CanDelete(it *Item) bool { return t.CanEdit(it) }

func (t *Trader) CanActivate(it *Item) bool { return it.OwnerID == t.ID }

func (t *Trader) CanBuy(it *Item) bool {
	return it.OwnerID != t.ID && it.Active
}

// Clone returns a copy safe to hand out across the service lock.
func (t *Trader) Clone() Trader {
	c := *t
	c.ItemIDs = make(map[int]struct{}, len(t.ItemIDs))
	for id := range t.ItemIDs {
		c.ItemIDs[id] = struct{}{}
	}
	return c
}
