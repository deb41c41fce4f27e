package domain

import "time"

type ItemKind string

const (
	KindFixed   ItemKind = "fixed"
	KindAuction ItemKind = "auction"
)

const DefaultImagePath = "/images/no_image.gif"

// Item is a listing owned by at most one trader. Kind is fixed for the
// item's lifetime: either a fixed-price sale or a timed auction.
type Item struct {
	ID          int
	Name        string
	Description string
	ImagePath   string
	Kind        ItemKind

	// Price is the sale price for fixed-price items and the minimum
	// (starting) price for auctions.
	Price  int
	Active bool

	// OwnerID is 0 only transiently, mid-transfer. It must never stay 0
	// once a transaction completes.
	OwnerID  int
	EditedAt time.Time

	// Auction state. Bidders holds at most one bid per trader.
	EndTime             time.Time
	Bidders             map[int]int
	CurrentWinnerID     int
	CurrentSellingPrice int
	MinIncrement        int
}

func (it Item) IsAuction() bool { return it.Kind == KindAuction }

// Expired reports whether an auction's deadline has passed.
func (it *Item) Expired(now time.Time) bool {
	return it.IsAuction() && !it.EndTime.After(now)
}

// HighestBid returns the current winning bid, or false when nobody bid.
func (it *Item) HighestBid() (traderID, amount int, ok bool) {
	if it.CurrentWinnerID == 0 {
		return 0, 0, false
	}
	return it.CurrentWinnerID, it.Bidders[it.CurrentWinnerID], true
}

// Clone returns a copy safe to hand out across the service lock.
func (it *Item) Clone() Item {
	c := *it
	if it.Bidders != nil {
		c.Bidders = make(map[int]int, len(it.Bidders))
		for id, amt := range it.Bidders {
			c.Bidders[id] = amt
		}
	}
	return c
}
