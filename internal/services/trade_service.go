package services

import (
	"math"
	"sync"
	"time"

	"tradepost/internal/domain"
	"tradepost/internal/registry"
)

const (
	// SellBonus is the fraction paid to the seller on top of the sale
	// price. The bonus is rounded up; see sellBonusFor.
	SellBonus = 0.05

	// CreditReduceRate is the fraction of a balance removed by one round
	// of credit erosion, rounded down.
	CreditReduceRate = 0.05

	// StartingCredits is granted to newly registered traders.
	StartingCredits = 100

	// DefaultMinIncrement is the bid increment for new auctions.
	DefaultMinIncrement = 2

	// DefaultAuctionDuration applies when an auction is proposed without
	// an explicit end time.
	DefaultAuctionDuration = 24 * time.Hour
)

// Clock abstracts wall time so auction expiry and staleness checks are
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ActivitySink receives audit records after transactions. Calls are
// best-effort: a failing sink never rolls a transaction back.
type ActivitySink interface {
	Record(kind string, actorID, itemID, amount int, success bool)
}

// TradeService owns the registry and serializes every mutation behind one
// lock, so foreground requests and the settlement loop can never observe a
// half-applied transaction. Read methods return copies.
type TradeService struct {
	mu    sync.RWMutex
	reg   *registry.Registry
	sink  ActivitySink
	clock Clock
}

func NewTradeService(reg *registry.Registry, sink ActivitySink) *TradeService {
	return &TradeService{reg: reg, sink: sink, clock: systemClock{}}
}

// SetClock replaces the wall clock. Intended for tests.
func (s *TradeService) SetClock(c Clock) { s.clock = c }

func (s *TradeService) record(kind string, actorID, itemID, amount int, success bool) {
	if s.sink != nil {
		s.sink.Record(kind, actorID, itemID, amount, success)
	}
}

// sellBonusFor rounds the bonus up, so a 100-credit sale pays 105. Buy
// and auction settlement share the same rule.
func sellBonusFor(price int) int {
	return int(math.Ceil(float64(price) * SellBonus))
}

// erosionFor rounds down, so small balances are never eroded below zero.
func erosionFor(credits int) int {
	return int(float64(credits) * CreditReduceRate)
}

// RegisterTrader creates a trader with the starting balance. The password
// hash comes from the auth layer; the engine never sees plaintext.
func (s *TradeService) RegisterTrader(name string, role domain.Role, description, hash string) (domain.Trader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.reg.AddTrader(name, role, description, hash, StartingCredits)
	if err != nil {
		return domain.Trader{}, err
	}
	t.LastViewedItemsAt = s.clock.Now()
	return t.Clone(), nil
}

// Propose creates an inactive item owned by the proposer.
func (s *TradeService) Propose(traderID int, name string, price int, description string, kind domain.ItemKind, endTime time.Time) (domain.Item, error) {
	if price <= 0 {
		return domain.Item{}, domain.ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.reg.TraderByID(traderID)
	if t == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	if kind == domain.KindAuction && endTime.IsZero() {
		endTime = s.clock.Now().Add(DefaultAuctionDuration)
	}
	it := s.reg.AddItem(name, price, t, description, kind, endTime, DefaultMinIncrement)
	it.EditedAt = s.clock.Now()

	s.record("item.add", traderID, it.ID, price, true)
	return it.Clone(), nil
}

// Edit updates an item's terms. Only the owner may edit, and only while
// the item is unlisted.
func (s *TradeService) Edit(actorID, itemID int, name string, price int, description string) error {
	if price <= 0 {
		return domain.ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, it := s.reg.TraderByID(actorID), s.reg.ItemByID(itemID)
	if t == nil || it == nil {
		return domain.ErrNotFound
	}
	if !t.CanEdit(it) {
		return domain.ErrNotOwner
	}

	it.Name = name
	it.Price = price
	it.Description = description
	it.EditedAt = s.clock.Now()

	s.record("item.edit", actorID, itemID, price, true)
	return nil
}

// SetItemImage stores the uploaded image path, under the same rules as an
// edit.
func (s *TradeService) SetItemImage(actorID, itemID int, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, it := s.reg.TraderByID(actorID), s.reg.ItemByID(itemID)
	if t == nil || it == nil {
		return domain.ErrNotFound
	}
	if !t.CanEdit(it) {
		return domain.ErrNotOwner
	}
	it.ImagePath = path
	return nil
}

// SetActive lists or unlists an item. The staleness guard rejects the
// request when the item was edited after the actor last viewed it: the
// actor must re-view the page to refresh their clock and retry.
func (s *TradeService) SetActive(actorID, itemID int, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, it := s.reg.TraderByID(actorID), s.reg.ItemByID(itemID)
	if t == nil || it == nil {
		return domain.ErrNotFound
	}
	if t.LastViewedItemsAt.Before(it.EditedAt) {
		return domain.ErrStaleOwnership
	}
	if !t.CanActivate(it) {
		return domain.ErrNotOwner
	}

	// A fresh listing opens with an empty book; bids placed against an
	// earlier listing of the same item never carry over.
	if active && it.IsAuction() {
		clearBids(it)
	}

	it.Active = active
	s.record("item.activate", actorID, itemID, 0, true)
	return nil
}

// Delete removes an unlisted item from the marketplace. Only the current
// owner may delete; an active listing (including a running auction) must
// be deactivated first.
func (s *TradeService) Delete(actorID, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, it := s.reg.TraderByID(actorID), s.reg.ItemByID(itemID)
	if t == nil || it == nil {
		return domain.ErrNotFound
	}
	if !t.CanDelete(it) {
		return domain.ErrNotOwner
	}

	s.reg.Release(t, it)
	s.reg.RemoveItem(it)

	s.record("item.delete", actorID, itemID, 0, true)
	return nil
}

// Buy performs the fixed-price purchase protocol. Each precondition fails
// atomically with no side effects; on success the ownership transfer and
// both balance changes apply as one unit under the service lock.
func (s *TradeService) Buy(buyerID, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buyer, it := s.reg.TraderByID(buyerID), s.reg.ItemByID(itemID)
	if buyer == nil || it == nil {
		return domain.ErrNotFound
	}

	if err := s.buyChecks(buyer, it); err != nil {
		s.record("item.buy", buyerID, itemID, it.Price, false)
		return err
	}

	seller := s.reg.TraderByID(it.OwnerID)
	s.settle(seller, buyer, it, it.Price)

	s.record("item.buy", buyerID, itemID, it.Price, true)
	return nil
}

func (s *TradeService) buyChecks(buyer *domain.Trader, it *domain.Item) error {
	switch {
	case it.OwnerID == 0:
		return domain.ErrItemNoOwner
	case buyer.Credits < it.Price:
		return domain.ErrInsufficientCredits
	case !it.Active:
		return domain.ErrItemInactive
	case !s.reg.TraderByID(it.OwnerID).Owns(it.ID):
		return domain.ErrSellerMismatch
	case it.OwnerID == buyer.ID:
		return domain.ErrBuyOwnItem
	}
	return nil
}

// settle applies the shared transfer sequence: release from the seller,
// pay the seller price plus bonus, deactivate, attach to the buyer, debit
// the buyer. Bids belong to the listing that just ended, so auction state
// is wiped with the transfer; a bid can never follow the item into the
// next owner's listing. Bumping EditedAt invalidates other viewers'
// staleness clocks. Caller holds the lock and has verified the
// preconditions.
func (s *TradeService) settle(seller, buyer *domain.Trader, it *domain.Item, price int) {
	s.reg.Release(seller, it)
	seller.Credits += price + sellBonusFor(price)

	it.Active = false
	if it.IsAuction() {
		clearBids(it)
	}

	s.reg.Attach(buyer, it)
	buyer.Credits -= price

	it.EditedAt = s.clock.Now()
}

// SendMoney transfers credits between two traders. Fails without effect
// when the amount is negative or exceeds the sender's balance.
func (s *TradeService) SendMoney(senderID, receiverID, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender, receiver := s.reg.TraderByID(senderID), s.reg.TraderByID(receiverID)
	if sender == nil || receiver == nil {
		return domain.ErrNotFound
	}
	if sender.Credits < amount {
		return domain.ErrInsufficientCredits
	}

	sender.Credits -= amount
	receiver.Credits += amount

	s.record("credits.send", senderID, 0, amount, true)
	return nil
}

// ErodeCredits applies one round of economic decay to every trader.
// Scheduling is a policy decision left to the caller.
func (s *TradeService) ErodeCredits() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.reg.Traders() {
		t.Credits -= erosionFor(t.Credits)
	}
}

// TouchViewed refreshes the trader's staleness clock. Called whenever the
// trader opens an item listing page.
func (s *TradeService) TouchViewed(traderID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.reg.TraderByID(traderID); t != nil {
		t.LastViewedItemsAt = s.clock.Now()
	}
}
