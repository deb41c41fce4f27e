package services

import (
	"tradepost/internal/domain"
)

// Bid places or replaces the trader's single bid on a running auction.
// A valid bid must meet the starting price and beat the current best.
func (s *TradeService) Bid(bidderID, itemID, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bidder, it := s.reg.TraderByID(bidderID), s.reg.ItemByID(itemID)
	if bidder == nil || it == nil {
		return domain.ErrNotFound
	}
	if !it.IsAuction() {
		return domain.ErrNotAuction
	}
	if !it.Active {
		return domain.ErrItemInactive
	}
	if it.OwnerID == bidderID {
		return domain.ErrNotOwner
	}
	if amount < it.Price {
		return domain.ErrBidTooLow
	}
	if _, best, ok := it.HighestBid(); ok && amount <= best {
		return domain.ErrBidTooLow
	}

	it.Bidders[bidderID] = amount
	it.CurrentWinnerID = bidderID

	// The winner's asking price is one increment above the runner-up,
	// or the starting price while theirs is the only bid. Settlement
	// caps it at the winner's own bid.
	if second, ok := secondHighestBid(it); ok {
		it.CurrentSellingPrice = second + it.MinIncrement
	} else {
		it.CurrentSellingPrice = it.Price
	}

	s.record("item.bid", bidderID, itemID, amount, true)
	return nil
}

func secondHighestBid(it *domain.Item) (int, bool) {
	best := -1
	for id, amt := range it.Bidders {
		if id == it.CurrentWinnerID {
			continue
		}
		if amt > best {
			best = amt
		}
	}
	return best, best >= 0
}

// FinalizeExpired closes every active auction whose deadline has passed.
// A failure on one item never aborts the scan: the remaining expired
// items are still settled.
func (s *TradeService) FinalizeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for _, it := range s.reg.Items(true) {
		if it.Expired(now) {
			s.finalize(it)
		}
	}
}

// finalize settles a single expired auction. Idempotent: an item that is
// already inactive is left alone, so a second pass can never pay twice.
// Caller holds the lock.
func (s *TradeService) finalize(it *domain.Item) {
	if !it.Active {
		return
	}

	winnerID, winningBid, ok := it.HighestBid()
	if !ok {
		// Nobody bid; the auction closes unsold.
		it.Active = false
		s.record("auction.close", it.OwnerID, it.ID, 0, true)
		return
	}

	seller := s.reg.TraderByID(it.OwnerID)
	winner := s.reg.TraderByID(winnerID)

	// The winner pays the current selling price, but never more than
	// their own bid: the runner-up-plus-increment rule can otherwise
	// overshoot what the winner actually offered.
	price := it.CurrentSellingPrice
	if winningBid < price {
		price = winningBid
	}

	if seller == nil || winner == nil || winner.Credits < price {
		// Bids are not escrowed, so the winner may have spent their
		// credits since bidding. Close unsold rather than let a
		// balance go negative.
		it.Active = false
		clearBids(it)
		s.record("auction.settle", winnerID, it.ID, price, false)
		return
	}

	s.settle(seller, winner, it, price)

	s.record("auction.settle", winnerID, it.ID, price, true)
}

func clearBids(it *domain.Item) {
	it.Bidders = make(map[int]int)
	it.CurrentWinnerID = 0
	it.CurrentSellingPrice = 0
}
