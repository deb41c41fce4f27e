package domain_test

import (
	"fmt"
	"testing"
	"time"

	"tradepost/internal/domain"
)

func TestReasonCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrInsufficientCredits, "not_enough_credits"},
		{domain.ErrItemInactive, "buy_inactive_item"},
		{domain.ErrItemNoOwner, "item_no_owner"},
		{domain.ErrSellerMismatch, "seller_not_own_item"},
		{domain.ErrBuyOwnItem, "item_changed_details"},
		{domain.ErrStaleOwnership, "not_owner_of_item"},
		{domain.ErrBidTooLow, "bid_too_low"},
		{domain.ErrTraderExists, "user_already_exists"},
		{fmt.Errorf("something else"), "internal_error"},
	}
	for _, c := range cases {
		if got := domain.ReasonCode(c.err); got != c.want {
			t.Errorf("ReasonCode(%v) = %s, want %s", c.err, got, c.want)
		}
	}
}

func TestWrappedErrorsKeepTheirCode(t *testing.T) {
	err := fmt.Errorf("buy item 3: %w", domain.ErrInsufficientCredits)
	if got := domain.ReasonCode(err); got != "not_enough_credits" {
		t.Errorf("wrapped error lost its code: %s", got)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	auc := domain.Item{Kind: domain.KindAuction, EndTime: now.Add(-time.Minute)}
	if !auc.Expired(now) {
		t.Error("past deadline must be expired")
	}
	auc.EndTime = now.Add(time.Minute)
	if auc.Expired(now) {
		t.Error("future deadline must not be expired")
	}
	fixed := domain.Item{Kind: domain.KindFixed}
	if fixed.Expired(now) {
		t.Error("fixed-price items never expire")
	}
}

func TestHighestBid(t *testing.T) {
	it := domain.Item{Kind: domain.KindAuction, Bidders: map[int]int{}}
	if _, _, ok := it.HighestBid(); ok {
		t.Error("no bids yet")
	}
	it.Bidders[7] = 42
	it.CurrentWinnerID = 7
	id, amt, ok := it.HighestBid()
	if !ok || id != 7 || amt != 42 {
		t.Errorf("got %d/%d/%v", id, amt, ok)
	}
}

func TestItemCloneIsDeep(t *testing.T) {
	it := domain.Item{Kind: domain.KindAuction, Bidders: map[int]int{1: 10}}
	c := it.Clone()
	c.Bidders[2] = 20
	if len(it.Bidders) != 1 {
		t.Error("clone shares the bid map")
	}
}

func TestTraderCloneIsDeep(t *testing.T) {
	tr := domain.Trader{ItemIDs: map[int]struct{}{1: {}}}
	c := tr.Clone()
	c.ItemIDs[2] = struct{}{}
	if len(tr.ItemIDs) != 1 {
		t.Error("clone shares the item set")
	}
}
