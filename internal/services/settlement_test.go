package services_test

import (
	"context"
	"testing"
	"time"

	"tradepost/internal/registry"
	"tradepost/internal/services"
)

func TestSettlerClosesExpiredAuctions(t *testing.T) {
	svc, fc := newService(t)
	owner := trader(t, svc, "Owner")
	bidder := trader(t, svc, "Bidder")

	auc := proposeAuction(t, svc, owner, "painting", 5)
	activate(t, svc, owner, auc.ID)
	if err := svc.Bid(bidder.ID, auc.ID, 10); err != nil {
		t.Fatal(err)
	}
	fc.Advance(services.DefaultAuctionDuration + time.Minute)

	settler := services.NewSettler(svc, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		settler.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if it, ok := svc.FindItem(auc.ID); ok && !it.Active {
			break
		}
		select {
		case <-deadline:
			t.Fatal("settler never closed the expired auction")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("settler did not stop on cancel")
	}

	it, _ := svc.FindItem(auc.ID)
	if it.OwnerID != bidder.ID {
		t.Fatal("winner did not receive the item")
	}
}

func TestSettlerDefaultInterval(t *testing.T) {
	svc := services.NewTradeService(registry.New(), nil)
	s := services.NewSettler(svc, 0)
	if s.Interval != time.Minute {
		t.Fatalf("default interval %v, want 1m", s.Interval)
	}
}

func TestSettlerErosionTicker(t *testing.T) {
	svc, _ := newService(t)
	tr := trader(t, svc, "Rich")

	settler := services.NewSettler(svc, time.Hour)
	settler.ErodeInterval = 5 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		settler.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if credits(t, svc, tr.ID) < services.StartingCredits {
			break
		}
		select {
		case <-deadline:
			t.Fatal("erosion ticker never fired")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestReadViewsAreCopies(t *testing.T) {
	svc, _ := newService(t)
	tr := trader(t, svc, "Hans")
	it := proposeFixed(t, svc, tr, "TestItem", 100)

	view, _ := svc.FindItem(it.ID)
	view.Price = 1
	view.OwnerID = 4711

	again, _ := svc.FindItem(it.ID)
	if again.Price != 100 || again.OwnerID != tr.ID {
		t.Fatal("mutating a returned item leaked into the store")
	}

	tv, _ := svc.FindTrader(tr.ID)
	tv.Credits = 0
	tv.ItemIDs[999] = struct{}{}

	tagain, _ := svc.FindTrader(tr.ID)
	if tagain.Credits != services.StartingCredits {
		t.Fatal("mutating a returned trader leaked into the store")
	}
	if _, ok := tagain.ItemIDs[999]; ok {
		t.Fatal("returned trader shares its item set with the store")
	}
	if _, ok := svc.FindTraderByName("hans"); !ok {
		t.Fatal("name lookup must be case-insensitive")
	}
}
