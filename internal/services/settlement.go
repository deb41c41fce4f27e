package services

import (
	"context"
	"log"
	"time"
)

// Settler is the background loop that closes expired auctions. One
// settler runs per process; it is the only caller of FinalizeExpired, so
// every expired auction is finalized exactly once.
type Settler struct {
	Trade    *TradeService
	Interval time.Duration

	// ErodeInterval additionally drives periodic credit erosion when
	// positive. Cadence is a policy knob; zero leaves erosion off.
	ErodeInterval time.Duration
}

func NewSettler(trade *TradeService, interval time.Duration) *Settler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Settler{Trade: trade, Interval: interval}
}

// Run blocks until ctx is cancelled. An in-flight scan always completes
// before Run returns; cancellation is only observed between ticks.
func (s *Settler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var erode <-chan time.Time
	if s.ErodeInterval > 0 {
		t := time.NewTicker(s.ErodeInterval)
		defer t.Stop()
		erode = t.C
	}

	log.Printf("[settler] every %s", s.Interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[settler] stopped")
			return
		case <-ticker.C:
			s.Trade.FinalizeExpired()
		case <-erode:
			s.Trade.ErodeCredits()
		}
	}
}
