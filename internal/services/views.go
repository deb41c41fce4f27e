package services

import "tradepost/internal/domain"

// Read API. Everything returned here is a deep copy, so handlers can
// render without holding the service lock.

func (s *TradeService) FindTrader(id int) (domain.Trader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.reg.TraderByID(id)
	if t == nil {
		return domain.Trader{}, false
	}
	return t.Clone(), true
}

func (s *TradeService) FindTraderByName(name string) (domain.Trader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.reg.TraderByName(name)
	if t == nil {
		return domain.Trader{}, false
	}
	return t.Clone(), true
}

func (s *TradeService) FindItem(id int) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it := s.reg.ItemByID(id)
	if it == nil {
		return domain.Item{}, false
	}
	return it.Clone(), true
}

func (s *TradeService) ListItems(activeOnly bool) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.reg.Items(activeOnly)
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}

func (s *TradeService) Traders() []domain.Trader {
	s.mu.RLock()
	defer s.mu.RUnlock()

	traders := s.reg.Traders()
	out := make([]domain.Trader, 0, len(traders))
	for _, t := range traders {
		out = append(out, t.Clone())
	}
	return out
}

// ItemsOf returns the items a trader currently owns, in id order.
func (s *TradeService) ItemsOf(traderID int) []domain.Item {
	return s.itemsOf(traderID, false)
}

// ActiveItemsOf returns only the trader's listed items.
func (s *TradeService) ActiveItemsOf(traderID int) []domain.Item {
	return s.itemsOf(traderID, true)
}

func (s *TradeService) itemsOf(traderID int, activeOnly bool) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.reg.TraderByID(traderID)
	if t == nil {
		return nil
	}
	var out []domain.Item
	for _, it := range s.reg.Items(activeOnly) {
		if it.OwnerID == traderID {
			out = append(out, it.Clone())
		}
	}
	return out
}
