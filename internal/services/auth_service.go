package services

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"tradepost/internal/domain"
)

var ErrBadCreds = errors.New("invalid name or password")

// AuthService keeps sid -> trader bindings in memory; traders live in the
// registry, so sessions have nothing durable to reference.
type AuthService struct {
	Trade *TradeService

	mu       sync.Mutex
	sessions map[string]int
}

func NewAuthService(trade *TradeService) *AuthService {
	return &AuthService{Trade: trade, sessions: make(map[string]int)}
}

func (s *AuthService) Register(name, password, description string, org bool) (domain.Trader, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return domain.Trader{}, err
	}
	role := domain.RoleUser
	if org {
		role = domain.RoleOrganization
	}
	return s.Trade.RegisterTrader(name, role, description, string(hash))
}

func (s *AuthService) Login(sid, name, password string) (*domain.Trader, error) {
	t, ok := s.Trade.FindTraderByName(name)
	if !ok {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(t.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}

	s.mu.Lock()
	s.sessions[sid] = t.ID
	s.mu.Unlock()
	return &t, nil
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

func (s *AuthService) CurrentTrader(sid string) (*domain.Trader, error) {
	s.mu.Lock()
	id, ok := s.sessions[sid]
	s.mu.Unlock()
	if !ok {
		return nil, ErrBadCreds
	}
	t, found := s.Trade.FindTrader(id)
	if !found {
		return nil, ErrBadCreds
	}
	return &t, nil
}
