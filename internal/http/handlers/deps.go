package handlers

import (
	"tradepost/internal/audit"
	"tradepost/internal/media"
	"tradepost/internal/services"
)

type Deps struct {
	AuthHandler     *AuthHandler
	ItemHandler     *ItemHandler
	TraderHandler   *TraderHandler
	ActivityHandler *ActivityHandler
}

func NewDeps(trade *services.TradeService, auth *services.AuthService, aud *audit.Log, med *media.Store) *Deps {
	return &Deps{
		AuthHandler:     &AuthHandler{Auth: auth},
		ItemHandler:     &ItemHandler{Trade: trade, Media: med},
		TraderHandler:   &TraderHandler{Trade: trade},
		ActivityHandler: &ActivityHandler{Audit: aud, Trade: trade},
	}
}
