package domain

import "errors"

var (
	ErrInvalidPrice        = errors.New("invalid price")
	ErrNotFound            = errors.New("not found")
	ErrNotOwner            = errors.New("not the owner")
	ErrStaleOwnership      = errors.New("item changed since last viewed")
	ErrItemNoOwner         = errors.New("item has no owner")
	ErrInsufficientCredits = errors.New("not enough credits")
	ErrItemInactive        = errors.New("item is not active")
	ErrSellerMismatch      = errors.New("seller does not own item")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBidTooLow           = errors.New("bid too low")
	ErrNotAuction          = errors.New("item is not an auction")
	ErrBuyOwnItem          = errors.New("cannot buy own item")
	ErrTraderExists        = errors.New("trader name already taken")
)

// reasonCodes are the stable wire codes the view layer renders messages
// for. They match the /error/:code routes.
var reasonCodes = map[error]string{
	ErrInvalidPrice:        "invalid_price",
	ErrNotFound:            "not_found",
	ErrNotOwner:            "not_owner_of_item",
	ErrStaleOwnership:      "not_owner_of_item",
	ErrItemNoOwner:         "item_no_owner",
	ErrInsufficientCredits: "not_enough_credits",
	ErrItemInactive:        "buy_inactive_item",
	ErrSellerMismatch:      "seller_not_own_item",
	ErrInvalidAmount:       "invalid_amount",
	ErrBidTooLow:           "bid_too_low",
	ErrNotAuction:          "not_an_auction",
	ErrBuyOwnItem:          "item_changed_details",
	ErrTraderExists:        "user_already_exists",
}

// ReasonCode maps a domain error to its wire code; unknown errors map to
// a generic code.
func ReasonCode(err error) string {
	for e, code := range reasonCodes {
		if errors.Is(err, e) {
			return code
		}
	}
	return "internal_error"
}
