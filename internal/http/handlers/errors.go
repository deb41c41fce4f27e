package handlers

import (
	"tradepost/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// errorMessages maps the stable error codes to user-facing text. The
// codes double as the /error/:code route parameter.
var errorMessages = map[string]string{
	"not_owner_of_item":    "Item does not belong to you anymore",
	"item_changed_details": "Trying to buy inactive item or the owner changed some details",
	"item_no_owner":        "Item does not belong to anybody",
	"not_enough_credits":   "Buyer does not have enough credits",
	"buy_inactive_item":    "Trying to buy inactive item",
	"seller_not_own_item":  "Seller does not own item to buy",
	"user_no_exists":       "User is not registered in the system",
	"login_no_pwd_user":    "Empty username or password",
	"user_already_exists":  "Username already exists! Please choose another one",
	"pwd_rep_no_match":     "Passwords do not match. Please try again",
	"no_user_name":         "You must choose a user name",
	"pwd_unsafe":           "Your password is unsafe. It must be at least 8 characters long and contain an upper case letter and a number",
	"invalid_price":        "You entered an invalid price. Please enter a positive numeric value",
	"invalid_amount":       "You entered an invalid amount",
	"bid_too_low":          "Your bid is below the current asking price",
	"not_an_auction":       "This item is not up for auction",
	"not_found":            "No such item or trader",
	"internal_error":       "Something went wrong. Please try again.",
}

// ErrorPage renders the message for a code, GET /error/:code.
func ErrorPage(c *fiber.Ctx) error {
	code := c.Params("code")
	msg, ok := errorMessages[code]
	if !ok {
		msg = errorMessages["internal_error"]
	}
	return render(c, "error", fiber.Map{"Message": msg, "Code": code})
}

// failRedirect sends the caller to the error page for a domain error.
func failRedirect(c *fiber.Ctx, err error) error {
	return c.Redirect("/error/" + domain.ReasonCode(err))
}
