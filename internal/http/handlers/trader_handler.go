package handlers

import (
	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/services"
	"tradepost/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type TraderHandler struct {
	Trade *services.TradeService
}

// Home is the store page, GET /: all traders and every active listing.
func (h *TraderHandler) Home(c *fiber.Ctx) error {
	t := currentTrader(c)
	h.Trade.TouchViewed(t.ID)

	items := h.Trade.ListItems(true)
	views := make([]ItemView, 0, len(items))
	ih := ItemHandler{Trade: h.Trade}
	for _, it := range items {
		views = append(views, ih.view(it))
	}
	return render(c, "store", fiber.Map{
		"Traders": h.Trade.Traders(),
		"Items":   views,
	})
}

// Profile shows a trader with their items, GET /trader/:name.
func (h *TraderHandler) Profile(c *fiber.Ctx) error {
	name, ok := validate.TraderName(c.Params("name"))
	if !ok {
		return c.Redirect("/error/user_no_exists")
	}
	t, found := h.Trade.FindTraderByName(name)
	if !found {
		return c.Redirect("/error/user_no_exists")
	}

	viewer := currentTrader(c)
	return render(c, "trader", fiber.Map{
		"T":     t,
		"Items": h.Trade.ItemsOf(t.ID),
		"IsOrg": t.Role == domain.RoleOrganization,
		"Self":  viewer.ID == t.ID,
	})
}

// SendMoney transfers credits to another trader, POST /trader/:name/send.
func (h *TraderHandler) SendMoney(c *fiber.Ctx) error {
	sender := currentTrader(c)

	name, ok := validate.TraderName(c.Params("name"))
	if !ok {
		return c.Redirect("/error/user_no_exists")
	}
	receiver, found := h.Trade.FindTraderByName(name)
	if !found {
		return c.Redirect("/error/user_no_exists")
	}
	amount, ok := validate.Amount(c.FormValue("amount"))
	if !ok {
		return c.Redirect("/error/invalid_amount")
	}

	if err := h.Trade.SendMoney(sender.ID, receiver.ID, amount); err != nil {
		applog.Info(c, "credits.send.fail", map[string]any{"to": receiver.ID, "amount": amount})
		return failRedirect(c, err)
	}

	applog.Audit(c, "credits.send", map[string]any{"to": receiver.ID, "amount": amount})
	return c.Redirect("/trader/" + receiver.Name)
}
