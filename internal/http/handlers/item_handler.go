package handlers

import (
	"mime/multipart"
	"strconv"
	"time"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
	"tradepost/internal/media"
	"tradepost/internal/services"
	"tradepost/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	Trade *services.TradeService
	Media *media.Store
}

// ItemView decorates an item with the names a template needs.
type ItemView struct {
	domain.Item
	OwnerName  string
	WinnerName string
}

func (h *ItemHandler) view(it domain.Item) ItemView {
	v := ItemView{Item: it}
	if owner, ok := h.Trade.FindTrader(it.OwnerID); ok {
		v.OwnerName = owner.Name
	}
	if it.CurrentWinnerID != 0 {
		if w, ok := h.Trade.FindTrader(it.CurrentWinnerID); ok {
			v.WinnerName = w.Name
		}
	}
	return v
}

func (h *ItemHandler) views(items []domain.Item) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, h.view(it))
	}
	return out
}

// List shows every item in the system, GET /items.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	t := currentTrader(c)
	h.Trade.TouchViewed(t.ID)
	return render(c, "items", fiber.Map{
		"Items": h.views(h.Trade.ListItems(false)),
	})
}

// Detail shows one item, GET /item/:id. Opening the page refreshes the
// viewer's staleness clock.
func (h *ItemHandler) Detail(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	it, found := h.Trade.FindItem(id)
	if !found {
		return c.Redirect("/trader/" + t.Name)
	}
	h.Trade.TouchViewed(t.ID)

	v := h.view(it)
	return render(c, "item", fiber.Map{
		"I":           v,
		"CanEdit":     t.CanEdit(&it),
		"CanDelete":   t.CanDelete(&it),
		"CanActivate": t.CanActivate(&it),
		"CanBuy":      t.CanBuy(&it),
	})
}

// NewForm shows the creation form, GET /item/new.
func (h *ItemHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "item_new", fiber.Map{})
}

// Create proposes a new item, POST /item.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	t := currentTrader(c)

	name, ok := validate.Name(c.FormValue("item_name"))
	if !ok {
		return c.Redirect("/item/new")
	}
	price, ok := validate.Price(c.FormValue("item_price"))
	if !ok {
		return c.Redirect("/error/invalid_price")
	}
	desc := validate.Description(c.FormValue("item_description"))

	kind := domain.KindFixed
	var endTime time.Time
	if c.FormValue("item_kind") == string(domain.KindAuction) {
		kind = domain.KindAuction
		hours, ok := validate.AuctionHours(c.FormValue("auction_hours"))
		if !ok {
			return c.Redirect("/item/new")
		}
		endTime = time.Now().Add(hours)
	}

	it, err := h.Trade.Propose(t.ID, name, price, desc, kind, endTime)
	if err != nil {
		return failRedirect(c, err)
	}

	if path, ok := h.saveUpload(c, it.ID); ok {
		_ = h.Trade.SetItemImage(t.ID, it.ID, path)
	}

	applog.Audit(c, "item.create", map[string]any{"item_id": it.ID, "kind": string(kind), "price": price})
	return c.Redirect(itemURL(it.ID))
}

// EditForm shows the edit form, GET /item/:id/edit.
func (h *ItemHandler) EditForm(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/items")
	}
	it, found := h.Trade.FindItem(id)
	if !found {
		return c.Redirect("/items")
	}
	if !t.CanEdit(&it) {
		return c.Redirect(itemURL(id))
	}
	return render(c, "item_edit", fiber.Map{"I": h.view(it)})
}

// Edit applies changed terms, POST /item/:id/edit.
func (h *ItemHandler) Edit(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/items")
	}
	name, ok := validate.Name(c.FormValue("item_name"))
	if !ok {
		return c.Redirect(itemURL(id) + "/edit")
	}
	price, ok := validate.Price(c.FormValue("item_price"))
	if !ok {
		return c.Redirect("/error/invalid_price")
	}
	desc := validate.Description(c.FormValue("item_description"))

	if err := h.Trade.Edit(t.ID, id, name, price, desc); err != nil {
		applog.Security(c, "item.edit.denied", map[string]any{"item_id": id})
		return failRedirect(c, err)
	}

	if path, ok := h.saveUpload(c, id); ok {
		if old, found := h.Trade.FindItem(id); found {
			h.Media.Remove(old.ImagePath)
		}
		_ = h.Trade.SetItemImage(t.ID, id, path)
	}

	applog.Audit(c, "item.edit", map[string]any{"item_id": id, "price": price})
	return c.Redirect(itemURL(id))
}

// SetActive lists or unlists an item, POST /item/:id/act_deact/:activate.
func (h *ItemHandler) SetActive(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/items")
	}
	activate := c.Params("activate") == "true"

	if err := h.Trade.SetActive(t.ID, id, activate); err != nil {
		applog.Security(c, "item.activate.denied", map[string]any{"item_id": id, "activate": activate})
		return failRedirect(c, err)
	}

	applog.Audit(c, "item.activate", map[string]any{"item_id": id, "activate": activate})
	return c.Redirect(itemURL(id))
}

// Buy performs a fixed-price purchase, POST /item/:id/buy.
func (h *ItemHandler) Buy(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/items")
	}

	if err := h.Trade.Buy(t.ID, id); err != nil {
		applog.Info(c, "item.buy.fail", map[string]any{"item_id": id, "reason": domain.ReasonCode(err)})
		return failRedirect(c, err)
	}

	applog.Audit(c, "item.buy", map[string]any{"item_id": id})
	return c.Redirect(itemURL(id))
}

// Bid places a bid on an auction, POST /item/:id/bid.
func (h *ItemHandler) Bid(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/items")
	}
	amount, ok := validate.Amount(c.FormValue("bid_amount"))
	if !ok {
		return c.Redirect("/error/invalid_amount")
	}

	if err := h.Trade.Bid(t.ID, id, amount); err != nil {
		applog.Info(c, "item.bid.fail", map[string]any{"item_id": id, "amount": amount, "reason": domain.ReasonCode(err)})
		return failRedirect(c, err)
	}

	applog.Audit(c, "item.bid", map[string]any{"item_id": id, "amount": amount})
	return c.Redirect(itemURL(id))
}

// Delete removes an unlisted item, POST /item/:id/delete.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	t := currentTrader(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/items")
	}

	it, found := h.Trade.FindItem(id)
	if err := h.Trade.Delete(t.ID, id); err != nil {
		applog.Security(c, "item.delete.denied", map[string]any{"item_id": id})
		return failRedirect(c, err)
	}
	if found {
		h.Media.Remove(it.ImagePath)
	}

	applog.Audit(c, "item.delete", map[string]any{"item_id": id})
	return c.Redirect("/trader/" + t.Name)
}

func itemURL(id int) string { return "/item/" + strconv.Itoa(id) }

func (h *ItemHandler) saveUpload(c *fiber.Ctx, itemID int) (string, bool) {
	fh, err := c.FormFile("file_upload")
	if err != nil || fh == nil {
		return "", false
	}
	f, err := fh.Open()
	if err != nil {
		return "", false
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	path, err := h.Media.Save(f, media.Filename(itemID, fh.Filename))
	if err != nil {
		applog.Error(c, "media.save.fail", err, map[string]any{"item_id": itemID})
		return "", false
	}
	return path, true
}
