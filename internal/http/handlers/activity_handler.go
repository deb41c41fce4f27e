package handlers

import (
	"tradepost/internal/audit"
	applog "tradepost/internal/log"
	"tradepost/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	Audit *audit.Log
	Trade *services.TradeService
}

// ActivityView pairs an audit row with the actor's display name.
type ActivityView struct {
	audit.Activity
	ActorName string
}

// Recent shows the latest marketplace activity, GET /activity.
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	rows, err := h.Audit.Recent(100)
	if err != nil {
		applog.Error(c, "activity.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load activity"})
	}

	views := make([]ActivityView, 0, len(rows))
	for _, row := range rows {
		v := ActivityView{Activity: row}
		if t, ok := h.Trade.FindTrader(row.ActorID); ok {
			v.ActorName = t.Name
		}
		views = append(views, v)
	}
	return render(c, "activity", fiber.Map{"Rows": views})
}
