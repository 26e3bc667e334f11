package audit

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SoulShadow8326/Arista/app/config"
	"github.com/SoulShadow8326/Arista/app/database"
	"github.com/SoulShadow8326/Arista/app/routes/auth"
)

func GetAuditLogAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	logs, total, err := database.GetAuditLog(config.GetDB(), user.SchoolID, limit, (page-1)*limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
		"page":  page,
		"pages": (total + limit - 1) / limit,
	})
}
