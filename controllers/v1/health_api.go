package apiv1

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"referral-tracker-backend/db"
	apimodels "referral-tracker-backend/models/api"
)

type healthApiController struct{}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Проверка состояния сервиса
// @Tags Сервис
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		log.WithError(err).Error("БД недоступна")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("database unavailable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("Server is running"))
}
