package quota

import (
	"go-drive/internal/config"
	"go-drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type QuotaApi struct {
	controller *QuotaController
	config     *config.Config
}

func NewQuotaApi(controller *QuotaController, config *config.Config) *QuotaApi {
	return &QuotaApi{
		controller: controller,
		config:     config,
	}
}

func (h *QuotaApi) Setup(app *fiber.App) {
	app.Get("/api/quota", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.GetQuota)
}
