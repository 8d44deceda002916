package user

import (
	"go-drive/internal/config"
	"go-drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
}

func NewUserApi(controller *UserController, config *config.Config) *UserApi {
	return &UserApi{
		controller: controller,
		config:     config,
	}
}

func (h *UserApi) Setup(app *fiber.App) {
	app.Get("/api/users/me", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Me)

	// Webhooks authenticate by signature, not bearer token
	app.Post("/api/webhooks/identity", h.controller.IdentityWebhook)
}
