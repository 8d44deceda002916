package user

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"go-drive/internal/common/apperr"
	"go-drive/internal/config"
	"go-drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserController struct {
	UserService UserService
	Config      *config.Config
	Logger      *zap.Logger
}

func NewUserController(userService UserService, cfg *config.Config, logger *zap.Logger) *UserController {
	return &UserController{
		UserService: userService,
		Config:      cfg,
		Logger:      logger,
	}
}

// identityEvent is the identity provider's webhook envelope.
type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		AccountID string `json:"accountId"`
		Email     string `json:"email"`
		FullName  string `json:"fullName"`
		Avatar    string `json:"avatar"`
	} `json:"data"`
}

// Me godoc
// @Summary Current user
// @Description Resolves the caller's account to its user record
// @Tags users
// @Produce json
// @Success 200 {object} User
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/me [get]
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	u, err := ctrl.UserService.GetByAccountID(c.UserContext(), middleware.CallerAccountID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(u)
}

// IdentityWebhook godoc
// @Summary Identity provider webhook
// @Description Applies user.created / user.updated / user.deleted events; deletion cascades to owned files
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/webhooks/identity [post]
func (ctrl *UserController) IdentityWebhook(c *fiber.Ctx) error {
	if !ctrl.verifySignature(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid webhook signature"})
	}

	var event identityEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event payload"})
	}

	ctx := c.UserContext()
	var err error
	switch event.Type {
	case "user.created":
		err = ctrl.UserService.CreateUser(ctx, event.Data.AccountID, event.Data.Email, event.Data.FullName, event.Data.Avatar)
	case "user.updated":
		err = ctrl.UserService.UpdateUser(ctx, event.Data.AccountID, event.Data.Email, event.Data.Avatar)
	case "user.deleted":
		err = ctrl.UserService.DeleteUser(ctx, event.Data.AccountID)
	default:
		ctrl.Logger.Warn("ignoring unknown identity event", zap.String("type", event.Type))
		return c.JSON(fiber.Map{"success": true})
	}

	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		ctrl.Logger.Error("identity event failed", zap.String("type", event.Type), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// verifySignature checks the HMAC-SHA256 hex signature over the raw body.
// An empty configured secret disables verification for local development.
func (ctrl *UserController) verifySignature(c *fiber.Ctx) bool {
	if ctrl.Config.WebhookSecret == "" {
		return true
	}

	mac := hmac.New(sha256.New, []byte(ctrl.Config.WebhookSecret))
	mac.Write(c.Body())
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(c.Get("X-Webhook-Signature")))
}
