package quota

import (
	"errors"

	"go-drive/internal/common/apperr"
	"go-drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type QuotaController struct {
	QuotaService QuotaService
}

func NewQuotaController(quotaService QuotaService) *QuotaController {
	return &QuotaController{QuotaService: quotaService}
}

// GetQuota godoc
// @Summary Storage usage summary
// @Description Per-type byte totals, latest upload per type, grand total and ceiling for the caller's account
// @Tags quota
// @Produce json
// @Success 200 {object} QuotaReport
// @Failure 404 {object} map[string]interface{}
// @Router /api/quota [get]
func (ctrl *QuotaController) GetQuota(c *fiber.Ctx) error {
	report, err := ctrl.QuotaService.Summarize(c.UserContext(), middleware.CallerAccountID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
