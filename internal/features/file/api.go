package file

import (
	"go-drive/internal/config"
	"go-drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FileApi struct {
	controller *FileController
	config     *config.Config
}

func NewFileApi(controller *FileController, config *config.Config) *FileApi {
	return &FileApi{
		controller: controller,
		config:     config,
	}
}

func (h *FileApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)

	app.Post("/api/files/upload-url", auth, h.controller.BeginUpload)
	app.Post("/api/files", auth, h.controller.CreateFile)
	app.Get("/api/files", auth, h.controller.ListFiles)
	app.Patch("/api/files/:id/rename", auth, h.controller.RenameFile)
	app.Patch("/api/files/:id/share", auth, h.controller.ShareFile)
	app.Patch("/api/files/:id/unshare", auth, h.controller.UnshareFile)
	app.Delete("/api/files/:id", auth, h.controller.DeleteFile)
}
