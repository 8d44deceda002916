package file

import (
	"errors"

	"go-drive/internal/common/apperr"
	"go-drive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FileController struct {
	FileService FileService
	Directory   AccountDirectory
}

func NewFileController(fileService FileService, directory AccountDirectory) *FileController {
	return &FileController{
		FileService: fileService,
		Directory:   directory,
	}
}

type createFileRequest struct {
	Name       string `json:"name"`
	Size       *int64 `json:"size"`
	StorageKey string `json:"storageKey"`
}

type renameFileRequest struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

type shareFileRequest struct {
	Emails []string `json:"emails"`
}

type unshareFileRequest struct {
	AccountID string `json:"accountId"`
}

// BeginUpload godoc
// @Summary Begin an upload
// @Description Returns a presigned write location and the storage key to register afterwards
// @Tags files
// @Produce json
// @Success 200 {object} storage.UploadTarget
// @Failure 500 {object} map[string]interface{}
// @Router /api/files/upload-url [post]
func (ctrl *FileController) BeginUpload(c *fiber.Ctx) error {
	target, err := ctrl.FileService.BeginUpload(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(target)
}

// CreateFile godoc
// @Summary Register an uploaded file
// @Description Creates the metadata record for a payload already committed to the object store
// @Tags files
// @Accept json
// @Produce json
// @Success 201 {object} File
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/files [post]
func (ctrl *FileController) CreateFile(c *fiber.Ctx) error {
	accountID := middleware.CallerAccountID(c)

	var req createFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.StorageKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and storageKey are required"})
	}

	owner, err := ctrl.Directory.ResolveByAccountID(c.UserContext(), accountID)
	if err != nil {
		return respondError(c, err)
	}

	record, err := ctrl.FileService.CreateFile(c.UserContext(), owner.ID, accountID, req.Name, req.Size, req.StorageKey)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListFiles godoc
// @Summary List files
// @Description Owned files followed by files shared with the caller, filterable by type segment and name search
// @Tags files
// @Produce json
// @Param type query string false "documents|images|media|others"
// @Param search query string false "Substring match on name"
// @Success 200 {array} File
// @Router /api/files [get]
func (ctrl *FileController) ListFiles(c *fiber.Ctx) error {
	accountID := middleware.CallerAccountID(c)

	files, err := ctrl.FileService.ListFiles(c.UserContext(), accountID, c.Query("type"), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(files)
}

// RenameFile godoc
// @Summary Rename a file
// @Tags files
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/files/{id}/rename [patch]
func (ctrl *FileController) RenameFile(c *fiber.Ctx) error {
	var req renameFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := ctrl.FileService.RenameFile(c.UserContext(), middleware.CallerAccountID(c), c.Params("id"), req.Name, req.Extension)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteFile godoc
// @Summary Delete a file
// @Description Removes the object-store payload, then the metadata record
// @Tags files
// @Produce json
// @Param storageKey query string false "Storage key of the payload"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/files/{id} [delete]
func (ctrl *FileController) DeleteFile(c *fiber.Ctx) error {
	err := ctrl.FileService.DeleteFile(c.UserContext(), middleware.CallerAccountID(c), c.Params("id"), c.Query("storageKey"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ShareFile godoc
// @Summary Share a file by email
// @Description Grants read access to the accounts behind the given emails; unknown emails are skipped
// @Tags files
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/files/{id}/share [patch]
func (ctrl *FileController) ShareFile(c *fiber.Ctx) error {
	var req shareFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := ctrl.FileService.ShareFile(c.UserContext(), middleware.CallerAccountID(c), c.Params("id"), req.Emails)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UnshareFile godoc
// @Summary Revoke shared access
// @Tags files
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/files/{id}/unshare [patch]
func (ctrl *FileController) UnshareFile(c *fiber.Ctx) error {
	var req unshareFileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := ctrl.FileService.UnshareFile(c.UserContext(), middleware.CallerAccountID(c), c.Params("id"), req.AccountID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	case errors.Is(err, apperr.ErrStorageUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Storage unavailable"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
