package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/media"
	"github.com/palco-app/palco-api/internal/domain"
)

// MediaHandler trata as rotas de mídia (protegido).
type MediaHandler struct {
	uc *media.UseCase
}

// NewMediaHandler constrói o handler de mídia.
func NewMediaHandler(uc *media.UseCase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar mídia enviada ao blob store
// @Description  O upload do arquivo acontece fora; aqui entram URL e tamanho
//
//	contra a quota de armazenamento do plano.
//
// @Tags         media
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMediaRequest  true  "file_name, url, size_mb"
// @Success      201   {object}  dto.MediaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/media [post]
func (h *MediaHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.RegisterMediaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Register(userID, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file_name, url e size_mb > 0 são obrigatórios"})
		case domain.ErrQuotaExceeded:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "STORAGE_LIMIT", Message: "quota de armazenamento do plano atingida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Remover mídia
// @Tags         media
// @Security     Bearer
// @Param        id  path  string  true  "ID da mídia"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/media/{id} [delete]
func (h *MediaHandler) Remove(c *fiber.Ctx) error {
	err := h.uc.Remove(GetUserID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mídia não encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "a mídia pertence a outro usuário"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar minha mídia
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MediaResponse
// @Router       /api/media [get]
func (h *MediaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Storage godoc
// @Summary      Uso de armazenamento
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StorageResponse
// @Router       /api/media/storage [get]
func (h *MediaHandler) Storage(c *fiber.Ctx) error {
	out, err := h.uc.Storage(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
