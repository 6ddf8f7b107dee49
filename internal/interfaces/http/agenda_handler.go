package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/agenda"
	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/domain"
)

// AgendaHandler trata as rotas de agenda do artista (protegido).
type AgendaHandler struct {
	uc *agenda.UseCase
}

// NewAgendaHandler constrói o handler de agenda.
func NewAgendaHandler(uc *agenda.UseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// AddBlock godoc
// @Summary      Criar bloco de agenda
// @Tags         agenda
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBlockRequest  true  "start_date, end_date, status (FREE | BUSY), notes"
// @Success      201   {object}  dto.BlockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/agenda/blocks [post]
func (h *AgendaHandler) AddBlock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.AddBlockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddBlock(c.Context(), userID, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status deve ser FREE ou BUSY"})
		case domain.ErrInvalidWindow:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "end_date deve ser depois de start_date"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "apenas artistas têm agenda"})
		case domain.ErrQuotaExceeded:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PLAN_LIMIT", Message: "limite de blocos manuais do plano atingido"})
		case domain.ErrOverlap:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVERLAP", Message: "a janela sobrepõe um bloco existente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveBlock godoc
// @Summary      Remover bloco manual
// @Description  Blocos BUSY ligados a um evento são protegidos.
// @Tags         agenda
// @Security     Bearer
// @Param        id  path  string  true  "ID do bloco"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/agenda/blocks/{id} [delete]
func (h *AgendaHandler) RemoveBlock(c *fiber.Ctx) error {
	err := h.uc.RemoveBlock(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bloco não encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "o bloco pertence a outro artista"})
		case domain.ErrProtectedBlock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROTECTED_BLOCK", Message: "bloco gerado por aprovação não pode ser removido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBlocks godoc
// @Summary      Listar meus blocos de agenda
// @Tags         agenda
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BlockResponse
// @Router       /api/agenda/blocks [get]
func (h *AgendaHandler) ListBlocks(c *fiber.Ctx) error {
	list, err := h.uc.ListBlocks(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CheckAvailability godoc
// @Summary      Consultar disponibilidade de um artista
// @Tags         agenda
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true  "ID do artista"
// @Param        start  query  string  true  "Início (RFC 3339)"
// @Param        end    query  string  true  "Fim (RFC 3339)"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/artists/{id}/availability [get]
func (h *AgendaHandler) CheckAvailability(c *fiber.Ctx) error {
	artistID := c.Params("id")
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start inválido (RFC 3339)"})
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end inválido (RFC 3339)"})
	}
	available, err := h.uc.CheckAvailable(artistID, start, end)
	if err != nil {
		if err == domain.ErrInvalidWindow {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "end deve ser depois de start"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AvailabilityResponse{Available: available})
}
