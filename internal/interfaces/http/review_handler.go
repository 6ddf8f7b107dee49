package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/review"
	"github.com/palco-app/palco-api/internal/domain"
)

// ReviewHandler trata as rotas de avaliações (protegido).
type ReviewHandler struct {
	uc *review.UseCase
}

// NewReviewHandler constrói o handler de avaliações.
func NewReviewHandler(uc *review.UseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Submit godoc
// @Summary      Avaliar participante de evento concluído
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitReviewRequest  true  "event_id, reviewed_id, rating (1..5), comment"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.SubmitReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), userID, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rating deve estar entre 1 e 5 e reviewed_id não pode ser o avaliador"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento não encontrado"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EVENT_NOT_DONE", Message: "o evento ainda não foi concluído"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "avaliador e avaliado devem ser as duas pontas do evento"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVIEWED", Message: "este evento já foi avaliado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByUser godoc
// @Summary      Listar avaliações recebidas por um usuário
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do usuário avaliado"
// @Param        limit   query  int     false  "Tamanho da página"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/users/{id}/reviews [get]
func (h *ReviewHandler) ListByUser(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListByUser(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
