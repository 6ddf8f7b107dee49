package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/candidacy"
	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/domain"
)

// CandidacyHandler trata as rotas de candidaturas (protegido).
type CandidacyHandler struct {
	uc *candidacy.UseCase
}

// NewCandidacyHandler constrói o handler de candidaturas.
func NewCandidacyHandler(uc *candidacy.UseCase) *CandidacyHandler {
	return &CandidacyHandler{uc: uc}
}

// Apply godoc
// @Summary      Candidatar-se a um evento
// @Description  Consome um crédito do artista no plano gratuito. Rejeita
//
//	evento fechado, candidatura ativa duplicada e conflito de agenda.
//
// @Tags         candidacies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyRequest  true  "event_id"
// @Success      201   {object}  dto.CandidacyResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/candidacies [post]
func (h *CandidacyHandler) Apply(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.EventID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "event_id é obrigatório"})
	}
	out, err := h.uc.Apply(c.Context(), userID, in.EventID)
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "apenas artistas se candidatam"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento não encontrado"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EVENT_CLOSED", Message: "o evento não aceita candidaturas"})
		case domain.ErrAlreadyApplied:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_APPLIED", Message: "candidatura ativa já existe para este evento"})
		case domain.ErrUnavailable:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "agenda ocupada na janela do evento"})
		case domain.ErrInsufficientCredits:
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "NO_CREDITS", Message: "créditos esgotados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprovar candidatura
// @Description  Atômico: marca APROVADA, cria o bloco BUSY na agenda do
//
//	artista e, em SHOW, encerra o evento.
//
// @Tags         candidacies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da candidatura"
// @Success      200  {object}  dto.CandidacyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/candidacies/{id}/approve [post]
func (h *CandidacyHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return candidacyError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rejeitar candidatura
// @Tags         candidacies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da candidatura"
// @Success      200  {object}  dto.CandidacyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/candidacies/{id}/reject [post]
func (h *CandidacyHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return candidacyError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar a própria candidatura
// @Description  Apenas candidaturas PENDENTE. O crédito gasto não é devolvido.
// @Tags         candidacies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da candidatura"
// @Success      200  {object}  dto.CandidacyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/candidacies/{id}/cancel [post]
func (h *CandidacyHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return candidacyError(c, err)
	}
	return c.JSON(out)
}

// ListByEvent godoc
// @Summary      Listar candidaturas de um evento
// @Tags         candidacies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do evento"
// @Success      200  {array}   dto.CandidacyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id}/candidacies [get]
func (h *CandidacyHandler) ListByEvent(c *fiber.Ctx) error {
	list, err := h.uc.ListByEvent(GetUserID(c), c.Params("id"))
	if err != nil {
		return candidacyError(c, err)
	}
	return c.JSON(list)
}

// ListMine godoc
// @Summary      Listar minhas candidaturas
// @Tags         candidacies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CandidacyResponse
// @Router       /api/candidacies/mine [get]
func (h *CandidacyHandler) ListMine(c *fiber.Ctx) error {
	list, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// candidacyError mapeia os erros de domínio das operações de candidatura.
func candidacyError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidatura ou evento não encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado ao recurso"})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "candidatura não está PENDENTE"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EVENT_CLOSED", Message: "o evento não está mais aberto"})
	case domain.ErrUnavailable:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "agenda do artista ocupada na janela do evento"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
