package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/chat"
	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/domain"
)

// ChatHandler trata as rotas de conversas (protegido).
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler constrói o handler de chat.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir conversa com outro usuário
// @Tags         chats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenChatRequest  true  "other_user_id"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chats [post]
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.OpenChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Open(userID, in.OtherUserID)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "other_user_id inválido"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Enviar mensagem
// @Description  No plano gratuito vale o limite diário de mensagens; o
//
//	contador zera na virada do dia.
//
// @Tags         chats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conversa"
// @Param        body  body  dto.SendMessageRequest  true  "text"
// @Success      201   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/chats/{id}/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Send(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text é obrigatório"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "você não participa desta conversa"})
		case domain.ErrQuotaExceeded:
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "DAILY_LIMIT", Message: "limite diário de mensagens do plano atingido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMessages godoc
// @Summary      Listar mensagens de uma conversa
// @Tags         chats
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID da conversa"
// @Param        limit   query  int     false  "Tamanho da página"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {array}   dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chats/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListMessages(GetUserID(c), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversa não encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "você não participa desta conversa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListChats godoc
// @Summary      Listar minhas conversas
// @Tags         chats
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChatResponse
// @Router       /api/chats [get]
func (h *ChatHandler) ListChats(c *fiber.Ctx) error {
	list, err := h.uc.ListChats(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
