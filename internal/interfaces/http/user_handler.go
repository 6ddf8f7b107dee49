package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/palco-app/palco-api/internal/application/dto"
	"github.com/palco-app/palco-api/internal/application/user"
	"github.com/palco-app/palco-api/internal/domain"
)

// UserHandler trata perfil, plano, notificações e rotas de admin (protegido).
type UserHandler struct {
	uc *user.UseCase
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *user.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetMe godoc
// @Summary      Meus dados
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	out, err := h.uc.GetMe(GetUserID(c))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Atualizar perfil de artista
// @Description  No plano gratuito a lista de gêneros é limitada.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "bio, genres, minimum_cache"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users/me/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrQuotaExceeded {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PLAN_LIMIT", Message: "limite de gêneros do plano atingido"})
		}
		return userError(c, err)
	}
	return c.JSON(out)
}

// GetProfile godoc
// @Summary      Perfil público de um artista
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do artista"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Params("id"))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

// UpgradePlan godoc
// @Summary      Migrar para o plano pago
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/me/plan/upgrade [post]
func (h *UserHandler) UpgradePlan(c *fiber.Ctx) error {
	out, err := h.uc.UpgradePlan(GetUserID(c))
	if err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "o usuário já está no plano pago"})
		}
		return userError(c, err)
	}
	return c.JSON(out)
}

// ListNotifications godoc
// @Summary      Listar minhas notificações
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *UserHandler) ListNotifications(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListNotifications(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// MarkNotificationSeen godoc
// @Summary      Marcar notificação como vista
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID da notificação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/seen [post]
func (h *UserHandler) MarkNotificationSeen(c *fiber.Ctx) error {
	if err := h.uc.MarkNotificationSeen(GetUserID(c), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListUsers godoc
// @Summary      Listar usuários (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListUsers(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ResetCredits godoc
// @Summary      Redefinir créditos de um usuário (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/credits/reset [post]
func (h *UserHandler) ResetCredits(c *fiber.Ctx) error {
	out, err := h.uc.ResetCredits(c.Params("id"))
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(out)
}

// ChangePlan godoc
// @Summary      Trocar o plano de um usuário (admin)
// @Description  Redefine o saldo de créditos conforme o plano de destino.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.ChangePlanRequest  true  "plan_id"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/plan [put]
func (h *UserHandler) ChangePlan(c *fiber.Ctx) error {
	var in dto.ChangePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.ChangePlan(c.Params("id"), in.PlanID)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plano inválido"})
		}
		return userError(c, err)
	}
	return c.JSON(out)
}

// userError mapeia os erros de domínio comuns das rotas de usuário.
func userError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUserNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuário não encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado ao recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
