package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/service"
	"sobreaviso/backend/pkg/response"
)

// AuthHandler autenticação do painel administrativo
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login autentica e emite o par de tokens
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "dados de login inválidos")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, "falha ao autenticar")
		return
	}

	response.OK(c, tokens)
}

// Refresh troca um refresh token válido por um novo par
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refresh token ausente")
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, "falha ao renovar sessão")
		return
	}

	response.OK(c, tokens)
}

// Logout invalida o access token corrente
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ""
	if auth := c.GetHeader("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.InternalError(c, "falha ao encerrar sessão")
		return
	}
	response.NoContent(c)
}

// Me perfil do usuário autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "falha ao buscar perfil")
		return
	}

	response.OK(c, user)
}
