package handler

import (
	"github.com/gin-gonic/gin"

	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/pkg/response"
)

// MustGetUserID extrai o user_id injetado pelo middleware JWT.
// Quando ok=false a resposta 401 já foi escrita; o chamador deve
// apenas retornar.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "não autenticado")
		return "", false
	}
	return s, true
}

// MustGetRole extrai o papel do usuário autenticado
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "não autenticado")
		return "", false
	}
	return s, true
}

// GetTeamID equipe do usuário autenticado; vazio para o admin geral
func GetTeamID(c *gin.Context) string {
	v, exists := c.Get("team_id")
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}

// isAdmin o papel corrente enxerga todas as equipes
func isAdmin(c *gin.Context) bool {
	v, _ := c.Get("role")
	s, _ := v.(string)
	return s == model.RoleAdmin
}
