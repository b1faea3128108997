package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexID identificador que pode chegar como número ou texto no JSON.
// É sempre normalizado para a forma textual canônica antes de qualquer
// comparação.
type FlexID string

// UnmarshalJSON aceita "123", 123 ou null
func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("identificador inválido: %w", err)
		}
		*f = FlexID(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identificador inválido: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// MarshalJSON serializa sempre como texto
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String forma canônica do identificador
func (f FlexID) String() string { return string(f) }

// ── Paginação ──

// PaginationRequest parâmetros comuns de paginação
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage número da página com valor padrão
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize tamanho da página com valor padrão
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset deslocamento correspondente
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}
