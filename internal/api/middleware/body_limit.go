package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/pkg/response"
)

// BodyLimit limita o tamanho do corpo aceito. Uploads de ICS para a
// prévia de feriados cabem folgados em 1MB.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, "corpo da requisição grande demais")
				return
			}
		}
	}
}
