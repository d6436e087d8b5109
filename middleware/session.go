package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader là header mang sessionId giữa client và server
const SessionHeader = "X-Session-ID"

// SessionMiddleware gán sessionId cho mỗi request: dùng lại id client gửi lên
// nếu hợp lệ, ngược lại cấp id mới và trả về qua header.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(sessionId); err != nil {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)
		c.Writer.Header().Set(SessionHeader, sessionId)

		c.Next()
	}
}
