package Middleware

import (
	"net/http"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// PermissionCheckAdmin gates request management. Only admin accounts may
// approve or reject blood requests.
func PermissionCheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user_id, err := Token.ExtractTokenID(c)

		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Extraction")
			c.Abort()
			return
		}

		user, err := Models.GetUserByID(user_id)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized User Extraction")
			c.Abort()
			return
		}

		if user.IsAdmin {
			c.Next()
		} else {
			c.String(http.StatusForbidden, "Only admin users can manage requests")
			c.Abort()
		}
	}
}
