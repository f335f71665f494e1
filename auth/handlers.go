package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func LoginHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, token, err := svc.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete the operation"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":         user,
			"token":        token,
			"redirectPath": user.Role.RedirectPath(),
		})
	}
}

// tokenSubject resolves the caller's user id from the bearer token, if any.
func tokenSubject(c *gin.Context, svc *Service) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	claims, err := ValidateToken(svc.secret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}

// POST /auth/logout
// Logging out without a usable token is a no-op, matching a client that
// already dropped its session.
func LogoutHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if subject, ok := tokenSubject(c, svc); ok {
			if err := svc.SignOut(c.Request.Context(), subject); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete the operation"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// GET /auth/me
// The session is looked up by the caller's own token subject, so one
// client's login is never visible to another.
func MeHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := tokenSubject(c, svc)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": svc.CurrentUser(c.Request.Context(), subject)})
	}
}
