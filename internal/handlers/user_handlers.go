package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/auth"
	"github.com/01moynul/flordelima-golang/internal/middleware"
)

//
// --- Auth Handlers ---
//

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Define Input ---
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Create the account ---
	user, err := h.Users.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// 3. --- Success ---
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

// Login checks the credentials and sets the session cookie.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := h.Users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.Tokens.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

func (h *Handlers) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the logged-in user from the token claims.
func (h *Handlers) Me(c *gin.Context) {
	claims := middleware.Claims(c)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    claims.ID,
		"email": claims.Email,
		"name":  claims.Name,
	}})
}

func (h *Handlers) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", h.SecureCookies, true)
}
