package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/services"
)

type AuthController struct {
	Sessions *services.SessionService
}

func NewAuthController(sessions *services.SessionService) *AuthController {
	return &AuthController{Sessions: sessions}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Login(c.Request.Context(), services.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Sessions.Register(c.Request.Context(), services.RegisterRequest{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// CookieLogin exchanges a backend session cookie for token ids, for clients
// that authenticated through the cookie flow.
func (h *AuthController) CookieLogin(c *gin.Context) {
	cookie := c.GetHeader("Cookie")
	if cookie == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session cookie required"})
		return
	}

	session, err := h.Sessions.CookieLogin(c.Request.Context(), cookie)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthController) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context(), tokenFromCtx(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

type RefreshInput struct {
	RefreshTokenID string `json:"refresh_token_id" binding:"required"`
}

func (h *AuthController) Refresh(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Refresh(c.Request.Context(), tokenFromCtx(c), input.RefreshTokenID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthController) Status(c *gin.Context) {
	session, err := h.Sessions.Status(c.Request.Context(), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
