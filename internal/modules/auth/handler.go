package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/middleware"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

// welcomeMailWait bounds how long signup waits to report emailSent.
const welcomeMailWait = 2 * time.Second

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/signup", h.signup)
	g.POST("/login", h.login)
	g.POST("/refresh", h.refresh)
	g.POST("/logout", h.logout)
	g.GET("/me", authMW, h.me)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Signup(&dto)
	if err != nil {
		if err == ErrEmailTaken {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	emailSent := h.svc.SendWelcome(result.User, welcomeMailWait)
	message := "User registered successfully"
	if !emailSent {
		message = "Registered, but email failed to send"
	}

	response.Created(c, gin.H{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"emailSent":    emailSent,
	}, message)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Login(&dto)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *Handler) refresh(c *gin.Context) {
	var dto RefreshDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	access, err := h.svc.Refresh(dto.RefreshToken)
	if err != nil {
		response.Unauthorized(c, ErrInvalidRefresh.Error())
		return
	}
	response.OK(c, gin.H{"accessToken": access})
}

// logout is stateless: clients drop their tokens, the server keeps no
// session state to revoke.
func (h *Handler) logout(c *gin.Context) {
	response.OKMsg(c, nil, "Logged out successfully")
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.Me(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, user)
}
