package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	sid, resp, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, resp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	sid := middleware.SessionID(c)
	if sid != "" {
		// Teardown failures do not keep the user signed in; the cookie
		// is cleared either way.
		_ = ctrl.service.Logout(c.Request.Context(), sid)
	}

	isProd := os.Getenv("APP_ENV") == "production"
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logout success.", nil)
}
