package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type WebHandler struct {
	db *gorm.DB
}

func NewWebHandler(db *gorm.DB) *WebHandler {
	return &WebHandler{db: db}
}

func (h *WebHandler) LandingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// UserDashboard and AdminDashboard run behind WebAuth; an admin landing on
// /user is fine, a non-admin on /admin is bounced to their own dashboard.

func (h *WebHandler) UserDashboard(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "user.html", gin.H{
		"FullName": user.FullName,
		"Email":    user.Email,
	})
}

func (h *WebHandler) AdminDashboard(c *gin.Context) {
	if isAdmin := c.MustGet(middleware.ContextIsAdmin).(bool); !isAdmin {
		c.Redirect(http.StatusFound, "/user")
		c.Abort()
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"FullName": user.FullName,
		"Email":    user.Email,
	})
}

func (h *WebHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return nil, false
	}
	return &user, true
}
