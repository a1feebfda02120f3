package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	"github.com/hungrypaws/hungry-paws-api/internal/auth"
	"github.com/hungrypaws/hungry-paws-api/internal/config"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/httpresp"
	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
	"github.com/hungrypaws/hungry-paws-api/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db          *gorm.DB
	config      *config.Config
	audit       audit.Recorder
	revocations auth.Revocations

	emailCheck func(string) bool
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	recorder audit.Recorder,
	revocations auth.Revocations,
) *AuthHandler {
	return &AuthHandler{
		db:          db,
		config:      cfg,
		audit:       recorder,
		revocations: revocations,
		emailCheck:  validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type SignUpRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LogInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All fields are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailCheck(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Server error.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Server error.")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		Contact:      req.Contact,
		PasswordHash: string(hashed),
		IsAdmin:      req.IsAdmin,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// the unique index closes the race the pre-check above leaves open
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_already_registered", "Email already registered.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Server error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_signed_up",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, gin.H{})
}

func (h *AuthHandler) LogIn(c *gin.Context) {
	var req LogInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Server error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Server error.")
		return
	}

	redirect := "/user"
	if user.IsAdmin {
		redirect = "/admin"
	}

	c.SetCookie(
		middleware.AuthCookieName,
		token,
		int(tokenTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	httpresp.OK(c, gin.H{
		"message":  "Login successful",
		"redirect": redirect,
		"token":    token,
		"user": gin.H{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
			"isAdmin":  user.IsAdmin,
		},
	})
}

func (h *AuthHandler) LogOut(c *gin.Context) {
	if tokenString, err := c.Cookie(middleware.AuthCookieName); err == nil && tokenString != "" {
		h.revokeToken(c, tokenString)
	}

	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// revokeToken blocklists the token's jti until its natural expiry. A token
// that no longer parses needs no revocation.
func (h *AuthHandler) revokeToken(c *gin.Context, tokenString string) {
	if h.revocations == nil {
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	tokenID, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if tokenID == "" || exp == 0 {
		return
	}

	_ = h.revocations.Revoke(c.Request.Context(), tokenID, time.Unix(int64(exp), 0))
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"isAdmin": user.IsAdmin,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
