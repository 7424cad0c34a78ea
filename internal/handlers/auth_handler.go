package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gimnasioapp/gym-api/internal/config"
	"github.com/gimnasioapp/gym-api/internal/mailer"
	"github.com/gimnasioapp/gym-api/internal/middleware"
	"github.com/gimnasioapp/gym-api/internal/models"
	"github.com/gimnasioapp/gym-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	mail   *mailer.Mailer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, mail *mailer.Mailer) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, mail: mail}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	RePassword string `json:"re_password" binding:"required,eqfield=Password"`
}

type ActivationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordConfirmRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Token         string `json:"token" binding:"required"`
	NewPassword   string `json:"new_password" binding:"required,min=8"`
	ReNewPassword string `json:"re_new_password" binding:"required,eqfield=NewPassword"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "El dominio del correo no parece válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	token := uuid.NewString()

	user := models.User{
		Email:           email,
		PasswordHash:    string(hashed),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		IsActive:        true,
		ActivationToken: &token,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	// Confirmation mail goes out through the (possibly console) backend.
	_ = h.mail.Send(
		user.Email,
		"Confirma tu cuenta",
		fmt.Sprintf("Hola %s, confirma tu cuenta con el código: %s", user.FirstName, token),
	)

	c.JSON(http.StatusCreated, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

func (h *AuthHandler) Activate(c *gin.Context) {
	var req ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_activation_token"})
		return
	}

	if user.ActivationToken == nil || *user.ActivationToken != req.Token {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_activation_token"})
		return
	}

	user.IsActive = true
	user.ActivationToken = nil
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_activate"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ? AND is_active = ?", email, true).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	access, err := h.generateToken(&user, "access", time.Duration(h.config.AccessTokenMin)*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	refresh, err := h.generateToken(&user, "refresh", time.Duration(h.config.RefreshTokenMin)*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  access,
		"refresh": refresh,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	claims, err := middleware.ParseToken(req.Refresh, h.config.JWTSecret)
	if err != nil || claims.TokenType != "refresh" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_refresh_token"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ? AND is_active = ?", claims.UserID, true).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		return
	}

	access, err := h.generateToken(&user, "access", time.Duration(h.config.AccessTokenMin)*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Always 204: the response must not reveal whether the account exists.
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err == nil {
		token := uuid.NewString()
		user.ResetToken = &token
		if err := h.db.Save(&user).Error; err == nil {
			_ = h.mail.Send(
				user.Email,
				"Restablecer contraseña",
				fmt.Sprintf("Usa este código para restablecer tu contraseña: %s", token),
			)
		}
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ResetPasswordConfirm(c *gin.Context) {
	var req ResetPasswordConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reset_token"})
		return
	}

	if user.ResetToken == nil || *user.ResetToken != req.Token {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_reset_token"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user.PasswordHash = string(hashed)
	user.ResetToken = nil
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_reset_password"})
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	claims := middleware.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		IsStaff:   user.IsStaff || user.IsSuperuser,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
