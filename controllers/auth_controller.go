package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

type AuthController struct {
	userRepo *repositories.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{userRepo: repositories.NewUserRepository()}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All fields required"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Println("Hashing error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Server error"})
		return
	}

	_, err = ctrl.userRepo.Create(c.Request.Context(), req.FullName, req.Email, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			c.JSON(409, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		log.Println("DB error on insert:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to register user"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "User registered successfully"})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email and password required"})
		return
	}

	// One message for both unknown email and wrong password so the endpoint
	// cannot be used to enumerate accounts.
	user, err := ctrl.userRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Println("DB error on login:", err)
		}
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Println("Token generation error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(200, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
		},
	})
}
