package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxride/internal/middleware"
	"luxride/internal/models"
	"luxride/internal/services"
)

type AuthController struct {
	accounts *services.Accounts
	auth     *middleware.Auth
}

func NewAuthController(accounts *services.Accounts, auth *middleware.Auth) *AuthController {
	return &AuthController{accounts: accounts, auth: auth}
}

// SignupUser creates the account and logs the new user straight in.
func (ac *AuthController) SignupUser(c *gin.Context) {
	var input services.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	user, err := ac.accounts.Signup(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ac.auth.GenerateToken(user.ID, user.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (ac *AuthController) LoginUser(c *gin.Context) {
	var body struct {
		Identifier string          `json:"identifier"`
		Email      string          `json:"email"`
		Password   string          `json:"password"`
		UserType   models.UserType `json:"user_type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if body.Identifier == "" {
		body.Identifier = body.Email
	}

	user, err := ac.accounts.Login(c.Request.Context(), body.Identifier, body.Password, body.UserType)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ac.auth.GenerateToken(user.ID, user.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user, err := ac.accounts.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	user, err := ac.accounts.UpdateProfile(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) GetDriverProfile(c *gin.Context) {
	profile, err := ac.accounts.DriverProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": profile})
}
