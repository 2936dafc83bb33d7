package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"luxride/internal/models"
)

// Context keys set by RequireAuth.
const (
	ContextUserID   = "user_id"
	ContextUserType = "user_type"
)

type Claims struct {
	UserID   string          `json:"user_id"`
	UserType models.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// Auth issues and checks HS256 session tokens.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

func NewAuth(secret string, ttl time.Duration) *Auth {
	return &Auth{secret: []byte(secret), ttl: ttl}
}

func (a *Auth) GenerateToken(userID string, userType models.UserType) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *Auth) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// RequireAuth ensures a valid bearer token is present
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireUserType ensures the token is valid and belongs to a user of type t.
func (a *Auth) RequireUserType(t models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}
		if UserType(c) != t {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// authenticate stores the token's claims on c, or aborts with 401.
func (a *Auth) authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	claims, err := a.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserType, claims.UserType)
	return true
}

// UserID returns the authenticated user's id, or "" outside RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func UserType(c *gin.Context) models.UserType {
	v, _ := c.Get(ContextUserType)
	t, _ := v.(models.UserType)
	return t
}
