package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/Sujal20805/Riddler/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const userContextKey = "currentUser"

// RequireAuth verifies the bearer token and loads the authenticated user
// onto the request context. The 401 message distinguishes missing, invalid
// and expired credentials.
func RequireAuth(tokens service.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		userID, err := tokens.Parse(raw)
		if err != nil {
			message := "Not authorized, token failed (invalid)"
			if errors.Is(err, service.ErrTokenExpired) {
				message = "Not authorized, token expired"
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: message})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, user not found"})
				return
			}
			log.Error().Err(err).Uint("userID", userID).Msg("RequireAuth: failed to load user")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(ctx *gin.Context) (*model.User, bool) {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
