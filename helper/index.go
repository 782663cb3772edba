package helper

import (
	"errors"

	"github.com/quantrananh2304/1682-server/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type UserClaims struct {
	UserID uint
	Role   model.UserRole
}

// GetUserClaims reads the identity the auth middleware stashed in locals.
func GetUserClaims(c *fiber.Ctx) (UserClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return UserClaims{}, errors.New("missing token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return UserClaims{}, errors.New("invalid token claims")
	}

	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return UserClaims{}, errors.New("invalid userId claim")
	}

	role, _ := claims["role"].(string)

	return UserClaims{
		UserID: uint(userID),
		Role:   model.UserRole(role),
	}, nil
}
