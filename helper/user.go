package helper

import (
	"errors"
	"time"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user does not exist")

func GetUserByID(userID uint) (*model.User, error) {
	var user model.User
	err := database.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExtendUserSubscription adds validTime months on top of the user's current
// validUntil, so buying twice stacks instead of resetting. A user without a
// subscription starts counting from now. Plain users are promoted to PREMIUM.
func ExtendUserSubscription(userID uint, validTime int) error {
	user, err := GetUserByID(userID)
	if err != nil {
		return err
	}

	base := time.Now()
	if user.SubscriptionValidUntil != nil {
		base = *user.SubscriptionValidUntil
	}
	validUntil := base.AddDate(0, validTime, 0)

	updates := map[string]interface{}{
		"subscription_valid_until": validUntil,
	}
	if user.Role == model.UserRoleUser {
		updates["role"] = model.UserRolePremium
	}

	return database.DB.Model(&model.User{}).Where("id = ?", userID).Updates(updates).Error
}
