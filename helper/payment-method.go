package helper

import (
	"errors"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"

	"gorm.io/gorm"
)

var ErrPaymentMethodNotFound = errors.New("payment method does not exist")

func GetPaymentMethodByID(methodID uint) (*model.PaymentMethod, error) {
	var method model.PaymentMethod
	err := database.DB.First(&method, methodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// GetPaymentMethodByName matches regardless of status: an inactive method
// still blocks reuse of its name.
func GetPaymentMethodByName(name string) (*model.PaymentMethod, error) {
	var method model.PaymentMethod
	err := database.DB.Where("name = ?", name).First(&method).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func GetAvailablePaymentMethods() ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	err := database.DB.
		Where("status = ?", model.PaymentMethodStatusActive).
		Order("name asc").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}
