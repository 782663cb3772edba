package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quantrananh2304/1682-server/constants"
	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/helper"
	"github.com/quantrananh2304/1682-server/logger"
	"github.com/quantrananh2304/1682-server/model"
	"github.com/quantrananh2304/1682-server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

const activeMethodsCacheKey = "payment:active-methods"

func invalidateMethodCache() {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Del(context.Background(), activeMethodsCacheKey).Err(); err != nil {
		logger.Errorw("failed to invalidate payment method cache", "error", err)
	}
}

func CreatePaymentMethod(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if claims.Role != model.UserRoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY, nil)
	}

	input, ok := c.Locals("CreatePaymentMethod").(model.CreatePaymentMethodInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	if _, err := helper.GetPaymentMethodByName(input.Name); err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.PAYMENT_METHOD_EXISTED, nil)
	} else if !errors.Is(err, helper.ErrPaymentMethodNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	method := new(model.PaymentMethod)
	copier.Copy(&method, &input)
	method.Status = model.PaymentMethodStatusActive
	method.Discount = 0
	method.UpdatedBy = claims.UserID

	if err := database.DB.Create(&method).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	invalidateMethodCache()
	helper.RecordEvent(model.EventSchemaPaymentMethod, model.EventActionCreate, &method.ID, claims.UserID, "/payment/create-payment-method")

	return utils.SuccessResponse(c, fiber.StatusCreated, method)
}

func GetAvailablePaymentMethods(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	if database.Redis != nil {
		cached, err := database.Redis.Get(context.Background(), activeMethodsCacheKey).Result()
		if err == nil {
			var methods []model.PaymentMethod
			if json.Unmarshal([]byte(cached), &methods) == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, methods)
			}
		}
	}

	methods, err := helper.GetAvailablePaymentMethods()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if database.Redis != nil {
		if payload, err := json.Marshal(methods); err == nil {
			if err := database.Redis.Set(context.Background(), activeMethodsCacheKey, payload, 5*time.Minute).Err(); err != nil {
				logger.Errorw("failed to cache payment methods", "error", err)
			}
		}
	}

	helper.RecordEvent(model.EventSchemaPaymentMethod, model.EventActionRead, nil, claims.UserID, "/payment/available-payment-method")

	return utils.SuccessResponse(c, fiber.StatusOK, methods)
}

// TogglePaymentMethodStatus flips a method between ACTIVE and INACTIVE.
// Methods are never deleted.
func TogglePaymentMethodStatus(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if claims.Role != model.UserRoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY, nil)
	}

	methodID, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	method, err := helper.GetPaymentMethodByID(methodID)
	if errors.Is(err, helper.ErrPaymentMethodNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_METHOD_NOT_EXIST, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newStatus := model.PaymentMethodStatusInactive
	if method.Status == model.PaymentMethodStatusInactive {
		newStatus = model.PaymentMethodStatusActive
	}

	if err := database.DB.Model(&method).Updates(map[string]interface{}{
		"status":     newStatus,
		"updated_by": claims.UserID,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	invalidateMethodCache()
	helper.RecordEvent(model.EventSchemaPaymentMethod, model.EventActionUpdate, &method.ID, claims.UserID, "/payment/payment-method-status")

	return utils.SuccessResponse(c, fiber.StatusOK, method)
}
