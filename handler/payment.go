package handler

import (
	"errors"
	"fmt"

	"github.com/quantrananh2304/1682-server/constants"
	"github.com/quantrananh2304/1682-server/helper"
	"github.com/quantrananh2304/1682-server/logger"
	"github.com/quantrananh2304/1682-server/model"
	"github.com/quantrananh2304/1682-server/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder opens a PENDING payment for a book and hands back the signed
// gateway redirect. The user completes payment out-of-band; the order only
// moves again through UpdateOrderStatus or the reconciliation sweep.
func CreateOrder(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("CreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	book, err := helper.GetBookByID(input.BookID)
	if errors.Is(err, helper.ErrBookNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOK_NOT_EXIST, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if book.IsHidden {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOK_NOT_EXIST, nil)
	}

	purchased, err := helper.HasPurchasedBook(book.ID, claims.UserID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if purchased {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USER_ALR_PURCHASED_BOOK, nil)
	}

	method, err := helper.GetPaymentMethodByID(input.Method)
	if errors.Is(err, helper.ErrPaymentMethodNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_METHOD_NOT_EXIST, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payment, err := helper.CreateOrderForBook(claims.UserID, method.ID, book)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.RecordEvent(model.EventSchemaPayment, model.EventActionCreate, &payment.ID, claims.UserID, "/payment/create-order")

	vnpay := NewVNPayFromEnv()
	vnpUrl, err := vnpay.BuildPaymentURL(model.PaymentRequest{
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		OrderInfo: fmt.Sprintf("User %d paid for order %d", claims.UserID, payment.ID),
		BankCode:  method.Name,
		IPAddr:    c.IP(),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"vnpUrl":    vnpUrl,
		"paymentId": payment.ID,
	})
}

func CreateOrderForSubscription(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("CreateOrderForSubscription").(model.CreateSubscriptionOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	method, err := helper.GetPaymentMethodByID(input.Method)
	if errors.Is(err, helper.ErrPaymentMethodNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_METHOD_NOT_EXIST, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payment, err := helper.CreateOrderForSubscription(claims.UserID, method.ID, input.Amount, model.Currency(input.Currency))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.RecordEvent(model.EventSchemaPayment, model.EventActionCreate, &payment.ID, claims.UserID, "/payment/create-order-for-subscription")

	vnpay := NewVNPayFromEnv()
	vnpUrl, err := vnpay.BuildPaymentURL(model.PaymentRequest{
		Amount:   payment.Amount,
		Currency: payment.Currency,
		OrderInfo: fmt.Sprintf("{userId:%d,paymentId:%d,validTime:%d},amount:%s",
			claims.UserID, payment.ID, input.ValidTime, payment.Amount),
		BankCode: method.Name,
		IPAddr:   c.IP(),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"vnpUrl":    vnpUrl,
		"paymentId": payment.ID,
	})
}

// UpdateOrderStatus finalizes a PENDING payment. The transition is a
// conditional update, so a concurrent sweep or duplicate callback loses
// cleanly with a conflict instead of overwriting a terminal state.
func UpdateOrderStatus(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	paymentID, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("UpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	status := model.PaymentStatus(input.Status)

	payment, err := helper.GetPaymentByID(paymentID)
	if errors.Is(err, helper.ErrPaymentNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_EXIST, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Reject before any state change: a subscription confirmation is useless
	// without knowing how many months were bought.
	if payment.PaymentType == model.PaymentTypeSubscriptionPlan &&
		status == model.PaymentStatusSuccess && input.ValidTime < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALID_TIME_REQUIRED, nil)
	}

	updated, err := helper.TransitionPaymentStatus(paymentID, status, claims.UserID)
	switch {
	case errors.Is(err, helper.ErrPaymentNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_EXIST, nil)
	case errors.Is(err, helper.ErrPaymentFinalized):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.PAYMENT_ALREADY_FINALIZED, nil)
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if status == model.PaymentStatusSuccess {
		if err := helper.DispatchEntitlement(updated, input.ValidTime); err != nil {
			// The payment stays SUCCESS: the money moved. The grant has to be
			// retried operationally, so this surfaces as an internal error.
			logger.Errorw("entitlement grant failed", "paymentId", updated.ID, "error", err)
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ENTITLEMENT_GRANT_FAILED, err)
		}
	}

	helper.RecordEvent(model.EventSchemaPayment, model.EventActionUpdate, &updated.ID, claims.UserID, "/payment/update-order-status")

	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func GetListPayment(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if claims.Role != model.UserRoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_ONLY, nil)
	}

	filter, ok := c.Locals("PaymentListFilter").(model.PaymentListFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	result, err := helper.GetListPayment(filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.RecordEvent(model.EventSchemaPayment, model.EventActionRead, nil, claims.UserID, "/payment/list")

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func GetListPaymentForAuthor(c *fiber.Ctx) error {
	claims, err := helper.GetUserClaims(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if claims.Role != model.UserRoleAuthor {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.AUTHOR_ONLY, nil)
	}

	filter, ok := c.Locals("PaymentListFilter").(model.PaymentListFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	books, err := helper.GetBookListByUserID(claims.UserID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	bookIDs := make([]uint, 0, len(books))
	for _, book := range books {
		bookIDs = append(bookIDs, book.ID)
	}

	result, err := helper.GetListPaymentForAuthor(bookIDs, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.RecordEvent(model.EventSchemaPayment, model.EventActionRead, nil, claims.UserID, "/payment/list-for-author")

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
