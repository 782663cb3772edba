package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantrananh2304/1682-server/constants"
	"github.com/quantrananh2304/1682-server/model"
	"github.com/quantrananh2304/1682-server/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePaymentMethod() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentMethodInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("CreatePaymentMethod", input)
		return c.Next()
	}
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("CreateOrder", input)
		return c.Next()
	}
}

func CreateOrderForSubscription() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSubscriptionOrderInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// The gateway carries amounts in minor units; reject anything that
		// cannot be scaled exactly before any record is written.
		if _, err := utils.AmountToMinorUnits(input.Amount); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.AMOUNT_INVALID, err)
		}

		if model.Currency(input.Currency) != model.CurrencyVND {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CURRENCY_INVALID, nil)
		}

		c.Locals("CreateOrderForSubscription", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		paymentID, err := strconv.Atoi(params)
		if err != nil || paymentID < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
		}

		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		status := model.PaymentStatus(input.Status)
		if !status.IsTerminal() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_STATUS_INVALID, nil)
		}

		if input.ValidTime < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALID_TIME_INVALID, nil)
		}

		c.Locals("inputId", uint(paymentID))
		c.Locals("UpdateOrderStatus", input)
		return c.Next()
	}
}

func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

var validSorts = map[model.PaymentSort]bool{
	model.PaymentSortAmountAsc:       true,
	model.PaymentSortAmountDesc:      true,
	model.PaymentSortDateCreatedAsc:  true,
	model.PaymentSortDateCreatedDesc: true,
}

var validStatuses = map[model.PaymentStatus]bool{
	model.PaymentStatusPending: true,
	model.PaymentStatusSuccess: true,
	model.PaymentStatusFailure: true,
}

var validTypes = map[model.PaymentType]bool{
	model.PaymentTypeBook:             true,
	model.PaymentTypeSubscriptionPlan: true,
}

// GetListPayment parses the listing query string into a PaymentListFilter.
// Pagination is 1-indexed; filters are comma separated enum lists.
func GetListPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := model.PaymentListFilter{
			Page:    c.QueryInt("page", 1),
			Limit:   c.QueryInt("limit", 10),
			Keyword: c.Query("keyword"),
		}

		if filter.Page < 1 || filter.Limit < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil)
		}

		if raw := c.Query("sort"); raw != "" {
			sort := model.PaymentSort(raw)
			if !validSorts[sort] {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SORT_INVALID, nil)
			}
			filter.Sort = sort
		}

		for _, raw := range splitQueryList(c.Query("status")) {
			status := model.PaymentStatus(raw)
			if !validStatuses[status] {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_STATUS_INVALID, nil)
			}
			filter.Status = append(filter.Status, status)
		}

		for _, raw := range splitQueryList(c.Query("currency")) {
			currency := model.Currency(raw)
			if currency != model.CurrencyVND {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CURRENCY_INVALID, nil)
			}
			filter.Currency = append(filter.Currency, currency)
		}

		for _, raw := range splitQueryList(c.Query("paymentType")) {
			paymentType := model.PaymentType(raw)
			if !validTypes[paymentType] {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_STATUS_INVALID, nil)
			}
			filter.PaymentType = append(filter.PaymentType, paymentType)
		}

		c.Locals("PaymentListFilter", filter)
		return c.Next()
	}
}
