package router

import (
	"github.com/quantrananh2304/1682-server/handler"
	"github.com/quantrananh2304/1682-server/middleware"
	"github.com/quantrananh2304/1682-server/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	payment := v1.Group("/payment", logger.New())
	payment.Post("/payment-method", middleware.Protected(), validate.CreatePaymentMethod(), handler.CreatePaymentMethod)
	payment.Get("/available-payment-method", middleware.Protected(), handler.GetAvailablePaymentMethods)
	payment.Patch("/payment-method/:methodId/status", middleware.Protected(), validate.GetById("methodId"), handler.TogglePaymentMethodStatus)

	payment.Post("/create-order", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	payment.Post("/create-order-for-subscription", middleware.Protected(), validate.CreateOrderForSubscription(), handler.CreateOrderForSubscription)
	payment.Put("/:paymentId/status", middleware.Protected(), validate.UpdateOrderStatus("paymentId"), handler.UpdateOrderStatus)

	payment.Get("/list", middleware.Protected(), validate.GetListPayment(), handler.GetListPayment)
	payment.Get("/list-for-author", middleware.Protected(), validate.GetListPayment(), handler.GetListPaymentForAuthor)
}
