package main

import (
	"log"

	"github.com/quantrananh2304/1682-server/config"
	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/helper"
	"github.com/quantrananh2304/1682-server/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartPaymentReconciler()
	defer helper.StopPaymentReconciler()
	helper.StartSubscriptionScheduler()
	defer helper.StopSubscriptionScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8002")))
}
