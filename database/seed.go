package database

import (
	"log"

	"github.com/quantrananh2304/1682-server/model"

	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	admins := []model.User{
		{FirstName: "System", LastName: "Administrator", Email: "admin@1682.local", Role: model.UserRoleAdmin},
	}

	for _, admin := range admins {
		if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin:", admin.Email, "error:", err)
		}
	}

	// Gateway bank codes an order can be routed through.
	methods := []model.PaymentMethod{
		{Name: "VNPAYQR", Note: "Pay by QR code", Status: model.PaymentMethodStatusActive},
		{Name: "VNBANK", Note: "Domestic ATM card", Status: model.PaymentMethodStatusActive},
		{Name: "INTCARD", Note: "International card", Status: model.PaymentMethodStatusActive},
		{Name: "NCB", Note: "NCB bank", Status: model.PaymentMethodStatusActive},
	}

	for _, method := range methods {
		if err := db.Where(model.PaymentMethod{Name: method.Name}).FirstOrCreate(&method).Error; err != nil {
			log.Println("failed to seed payment method:", method.Name, "error:", err)
		}
	}
}
