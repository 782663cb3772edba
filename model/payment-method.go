package model

type PaymentMethodStatus string

const (
	PaymentMethodStatusActive   PaymentMethodStatus = "ACTIVE"
	PaymentMethodStatusInactive PaymentMethodStatus = "INACTIVE"
)

type PaymentMethod struct {
	DTO
	Name      string              `gorm:"unique;size:50" json:"name"`
	Note      string              `gorm:"size:255" json:"note"`
	Status    PaymentMethodStatus `json:"status"`
	Discount  float64             `json:"discount"`
	UpdatedBy uint                `json:"updatedBy"`
}

type CreatePaymentMethodInput struct {
	Name string `json:"name" validate:"required,max=50"`
	Note string `json:"note" validate:"max=255"`
}
