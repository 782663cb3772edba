package model

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailure PaymentStatus = "FAILURE"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailure
}

type PaymentType string

const (
	PaymentTypeBook             PaymentType = "BOOK"
	PaymentTypeSubscriptionPlan PaymentType = "SUBSCRIPTION_PLAN"
)

type Currency string

const CurrencyVND Currency = "VND"

type PaymentSort string

const (
	PaymentSortAmountAsc       PaymentSort = "AMOUNT_ASC"
	PaymentSortAmountDesc      PaymentSort = "AMOUNT_DESC"
	PaymentSortDateCreatedAsc  PaymentSort = "DATE_CREATED_ASC"
	PaymentSortDateCreatedDesc PaymentSort = "DATE_CREATED_DESC"
)

// Payment is an order: a record of intent to pay, tracked through
// PENDING/SUCCESS/FAILURE. Amount is fixed at creation and status is only
// ever mutated through helper.TransitionPaymentStatus. Rows are never deleted.
type Payment struct {
	DTO
	PublicCode  string        `gorm:"unique;size:20" json:"publicCode"`
	MethodID    uint          `json:"methodId"`
	Method      PaymentMethod `gorm:"foreignKey:MethodID" json:"method"`
	Amount      string        `json:"amount"`
	Currency    Currency      `json:"currency"`
	Status      PaymentStatus `json:"status"`
	PaymentType PaymentType   `json:"paymentType"`
	BookID      *uint         `json:"bookId,omitempty"` // set iff PaymentType is BOOK
	Book        *Book         `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedByID uint          `json:"createdById"`
	CreatedBy   User          `gorm:"foreignKey:CreatedByID" json:"createdBy"`
	UpdatedBy   uint          `json:"updatedBy"`
}

type CreateOrderInput struct {
	Method uint `json:"method" validate:"required"`
	BookID uint `json:"bookId" validate:"required"`
}

type CreateSubscriptionOrderInput struct {
	Method    uint   `json:"method" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	Currency  string `json:"currency" validate:"required"`
	ValidTime int    `json:"validTime" validate:"required,min=1"`
}

type UpdateOrderStatusInput struct {
	Status    string `json:"status" validate:"required"`
	ValidTime int    `json:"validTime"`
}

type PaymentListFilter struct {
	Page        int
	Limit       int
	Sort        PaymentSort
	Keyword     string
	Status      []PaymentStatus
	Currency    []Currency
	PaymentType []PaymentType
}

type PaymentListResult struct {
	Payments  []Payment `json:"payments"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	TotalPage int       `json:"totalPage"`
}
