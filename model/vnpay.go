package model

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	BaseURL    string
	ReturnURL  string
	Locale     string
}

type PaymentRequest struct {
	Amount    string   `json:"amount"` // decimal string, whole currency units
	Currency  Currency `json:"currency"`
	OrderInfo string   `json:"orderInfo"`
	BankCode  string   `json:"bankCode"`
	IPAddr    string   `json:"ipAddr"`
}
