package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"github.com/quantrananh2304/1682-server/config"
	"github.com/quantrananh2304/1682-server/model"
	"github.com/quantrananh2304/1682-server/utils"
)

// VNPay builds the signed redirect URL for the gateway. The parameter set,
// minor-unit amount scaling, timestamp formats and the sorted-then-signed
// encoding are a byte-exact wire contract: the gateway rejects anything else.
type VNPay struct {
	Config model.VNPayConfig
}

func NewVNPay(cfg model.VNPayConfig) *VNPay {
	return &VNPay{Config: cfg}
}

// NewVNPayFromEnv wires the gateway credentials once at construction; the
// signing algorithm itself never touches ambient state.
func NewVNPayFromEnv() *VNPay {
	return NewVNPay(model.VNPayConfig{
		TmnCode:    config.Config("VNP_TMNCODE"),
		HashSecret: config.Config("VNP_HASHSECRET"),
		BaseURL:    config.Config("VNP_URL"),
		ReturnURL:  config.Config("APP_URL") + "/vnpay/return",
		Locale:     config.ConfigOr("VNP_LOCALE", "en"),
	})
}

// BuildPaymentURL returns the redirect URL the client browser follows to the
// gateway. No network call happens here.
func (v *VNPay) BuildPaymentURL(req model.PaymentRequest) (string, error) {
	amount, err := utils.AmountToMinorUnits(req.Amount)
	if err != nil {
		return "", err
	}

	now := time.Now()

	params := url.Values{}
	params.Add("vnp_Version", "2.1.0")
	params.Add("vnp_Command", "pay")
	params.Add("vnp_TmnCode", v.Config.TmnCode)
	params.Add("vnp_Locale", v.Config.Locale)
	params.Add("vnp_CurrCode", string(req.Currency))
	params.Add("vnp_TxnRef", now.Format("02150405")) // ddHHmmss
	params.Add("vnp_OrderInfo", req.OrderInfo)
	params.Add("vnp_OrderType", "other")
	params.Add("vnp_Amount", strconv.FormatInt(amount, 10))
	params.Add("vnp_ReturnUrl", v.Config.ReturnURL)
	params.Add("vnp_IpAddr", req.IPAddr)
	params.Add("vnp_CreateDate", now.Format("20060102150405"))
	params.Add("vnp_BankCode", req.BankCode)

	// Encode sorts keys lexicographically; that canonical ordering is what
	// makes the signature reproducible on the gateway side.
	signData := params.Encode()
	secureHash := v.sign(signData)

	return v.Config.BaseURL + "?" + signData + "&vnp_SecureHash=" + secureHash, nil
}

func (v *VNPay) sign(data string) string {
	h := hmac.New(sha512.New, []byte(v.Config.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
