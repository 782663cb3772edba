package helper

import (
	"errors"
	"fmt"

	"github.com/quantrananh2304/1682-server/model"
)

var ErrValidTimeRequired = errors.New("valid time is required")

// DispatchEntitlement grants the one-time entitlement for a payment that has
// just won its PENDING->SUCCESS transition. It must only be called on that
// path: failures and lost races never grant. If the grant itself fails the
// payment stays SUCCESS and the error is escalated so the grant can be
// retried operationally.
func DispatchEntitlement(payment *model.Payment, validTime int) error {
	switch payment.PaymentType {
	case model.PaymentTypeBook:
		if payment.BookID == nil {
			return fmt.Errorf("book payment %d has no book reference", payment.ID)
		}
		return AddPurchaser(*payment.BookID, payment.CreatedByID, payment.Amount, payment.Currency)

	case model.PaymentTypeSubscriptionPlan:
		if validTime < 1 {
			return ErrValidTimeRequired
		}
		return ExtendUserSubscription(payment.CreatedByID, validTime)

	default:
		return fmt.Errorf("unknown payment type %q on payment %d", payment.PaymentType, payment.ID)
	}
}
