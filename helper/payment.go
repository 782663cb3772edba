package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"
	"github.com/quantrananh2304/1682-server/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound  = errors.New("payment does not exist")
	ErrPaymentFinalized = errors.New("payment already finalized")
	ErrStatusInvalid    = errors.New("payment status invalid")
)

func newPublicCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// CreateOrderForBook persists a PENDING order priced off the book itself.
// Purchase eligibility (book visible, not already owned) is the caller's
// responsibility and is checked before any record is written.
func CreateOrderForBook(userID, methodID uint, book *model.Book) (*model.Payment, error) {
	payment := model.Payment{
		PublicCode:  newPublicCode(),
		MethodID:    methodID,
		Amount:      book.PriceAmount,
		Currency:    book.PriceCurrency,
		Status:      model.PaymentStatusPending,
		PaymentType: model.PaymentTypeBook,
		BookID:      &book.ID,
		CreatedByID: userID,
		UpdatedBy:   userID,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func CreateOrderForSubscription(userID, methodID uint, amount string, currency model.Currency) (*model.Payment, error) {
	payment := model.Payment{
		PublicCode:  newPublicCode(),
		MethodID:    methodID,
		Amount:      amount,
		Currency:    currency,
		Status:      model.PaymentStatusPending,
		PaymentType: model.PaymentTypeSubscriptionPlan,
		CreatedByID: userID,
		UpdatedBy:   userID,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func GetPaymentByID(paymentID uint) (*model.Payment, error) {
	var payment model.Payment
	err := database.DB.Preload("Method").First(&payment, paymentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// TransitionPaymentStatus moves a payment out of PENDING with a single
// conditional update. The WHERE clause on the current status is what keeps a
// gateway callback and the reconciliation sweep from both winning: whoever
// matches zero rows lost the race and gets ErrPaymentFinalized.
func TransitionPaymentStatus(paymentID uint, newStatus model.PaymentStatus, actorID uint) (*model.Payment, error) {
	if !newStatus.IsTerminal() {
		return nil, ErrStatusInvalid
	}

	db := database.DB
	res := db.Model(&model.Payment{}).
		Where("id = ? AND status = ?", paymentID, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
			"updated_by": actorID,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		var count int64
		if err := db.Model(&model.Payment{}).Where("id = ?", paymentID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrPaymentNotFound
		}
		return nil, ErrPaymentFinalized
	}

	return GetPaymentByID(paymentID)
}

func applyPaymentSort(query *gorm.DB, s model.PaymentSort) *gorm.DB {
	switch s {
	case model.PaymentSortAmountAsc:
		// amount is a decimal string, compare numerically
		return query.Order("CAST(amount AS DECIMAL) asc")
	case model.PaymentSortAmountDesc:
		return query.Order("CAST(amount AS DECIMAL) desc")
	case model.PaymentSortDateCreatedAsc:
		return query.Order("created_at asc")
	case model.PaymentSortDateCreatedDesc:
		return query.Order("created_at desc")
	default:
		return query
	}
}

func matchesKeyword(p model.Payment, keyword string) bool {
	if keyword == "" {
		return true
	}
	kw := strings.ToLower(keyword)
	if p.Book != nil && strings.Contains(strings.ToLower(p.Book.Title), kw) {
		return true
	}
	return strings.Contains(strings.ToLower(p.CreatedBy.DisplayName()), kw)
}

// GetListPayment returns a filtered, sorted page of payments. Status,
// currency and kind narrowing happens in the database; the keyword is matched
// against the linked book title and the creator display name after the
// fan-out preloads, the way an admin searches the payment screen.
func GetListPayment(filter model.PaymentListFilter) (*model.PaymentListResult, error) {
	query := database.DB.Model(&model.Payment{}).
		Preload("Method").
		Preload("CreatedBy").
		Preload("Book")

	if len(filter.Status) > 0 {
		query = query.Where("status IN ?", filter.Status)
	}
	if len(filter.Currency) > 0 {
		query = query.Where("currency IN ?", filter.Currency)
	}
	if len(filter.PaymentType) > 0 {
		query = query.Where("payment_type IN ?", filter.PaymentType)
	}

	query = applyPaymentSort(query, filter.Sort)

	var payments []model.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}

	matched := make([]model.Payment, 0, len(payments))
	for _, p := range payments {
		// Subscription orders have no book to match against and always pass.
		if p.BookID == nil || matchesKeyword(p, filter.Keyword) {
			matched = append(matched, p)
		}
	}

	return &model.PaymentListResult{
		Payments:  utils.PageSlice(matched, filter.Page, filter.Limit),
		Total:     len(matched),
		Page:      filter.Page,
		TotalPage: utils.TotalPage(len(matched), filter.Limit),
	}, nil
}

// GetListPaymentForAuthor is the revenue view: only successful book orders
// whose book belongs to the author.
func GetListPaymentForAuthor(bookIDs []uint, filter model.PaymentListFilter) (*model.PaymentListResult, error) {
	query := database.DB.Model(&model.Payment{}).
		Preload("Method").
		Preload("CreatedBy").
		Preload("Book").
		Where("payment_type = ?", model.PaymentTypeBook).
		Where("book_id IN ?", bookIDs).
		Where("status = ?", model.PaymentStatusSuccess)

	if len(filter.Currency) > 0 {
		query = query.Where("currency IN ?", filter.Currency)
	}

	query = applyPaymentSort(query, filter.Sort)

	var payments []model.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}

	matched := make([]model.Payment, 0, len(payments))
	for _, p := range payments {
		if matchesKeyword(p, filter.Keyword) {
			matched = append(matched, p)
		}
	}

	return &model.PaymentListResult{
		Payments:  utils.PageSlice(matched, filter.Page, filter.Limit),
		Total:     len(matched),
		Page:      filter.Page,
		TotalPage: utils.TotalPage(len(matched), filter.Limit),
	}, nil
}
