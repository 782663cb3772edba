package helper

import (
	"testing"
	"time"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPaymentStatus(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	user := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)
	book := seedBook(t, user.ID, "Go in Practice", "150000")
	payment := seedBookPayment(t, user, method, book, model.PaymentStatusPending)

	updated, err := TransitionPaymentStatus(payment.ID, model.PaymentStatusSuccess, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusSuccess, updated.Status)
	assert.Equal(t, user.ID, updated.UpdatedBy)
}

func TestTransitionPaymentStatusRejectsNonTerminalTarget(t *testing.T) {
	setupTestDB(t)

	_, err := TransitionPaymentStatus(1, model.PaymentStatusPending, 1)
	assert.ErrorIs(t, err, ErrStatusInvalid)
}

func TestTransitionPaymentStatusNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := TransitionPaymentStatus(9999, model.PaymentStatusSuccess, 1)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestTransitionPaymentStatusIsTerminal(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	user := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)
	book := seedBook(t, user.ID, "Go in Practice", "150000")
	payment := seedBookPayment(t, user, method, book, model.PaymentStatusPending)

	winner, err := TransitionPaymentStatus(payment.ID, model.PaymentStatusSuccess, user.ID)
	require.NoError(t, err)

	// The loser of the race observes a conflict, never an overwrite.
	_, err = TransitionPaymentStatus(payment.ID, model.PaymentStatusFailure, model.SystemActorID)
	assert.ErrorIs(t, err, ErrPaymentFinalized)

	reloaded, err := GetPaymentByID(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusSuccess, reloaded.Status)
	assert.Equal(t, user.ID, reloaded.UpdatedBy)
	assert.True(t, winner.UpdatedAt.Equal(reloaded.UpdatedAt), "rejected transition must not touch updatedAt")

	// Same target twice is just as much of a no-op.
	_, err = TransitionPaymentStatus(payment.ID, model.PaymentStatusSuccess, user.ID)
	assert.ErrorIs(t, err, ErrPaymentFinalized)
}

func TestExpireOverduePayments(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	user := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)
	book := seedBook(t, user.ID, "Go in Practice", "150000")

	overdue := seedBookPayment(t, user, method, book, model.PaymentStatusPending)
	require.NoError(t, database.DB.Model(&model.Payment{}).Where("id = ?", overdue.ID).
		UpdateColumn("created_at", time.Now().Add(-30*time.Minute)).Error)

	fresh := seedBookPayment(t, user, method, book, model.PaymentStatusPending)

	confirmed := seedBookPayment(t, user, method, book, model.PaymentStatusSuccess)
	require.NoError(t, database.DB.Model(&model.Payment{}).Where("id = ?", confirmed.ID).
		UpdateColumn("created_at", time.Now().Add(-30*time.Minute)).Error)

	ExpireOverduePayments()

	reloaded, err := GetPaymentByID(overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusFailure, reloaded.Status)
	assert.Equal(t, model.SystemActorID, reloaded.UpdatedBy)

	reloaded, err = GetPaymentByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPending, reloaded.Status, "orders newer than the threshold stay pending")

	reloaded, err = GetPaymentByID(confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusSuccess, reloaded.Status, "confirmed orders are never force-failed")
}

func TestGetListPayment(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	author := seedUser(t, "Ann", "Author", "ann@example.com", model.UserRoleAuthor)
	john := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)
	jane := seedUser(t, "Jane", "Smith", "jane@example.com", model.UserRoleUser)
	golangBook := seedBook(t, author.ID, "Golang Deep Dive", "150000")
	cookBook := seedBook(t, author.ID, "Cooking 101", "90000")

	bookOrder := seedBookPayment(t, john, method, golangBook, model.PaymentStatusSuccess)
	subOrder := seedSubscriptionPayment(t, john, method, "99000")
	failedOrder := seedBookPayment(t, jane, method, cookBook, model.PaymentStatusFailure)

	result, err := GetListPayment(model.PaymentListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)

	result, err = GetListPayment(model.PaymentListFilter{
		Page: 1, Limit: 10,
		Status: []model.PaymentStatus{model.PaymentStatusSuccess},
	})
	require.NoError(t, err)
	require.Len(t, result.Payments, 1)
	assert.Equal(t, bookOrder.ID, result.Payments[0].ID)

	result, err = GetListPayment(model.PaymentListFilter{
		Page: 1, Limit: 10,
		PaymentType: []model.PaymentType{model.PaymentTypeSubscriptionPlan},
	})
	require.NoError(t, err)
	require.Len(t, result.Payments, 1)
	assert.Equal(t, subOrder.ID, result.Payments[0].ID)

	// Keyword matches the linked book title; orders without a book pass.
	result, err = GetListPayment(model.PaymentListFilter{Page: 1, Limit: 10, Keyword: "Golang"})
	require.NoError(t, err)
	ids := []uint{}
	for _, p := range result.Payments {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []uint{bookOrder.ID, subOrder.ID}, ids)

	// Keyword also matches the creator display name.
	result, err = GetListPayment(model.PaymentListFilter{Page: 1, Limit: 10, Keyword: "Jane Smith"})
	require.NoError(t, err)
	ids = ids[:0]
	for _, p := range result.Payments {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []uint{failedOrder.ID, subOrder.ID}, ids)

	result, err = GetListPayment(model.PaymentListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Payments, 1)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.TotalPage)
	assert.Equal(t, 2, result.Page)
}

func TestGetListPaymentSortByAmount(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	john := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)

	small := seedSubscriptionPayment(t, john, method, "99000")
	big := seedSubscriptionPayment(t, john, method, "250000")

	result, err := GetListPayment(model.PaymentListFilter{Page: 1, Limit: 10, Sort: model.PaymentSortAmountDesc})
	require.NoError(t, err)
	require.Len(t, result.Payments, 2)
	assert.Equal(t, big.ID, result.Payments[0].ID)
	assert.Equal(t, small.ID, result.Payments[1].ID)
}

func TestGetListPaymentForAuthor(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	author := seedUser(t, "Ann", "Author", "ann@example.com", model.UserRoleAuthor)
	other := seedUser(t, "Bob", "Writer", "bob@example.com", model.UserRoleAuthor)
	john := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)

	ownBook := seedBook(t, author.ID, "Golang Deep Dive", "150000")
	otherBook := seedBook(t, other.ID, "Cooking 101", "90000")

	sold := seedBookPayment(t, john, method, ownBook, model.PaymentStatusSuccess)
	seedBookPayment(t, john, method, otherBook, model.PaymentStatusSuccess)
	// pending revenue is not revenue
	jane := seedUser(t, "Jane", "Smith", "jane@example.com", model.UserRoleUser)
	seedBookPayment(t, jane, method, ownBook, model.PaymentStatusPending)

	result, err := GetListPaymentForAuthor([]uint{ownBook.ID}, model.PaymentListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Payments, 1)
	assert.Equal(t, sold.ID, result.Payments[0].ID)
}
