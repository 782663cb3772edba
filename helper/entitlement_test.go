package helper

import (
	"testing"
	"time"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchBookEntitlement(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	author := seedUser(t, "Ann", "Author", "ann@example.com", model.UserRoleAuthor)
	buyer := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)
	book := seedBook(t, author.ID, "Go in Practice", "150000")
	payment := seedBookPayment(t, buyer, method, book, model.PaymentStatusSuccess)

	require.NoError(t, DispatchEntitlement(&payment, 0))

	purchased, err := HasPurchasedBook(book.ID, buyer.ID)
	require.NoError(t, err)
	assert.True(t, purchased)

	var purchase model.BookPurchase
	require.NoError(t, database.DB.Where("book_id = ? AND user_id = ?", book.ID, buyer.ID).First(&purchase).Error)
	assert.Equal(t, "150000", purchase.Amount)
	assert.Equal(t, model.CurrencyVND, purchase.Currency)
}

func TestAddPurchaserRejectsDuplicateGrant(t *testing.T) {
	setupTestDB(t)
	author := seedUser(t, "Ann", "Author", "ann@example.com", model.UserRoleAuthor)
	buyer := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)
	book := seedBook(t, author.ID, "Go in Practice", "150000")

	require.NoError(t, AddPurchaser(book.ID, buyer.ID, "150000", model.CurrencyVND))
	assert.Error(t, AddPurchaser(book.ID, buyer.ID, "150000", model.CurrencyVND))
}

func TestDispatchSubscriptionStacksOnExistingValidUntil(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	buyer := seedUser(t, "John", "Doe", "john@example.com", model.UserRolePremium)

	existing := time.Now().AddDate(0, 0, 10)
	require.NoError(t, database.DB.Model(&model.User{}).Where("id = ?", buyer.ID).
		Update("subscription_valid_until", existing).Error)

	payment := seedSubscriptionPayment(t, buyer, method, "99000")
	require.NoError(t, DispatchEntitlement(&payment, 2))

	reloaded, err := GetUserByID(buyer.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.SubscriptionValidUntil)
	assert.WithinDuration(t, existing.AddDate(0, 2, 0), *reloaded.SubscriptionValidUntil, time.Second,
		"a second purchase extends the existing validUntil, it does not reset to now")
}

func TestDispatchSubscriptionStartsFromNowWhenUnset(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	buyer := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)

	payment := seedSubscriptionPayment(t, buyer, method, "99000")
	require.NoError(t, DispatchEntitlement(&payment, 3))

	reloaded, err := GetUserByID(buyer.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.SubscriptionValidUntil)
	assert.WithinDuration(t, time.Now().AddDate(0, 3, 0), *reloaded.SubscriptionValidUntil, 5*time.Second)
	assert.Equal(t, model.UserRolePremium, reloaded.Role)
}

func TestDispatchSubscriptionRequiresValidTime(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	buyer := seedUser(t, "John", "Doe", "john@example.com", model.UserRoleUser)

	payment := seedSubscriptionPayment(t, buyer, method, "99000")
	assert.ErrorIs(t, DispatchEntitlement(&payment, 0), ErrValidTimeRequired)

	reloaded, err := GetUserByID(buyer.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.SubscriptionValidUntil)
}

func TestDispatchSubscriptionKeepsAuthorRole(t *testing.T) {
	setupTestDB(t)
	method := seedMethod(t, "NCB")
	buyer := seedUser(t, "Ann", "Author", "ann@example.com", model.UserRoleAuthor)

	payment := seedSubscriptionPayment(t, buyer, method, "99000")
	require.NoError(t, DispatchEntitlement(&payment, 1))

	reloaded, err := GetUserByID(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserRoleAuthor, reloaded.Role)
}

func TestDowngradeLapsedSubscriptions(t *testing.T) {
	setupTestDB(t)

	lapsed := seedUser(t, "Old", "Premium", "old@example.com", model.UserRolePremium)
	require.NoError(t, database.DB.Model(&model.User{}).Where("id = ?", lapsed.ID).
		Update("subscription_valid_until", time.Now().AddDate(0, -1, 0)).Error)

	active := seedUser(t, "New", "Premium", "new@example.com", model.UserRolePremium)
	require.NoError(t, database.DB.Model(&model.User{}).Where("id = ?", active.ID).
		Update("subscription_valid_until", time.Now().AddDate(0, 1, 0)).Error)

	DowngradeLapsedSubscriptions()

	reloaded, err := GetUserByID(lapsed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserRoleUser, reloaded.Role)

	reloaded, err = GetUserByID(active.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserRolePremium, reloaded.Role)
}
