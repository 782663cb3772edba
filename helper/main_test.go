package helper

import (
	"testing"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	database.Migrate(db)
	database.DB = db
}

func seedMethod(t *testing.T, name string) model.PaymentMethod {
	t.Helper()
	method := model.PaymentMethod{Name: name, Status: model.PaymentMethodStatusActive}
	require.NoError(t, database.DB.Create(&method).Error)
	return method
}

func seedUser(t *testing.T, firstName, lastName, email string, role model.UserRole) model.User {
	t.Helper()
	user := model.User{FirstName: firstName, LastName: lastName, Email: email, Role: role}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedBook(t *testing.T, authorID uint, title, price string) model.Book {
	t.Helper()
	book := model.Book{Title: title, PriceAmount: price, PriceCurrency: model.CurrencyVND, CreatedByID: authorID}
	require.NoError(t, database.DB.Create(&book).Error)
	return book
}

func seedBookPayment(t *testing.T, user model.User, method model.PaymentMethod, book model.Book, status model.PaymentStatus) model.Payment {
	t.Helper()
	payment, err := CreateOrderForBook(user.ID, method.ID, &book)
	require.NoError(t, err)
	if status != model.PaymentStatusPending {
		payment, err = TransitionPaymentStatus(payment.ID, status, user.ID)
		require.NoError(t, err)
	}
	return *payment
}

func seedSubscriptionPayment(t *testing.T, user model.User, method model.PaymentMethod, amount string) model.Payment {
	t.Helper()
	payment, err := CreateOrderForSubscription(user.ID, method.ID, amount, model.CurrencyVND)
	require.NoError(t, err)
	return *payment
}
