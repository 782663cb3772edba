package helper

import (
	"errors"

	"github.com/quantrananh2304/1682-server/database"
	"github.com/quantrananh2304/1682-server/model"

	"gorm.io/gorm"
)

// Narrow surface of the book collaborator: lookups, the author's catalogue
// and the purchaser grant.

var ErrBookNotFound = errors.New("book does not exist")

func GetBookByID(bookID uint) (*model.Book, error) {
	var book model.Book
	err := database.DB.First(&book, bookID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func GetBookListByUserID(userID uint) ([]model.Book, error) {
	var books []model.Book
	if err := database.DB.Where("created_by_id = ?", userID).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func HasPurchasedBook(bookID, userID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&model.BookPurchase{}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddPurchaser grants book access to the buyer, recording what was paid.
// The composite unique index makes a repeated grant fail loudly instead of
// duplicating the entitlement.
func AddPurchaser(bookID, userID uint, amount string, currency model.Currency) error {
	if _, err := GetBookByID(bookID); err != nil {
		return err
	}
	purchase := model.BookPurchase{
		BookID:   bookID,
		UserID:   userID,
		Amount:   amount,
		Currency: currency,
	}
	return database.DB.Create(&purchase).Error
}
