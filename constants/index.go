package constants

// Client-facing error messages.
const (
	ERROR_INTERNAL_ERROR = "Internal server error"
	ADMIN_ONLY           = "Only admin can do this action"
	AUTHOR_ONLY          = "Only author can do this action"

	PAYMENT_METHOD_EXISTED    = "Payment method already existed"
	PAYMENT_METHOD_NOT_EXIST  = "Payment method does not exist"
	PAYMENT_NOT_EXIST         = "Payment does not exist"
	PAYMENT_ALREADY_FINALIZED = "Payment has already been finalized"
	PAYMENT_STATUS_INVALID    = "Payment status invalid"
	ENTITLEMENT_GRANT_FAILED  = "Payment succeeded but granting the entitlement failed"

	BOOK_NOT_EXIST           = "Book does not exist"
	USER_NOT_EXIST           = "User does not exist"
	USER_ALR_PURCHASED_BOOK  = "User already purchased this book"
	VALID_TIME_REQUIRED      = "Valid time is required"
	VALID_TIME_INVALID       = "Valid time invalid"
	AMOUNT_INVALID           = "Amount invalid"
	CURRENCY_INVALID         = "Currency invalid"
	SORT_INVALID             = "Sort invalid"
	DATA_INPUT_IS_NOT_NUMBER = "Input data is not a number"
)
