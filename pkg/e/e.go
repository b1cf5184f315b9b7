package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Хранилище снимка состояния
	ErrSnapshotNotFound = fmt.Errorf("snapshot not found")
	ErrSnapshotCorrupt  = fmt.Errorf("snapshot is corrupt")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrSaleNotFound    = fmt.Errorf("sale not found")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrInvalidInput        = fmt.Errorf("invalid input")
	ErrNameRequired        = fmt.Errorf("name is required")
	ErrNegativeAmount      = fmt.Errorf("amount must not be negative")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be between 1 and 1000000")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPayment      = fmt.Errorf("invalid payment method")
	ErrEmptyCart           = fmt.Errorf("cart is empty")
	ErrInconsistentTotals  = fmt.Errorf("sale totals are inconsistent with line items")
	ErrInvalidJSON         = fmt.Errorf("invalid json body")
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrTooManyRequests     = fmt.Errorf("too many requests")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Join помечает err как ошибку валидации kind, сохраняя обе в цепочке errors.Is.
func Join(kind error, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
