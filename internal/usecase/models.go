package usecase

import (
	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG

// ProductInput содержит данные для добавления товара в каталог.
type ProductInput struct {
	Name          string
	Category      string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Stock         int
	MinStock      int
	SKU           string
}

// ProductPatch описывает частичное обновление товара. nil-поля не меняются.
type ProductPatch struct {
	Name          *string
	Category      *string
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	Stock         *int
	MinStock      *int
	SKU           *string
}

// CUSTOMERS

// CustomerInput содержит данные для добавления покупателя.
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// CHECKOUT

// SaleRequest описывает запрос на проведение продажи. Profit, номер накладной,
// идентификатор и время назначает движок, а не вызывающая сторона.
type SaleRequest struct {
	CustomerID    string
	CustomerName  string
	Items         []domain.SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod domain.PaymentMethod
}

// Quote хранит итоги корзины по плоской ставке налога.
type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// MAPPERS

func NewProductInput(name, category string, purchasePrice, sellingPrice decimal.Decimal, stock, minStock int, sku string) *ProductInput {
	return &ProductInput{
		Name:          name,
		Category:      category,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Stock:         stock,
		MinStock:      minStock,
		SKU:           sku,
	}
}

func NewCustomerInput(name, phone, address string) *CustomerInput {
	return &CustomerInput{
		Name:    name,
		Phone:   phone,
		Address: address,
	}
}

// NewSaleRequest собирает запрос из корзины и готовых итогов.
func NewSaleRequest(customerID, customerName string, items []domain.SaleItem, q Quote, method domain.PaymentMethod) *SaleRequest {
	return &SaleRequest{
		CustomerID:    customerID,
		CustomerName:  customerName,
		Items:         items,
		Subtotal:      q.Subtotal,
		Discount:      q.Discount,
		Tax:           q.Tax,
		Total:         q.Total,
		PaymentMethod: method,
	}
}
