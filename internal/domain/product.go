package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Stock         int             `json:"stock"`    // может уйти в минус при продаже сверх остатка
	MinStock      int             `json:"minStock"` // порог дозаказа
	SKU           string          `json:"sku"`
}

func NewProduct(id, name, category string, purchasePrice, sellingPrice decimal.Decimal, stock, minStock int, sku string) *Product {
	return &Product{
		ID:            id,
		Name:          name,
		Category:      category,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Stock:         stock,
		MinStock:      minStock,
		SKU:           sku,
	}
}

// IsLowStock сообщает, что остаток опустился до порога дозаказа.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
