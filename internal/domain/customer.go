package domain

import "github.com/shopspring/decimal"

// Customer описывает покупателя
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	TotalPurchase decimal.Decimal `json:"totalPurchase"` // растёт только при проведении продажи
	Dues          decimal.Decimal `json:"dues"`
}

func NewCustomer(id, name, phone, address string) *Customer {
	return &Customer{
		ID:            id,
		Name:          name,
		Phone:         phone,
		Address:       address,
		TotalPurchase: decimal.Zero,
		Dues:          decimal.Zero,
	}
}
