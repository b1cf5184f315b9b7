package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentMobile PaymentMethod = "MOBILE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	default:
		return false
	}
}

// смещение номеров накладных: первая продажа получает INV-1001
const invoiceBase = 1000

// SaleItem описывает строку чека. Name и Price фиксируются на момент продажи.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// LineTotal возвращает quantity × price.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale описывает проведённую продажу. После записи не изменяется.
type Sale struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Profit        decimal.Decimal `json:"profit"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Timestamp     time.Time       `json:"timestamp"`
	InvoiceNumber string          `json:"invoiceNumber"`
}

// InvoiceNumber формирует человекочитаемый номер накладной по порядковому номеру продажи (с 1).
func InvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%d", invoiceBase+seq)
}

func (s Sale) clone() Sale {
	items := make([]SaleItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}
