package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() AppState {
	s := DefaultState()
	s.InvoiceSeq = 2
	s.Sales = []Sale{
		{
			ID:           "s2",
			CustomerID:   "1",
			CustomerName: "Walk-in Customer",
			Items: []SaleItem{
				{ProductID: "2", Name: "Basmati Rice 5kg", Quantity: 1, Price: decimal.NewFromInt(850)},
			},
			Subtotal:      decimal.NewFromInt(850),
			Discount:      decimal.Zero,
			Tax:           decimal.RequireFromString("42.5"),
			Total:         decimal.RequireFromString("892.5"),
			Profit:        decimal.NewFromInt(150),
			PaymentMethod: PaymentCard,
			Timestamp:     time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			InvoiceNumber: "INV-1002",
		},
		{
			ID: "s1",
			Items: []SaleItem{
				{ProductID: "1", Name: "Premium Coffee", Quantity: 3, Price: decimal.NewFromInt(600)},
			},
			Subtotal:      decimal.NewFromInt(1800),
			Discount:      decimal.NewFromInt(10),
			Tax:           decimal.NewFromInt(90),
			Total:         decimal.NewFromInt(1880),
			Profit:        decimal.NewFromInt(450),
			PaymentMethod: PaymentCash,
			Timestamp:     time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			InvoiceNumber: "INV-1001",
		},
	}
	return s
}

func TestStateRoundTrip(t *testing.T) {
	s := sampleState()

	data, err := MarshalState(s)
	require.NoError(t, err)

	loaded, err := UnmarshalState(data)
	require.NoError(t, err)

	again, err := MarshalState(loaded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	require.Len(t, loaded.Sales, 2)
	assert.Equal(t, "INV-1002", loaded.Sales[0].InvoiceNumber)
	assert.Equal(t, "INV-1001", loaded.Sales[1].InvoiceNumber)
	assert.True(t, loaded.Sales[0].Total.Equal(decimal.RequireFromString("892.5")))
	assert.True(t, loaded.Sales[1].Timestamp.Equal(s.Sales[1].Timestamp))
	assert.Equal(t, int64(2), loaded.InvoiceSeq)
	require.NotNil(t, loaded.CurrentUser)
	assert.Equal(t, RoleAdmin, loaded.CurrentUser.Role)
}

func TestUnmarshalStateLegacyNumbers(t *testing.T) {
	// формат без счётчика накладных и с числовыми суммами
	raw := `{
		"products":[{"id":"1","name":"Premium Coffee","category":"Beverage","purchasePrice":450,"sellingPrice":600,"stock":50,"minStock":10,"sku":"COF001"}],
		"customers":[],
		"sales":[{"id":"a","items":[],"subtotal":0,"discount":0,"tax":0,"total":0,"profit":0,"paymentMethod":"CASH","timestamp":"2026-01-01T00:00:00Z","invoiceNumber":"INV-1001"}],
		"currentUser":null,
		"language":"bn"
	}`

	s, err := UnmarshalState([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.InvoiceSeq)
	assert.Equal(t, LanguageBN, s.Language)
	assert.Nil(t, s.CurrentUser)
	assert.True(t, s.Products[0].PurchasePrice.Equal(decimal.NewFromInt(450)))
}

func TestUnmarshalStateInvalid(t *testing.T) {
	_, err := UnmarshalState([]byte("{not json"))
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	s := sampleState()
	c := s.Clone()

	c.Products[0].Stock = 1
	c.Sales[0].Items[0].Quantity = 99
	c.CurrentUser.Name = "changed"
	c.Customers = append(c.Customers, *NewCustomer("x", "X", "", ""))

	assert.Equal(t, 50, s.Products[0].Stock)
	assert.Equal(t, 1, s.Sales[0].Items[0].Quantity)
	assert.Equal(t, "System Admin", s.CurrentUser.Name)
	assert.Len(t, s.Customers, 1)
}

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-1001", InvoiceNumber(1))
	assert.Equal(t, "INV-1002", InvoiceNumber(2))
}

func TestLanguageToggle(t *testing.T) {
	assert.Equal(t, LanguageBN, LanguageEN.Toggle())
	assert.Equal(t, LanguageEN, LanguageBN.Toggle())
}

func TestDefaultStateSeed(t *testing.T) {
	s := DefaultState()
	require.Len(t, s.Products, 2)
	assert.False(t, s.Products[0].IsLowStock())
	assert.True(t, s.Products[1].IsLowStock())
	require.Len(t, s.Customers, 1)
	assert.True(t, s.Customers[0].TotalPurchase.IsZero())
	assert.Empty(t, s.Sales)
	assert.Equal(t, LanguageEN, s.Language)
}
