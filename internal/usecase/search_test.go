package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProducts(t *testing.T) {
	s, _ := newTestStore(t, scenarioState())

	assert.Len(t, s.SearchProducts(""), 2)
	assert.Len(t, s.SearchProducts("   "), 2)

	found := s.SearchProducts("coffee")
	require.Len(t, found, 1)
	assert.Equal(t, "1", found[0].ID)

	found = s.SearchProducts("ric0")
	require.Len(t, found, 1)
	assert.Equal(t, "2", found[0].ID)

	assert.Empty(t, s.SearchProducts("tea"))
}

func TestSearchCustomers(t *testing.T) {
	s, _ := newTestStore(t, scenarioState())

	found := s.SearchCustomers("KARIM")
	require.Len(t, found, 1)
	assert.Equal(t, "C2", found[0].ID)

	found = s.SearchCustomers("0171")
	require.Len(t, found, 1)
	assert.Equal(t, "C1", found[0].ID)
}

func TestSearchSalesAndFindSale(t *testing.T) {
	s, _ := newTestStore(t, scenarioState())
	ctx := context.Background()

	_, err := s.RecordSale(ctx, saleOf("C1", item("1", 1, 600)))
	require.NoError(t, err)
	_, err = s.RecordSale(ctx, saleOf("C2", item("2", 1, 850)))
	require.NoError(t, err)
	_, err = s.RecordSale(ctx, saleOf("C1", item("1", 2, 600)))
	require.NoError(t, err)

	byName := s.SearchSales("rahim")
	require.Len(t, byName, 2)
	assert.Equal(t, "INV-1003", byName[0].InvoiceNumber)
	assert.Equal(t, "INV-1001", byName[1].InvoiceNumber)

	byInvoice := s.SearchSales("inv-1002")
	require.Len(t, byInvoice, 1)
	assert.Equal(t, "Karim", byInvoice[0].CustomerName)

	sale, err := s.FindSale("inv-1003")
	require.NoError(t, err)
	assert.Equal(t, 2, sale.Items[0].Quantity)

	_, err = s.FindSale("INV-2000")
	assert.ErrorIs(t, err, e.ErrSaleNotFound)
}
