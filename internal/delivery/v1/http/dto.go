package http

import (
	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/shopspring/decimal"
)

// Денежные поля принимаются и строкой ("599.99"), и числом.

type ProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" swaggertype:"string"`
	SellingPrice  decimal.Decimal `json:"sellingPrice" swaggertype:"string"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"minStock"`
	SKU           string          `json:"sku"`
}

type ProductPatchRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty" swaggertype:"string"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice,omitempty" swaggertype:"string"`
	Stock         *int             `json:"stock,omitempty"`
	MinStock      *int             `json:"minStock,omitempty"`
	SKU           *string          `json:"sku,omitempty"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
}

// QuoteRequest содержит корзину для расчёта итогов.
type QuoteRequest struct {
	Items    []SaleItemRequest `json:"items"`
	Discount decimal.Decimal   `json:"discount" swaggertype:"string"`
}

// SaleRequest описывает запрос на проведение продажи. Если subtotal, tax и total
// не переданы, сервер считает их сам по текущей ставке налога.
type SaleRequest struct {
	CustomerID    string            `json:"customerId"`
	CustomerName  string            `json:"customerName"`
	Items         []SaleItemRequest `json:"items"`
	Discount      decimal.Decimal   `json:"discount" swaggertype:"string"`
	Subtotal      *decimal.Decimal  `json:"subtotal,omitempty" swaggertype:"string"`
	Tax           *decimal.Decimal  `json:"tax,omitempty" swaggertype:"string"`
	Total         *decimal.Decimal  `json:"total,omitempty" swaggertype:"string"`
	PaymentMethod string            `json:"paymentMethod"`
}

type QuoteResponse struct {
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Discount decimal.Decimal `json:"discount" swaggertype:"string"`
	Tax      decimal.Decimal `json:"tax" swaggertype:"string"`
	Total    decimal.Decimal `json:"total" swaggertype:"string"`
}

type LanguageResponse struct {
	Language domain.Language `json:"language"`
}

// MAPPERS

func (r *ProductRequest) validate() error {
	if err := checkMoney(r.PurchasePrice); err != nil {
		return err
	}
	return checkMoney(r.SellingPrice)
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return usecase.NewProductInput(r.Name, r.Category, r.PurchasePrice, r.SellingPrice, r.Stock, r.MinStock, r.SKU)
}

func (r *ProductPatchRequest) validate() error {
	if err := checkMoneyPtr(r.PurchasePrice); err != nil {
		return err
	}
	return checkMoneyPtr(r.SellingPrice)
}

func (r *ProductPatchRequest) toPatch() *usecase.ProductPatch {
	return &usecase.ProductPatch{
		Name:          r.Name,
		Category:      r.Category,
		PurchasePrice: r.PurchasePrice,
		SellingPrice:  r.SellingPrice,
		Stock:         r.Stock,
		MinStock:      r.MinStock,
		SKU:           r.SKU,
	}
}

func (r *QuoteRequest) validate() error {
	return checkMoney(r.Discount)
}

// validate проверяет скидку и присланные клиентом итоги теми же правилами, что и цены.
func (r *SaleRequest) validate() error {
	if err := checkMoney(r.Discount); err != nil {
		return err
	}
	for _, total := range []*decimal.Decimal{r.Subtotal, r.Tax, r.Total} {
		if err := checkMoneyPtr(total); err != nil {
			return err
		}
	}
	return nil
}

func (r *CustomerRequest) toInput() *usecase.CustomerInput {
	return usecase.NewCustomerInput(r.Name, r.Phone, r.Address)
}

func toSaleItems(items []SaleItemRequest) ([]domain.SaleItem, error) {
	result := make([]domain.SaleItem, 0, len(items))
	for _, item := range items {
		if err := checkMoney(item.Price); err != nil {
			return nil, err
		}
		result = append(result, domain.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return result, nil
}

// hasTotals сообщает, что клиент прислал собственные итоги.
func (r *SaleRequest) hasTotals() bool {
	return r.Subtotal != nil || r.Tax != nil || r.Total != nil
}

func (r *SaleRequest) clientQuote() usecase.Quote {
	deref := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}

	return usecase.Quote{
		Subtotal: deref(r.Subtotal),
		Discount: r.Discount,
		Tax:      deref(r.Tax),
		Total:    deref(r.Total),
	}
}

func toQuoteResponse(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		Subtotal: q.Subtotal,
		Discount: q.Discount,
		Tax:      q.Tax,
		Total:    q.Total,
	}
}
