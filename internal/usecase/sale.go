package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/shopspring/decimal"
)

const guestCustomerName = "Guest"

// MaxQuantity ограничивает количество в одной строке чека.
// Вместе с лимитом тела запроса это исключает переполнение остатка.
const MaxQuantity = 1_000_000

// RecordSale проводит продажу одной атомарной сменой снимка:
// считает прибыль, списывает остатки, увеличивает сумму покупок покупателя,
// выдаёт следующий номер накладной и добавляет продажу в начало журнала.
func (s *Store) RecordSale(ctx context.Context, req *SaleRequest) (domain.Sale, error) {
	const op = "Store.RecordSale"

	if err := validateSaleRequest(req); err != nil {
		return domain.Sale{}, e.Wrap(op, err)
	}

	var sale domain.Sale
	err := s.mutateThen(ctx, func(next *domain.AppState) error {
		sale = s.buildSale(next, req)

		next.Sales = append([]domain.Sale{sale}, next.Sales...)
		decrementStock(next, sale.Items)
		if idx := next.CustomerIndex(sale.CustomerID); idx >= 0 {
			c := &next.Customers[idx]
			c.TotalPurchase = c.TotalPurchase.Add(sale.Total)
		}
		return nil
	}, func() {
		// наблюдатель не блокирует, события уходят в порядке номеров накладных
		s.observer.SaleRecorded(sale)
	})
	if err != nil {
		return domain.Sale{}, e.Wrap(op, err)
	}

	s.logger.Infof("sale recorded: invoice=%s total=%s items=%d", sale.InvoiceNumber, sale.Total.String(), len(sale.Items))

	return sale, nil
}

// buildSale формирует запись продажи относительно состояния next и продвигает счётчик накладных.
func (s *Store) buildSale(next *domain.AppState, req *SaleRequest) domain.Sale {
	items := make([]domain.SaleItem, len(req.Items))
	profit := decimal.Zero
	for i, item := range req.Items {
		// товар мог быть удалён: закупочная цена тогда считается нулевой
		purchasePrice := decimal.Zero
		if idx := next.ProductIndex(item.ProductID); idx >= 0 {
			purchasePrice = next.Products[idx].PurchasePrice
			if strings.TrimSpace(item.Name) == "" {
				item.Name = next.Products[idx].Name
			}
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		profit = profit.Add(qty.Mul(item.Price.Sub(purchasePrice)))
		items[i] = item
	}

	next.InvoiceSeq++

	return domain.Sale{
		ID:            s.newID(),
		CustomerID:    req.CustomerID,
		CustomerName:  customerName(next, req),
		Items:         items,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		Tax:           req.Tax,
		Total:         req.Total,
		Profit:        profit,
		PaymentMethod: req.PaymentMethod,
		Timestamp:     s.now().UTC(),
		InvoiceNumber: domain.InvoiceNumber(next.InvoiceSeq),
	}
}

// decrementStock списывает количество каждой строки с товара. Нижняя граница не проверяется.
func decrementStock(next *domain.AppState, items []domain.SaleItem) {
	for _, item := range items {
		if idx := next.ProductIndex(item.ProductID); idx >= 0 {
			next.Products[idx].Stock -= item.Quantity
		}
	}
}

func customerName(state *domain.AppState, req *SaleRequest) string {
	if name := strings.TrimSpace(req.CustomerName); name != "" {
		return name
	}
	if idx := state.CustomerIndex(req.CustomerID); idx >= 0 {
		return state.Customers[idx].Name
	}
	return guestCustomerName
}

// QuoteSale считает итоги корзины: subtotal по строкам, налог по плоской ставке, total = subtotal + tax - discount.
func (s *Store) QuoteSale(items []domain.SaleItem, discount decimal.Decimal) (Quote, error) {
	const op = "Store.QuoteSale"

	if err := validateItems(items); err != nil {
		return Quote{}, e.Wrap(op, err)
	}
	if discount.IsNegative() {
		return Quote{}, e.Wrap(op, e.Join(e.ErrInvalidInput, e.ErrNegativeAmount))
	}

	subtotal := lineSum(items)
	tax := subtotal.Mul(s.taxRate).Round(2)

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal.Add(tax).Sub(discount),
	}, nil
}

func validateSaleRequest(req *SaleRequest) error {
	if req == nil || len(req.Items) == 0 {
		return e.ErrEmptyCart
	}

	if err := validateItems(req.Items); err != nil {
		return err
	}

	if !req.PaymentMethod.Valid() {
		return e.Join(e.ErrInvalidInput, e.ErrInvalidPayment)
	}

	if req.Discount.IsNegative() || req.Tax.IsNegative() || req.Total.IsNegative() {
		return e.Join(e.ErrInvalidInput, e.ErrNegativeAmount)
	}

	if !req.Subtotal.Equal(lineSum(req.Items)) {
		return e.ErrInconsistentTotals
	}

	if !req.Total.Equal(req.Subtotal.Add(req.Tax).Sub(req.Discount)) {
		return e.ErrInconsistentTotals
	}

	return nil
}

func validateItems(items []domain.SaleItem) error {
	if len(items) == 0 {
		return e.ErrEmptyCart
	}

	for _, item := range items {
		if item.Quantity < 1 || item.Quantity > MaxQuantity {
			return e.Join(e.ErrInvalidInput, e.ErrInvalidQuantity)
		}
		if item.Price.IsNegative() {
			return e.Join(e.ErrInvalidInput, e.ErrNegativeAmount)
		}
	}

	return nil
}

func lineSum(items []domain.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}
