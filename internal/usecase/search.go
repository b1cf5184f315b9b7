package usecase

import (
	"strings"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/pkg/e"
)

// SearchProducts ищет товары по подстроке в названии или SKU без учёта регистра.
func (s *Store) SearchProducts(term string) []domain.Product {
	products := s.Products()
	return filter(products, term, func(p domain.Product) []string {
		return []string{p.Name, p.SKU}
	})
}

// SearchCustomers ищет покупателей по имени или телефону.
func (s *Store) SearchCustomers(term string) []domain.Customer {
	customers := s.Customers()
	return filter(customers, term, func(c domain.Customer) []string {
		return []string{c.Name, c.Phone}
	})
}

// SearchSales ищет продажи по номеру накладной или имени покупателя. Порядок журнала сохраняется.
func (s *Store) SearchSales(term string) []domain.Sale {
	sales := s.Sales()
	return filter(sales, term, func(sale domain.Sale) []string {
		return []string{sale.InvoiceNumber, sale.CustomerName}
	})
}

// FindSale возвращает продажу по номеру накладной.
func (s *Store) FindSale(invoiceNumber string) (domain.Sale, error) {
	for _, sale := range s.Sales() {
		if strings.EqualFold(sale.InvoiceNumber, invoiceNumber) {
			return sale, nil
		}
	}

	return domain.Sale{}, e.Wrap("Store.FindSale", e.ErrSaleNotFound)
}

func filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				result = append(result, item)
				break
			}
		}
	}

	return result
}
