// Package report содержит чистые функции агрегатов для дашборда и отчётов.
// Функции не изменяют входные данные и детерминированы для одного и того же снимка.
package report

import (
	"sort"
	"time"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopN задаёт размер списка лидеров продаж по умолчанию.
const DefaultTopN = 5

// ProductPerformance хранит суммарные продажи одного товара по журналу.
type ProductPerformance struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ChartPoint описывает точку графика продаж/прибыли.
type ChartPoint struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Timestamp     string          `json:"timestamp"`
	Sales         decimal.Decimal `json:"sales"`
	Profit        decimal.Decimal `json:"profit"`
}

// Dashboard собирает все агрегаты одного снимка.
type Dashboard struct {
	TotalSales        decimal.Decimal      `json:"totalSales"`
	TotalProfit       decimal.Decimal      `json:"totalProfit"`
	AverageOrderValue decimal.Decimal      `json:"averageOrderValue"`
	SalesCount        int                  `json:"salesCount"`
	CustomerCount     int                  `json:"customerCount"`
	ProductCount      int                  `json:"productCount"`
	LowStock          []domain.Product     `json:"lowStock"`
	BestSellers       []ProductPerformance `json:"bestSellers"`
	Recent            []ChartPoint         `json:"recent"`
}

func TotalSales(sales []domain.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}

func TotalProfit(sales []domain.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Profit)
	}
	return sum
}

// AverageOrderValue возвращает средний чек без округления, 0 при пустом журнале.
// Бесконечные дроби обрезаются до decimal.DivisionPrecision знаков.
func AverageOrderValue(sales []domain.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return TotalSales(sales).Div(decimal.NewFromInt(int64(len(sales))))
}

// LowStock возвращает товары с остатком не выше порога дозаказа в порядке каталога.
func LowStock(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			result = append(result, p)
		}
	}
	return result
}

// BestSellers агрегирует количество и выручку по товарам и возвращает top n по количеству.
// При равенстве количества порядок определяется ID товара. n <= 0 возвращает все позиции.
func BestSellers(sales []domain.Sale, n int) []ProductPerformance {
	byProduct := make(map[string]*ProductPerformance)
	for _, s := range sales {
		for _, item := range s.Items {
			perf, ok := byProduct[item.ProductID]
			if !ok {
				perf = &ProductPerformance{ProductID: item.ProductID, Name: item.Name, Revenue: decimal.Zero}
				byProduct[item.ProductID] = perf
			}
			perf.Quantity += item.Quantity
			perf.Revenue = perf.Revenue.Add(item.LineTotal())
		}
	}

	result := make([]ProductPerformance, 0, len(byProduct))
	for _, perf := range byProduct {
		result = append(result, *perf)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Quantity != result[j].Quantity {
			return result[i].Quantity > result[j].Quantity
		}
		return result[i].ProductID < result[j].ProductID
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// RecentSales строит график по n последним продажам, от старых к новым.
func RecentSales(sales []domain.Sale, n int) []ChartPoint {
	if n > len(sales) || n <= 0 {
		n = len(sales)
	}

	points := make([]ChartPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		s := sales[i]
		points = append(points, ChartPoint{
			InvoiceNumber: s.InvoiceNumber,
			Timestamp:     s.Timestamp.Format(time.RFC3339),
			Sales:         s.Total,
			Profit:        s.Profit,
		})
	}
	return points
}

// BuildDashboard собирает все агрегаты снимка.
func BuildDashboard(state domain.AppState, topN int) Dashboard {
	const recentWindow = 7

	if topN <= 0 {
		topN = DefaultTopN
	}

	return Dashboard{
		TotalSales:        TotalSales(state.Sales),
		TotalProfit:       TotalProfit(state.Sales),
		AverageOrderValue: AverageOrderValue(state.Sales).Round(2),
		SalesCount:        len(state.Sales),
		CustomerCount:     len(state.Customers),
		ProductCount:      len(state.Products),
		LowStock:          LowStock(state.Products),
		BestSellers:       BestSellers(state.Sales, topN),
		Recent:            RecentSales(state.Sales, recentWindow),
	}
}
