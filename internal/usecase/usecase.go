package usecase

import (
	"context"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/shopspring/decimal"
)

// StoreUC перечисляет операции хранилища, доступные внешним слоям (HTTP, gRPC).
type StoreUC interface {
	AddProduct(ctx context.Context, in *ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch *ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AddCustomer(ctx context.Context, in *CustomerInput) (domain.Customer, error)
	RecordSale(ctx context.Context, req *SaleRequest) (domain.Sale, error)
	QuoteSale(items []domain.SaleItem, discount decimal.Decimal) (Quote, error)
	ToggleLanguage(ctx context.Context) (domain.Language, error)
	Logout(ctx context.Context) error

	Snapshot() domain.AppState
	SearchProducts(term string) []domain.Product
	SearchCustomers(term string) []domain.Customer
	SearchSales(term string) []domain.Sale
	FindSale(invoiceNumber string) (domain.Sale, error)
}
