package domain

import "github.com/shopspring/decimal"

// AppState является единственным корневым агрегатом приложения.
// Sales хранится от новых к старым.
type AppState struct {
	Products    []Product  `json:"products"`
	Customers   []Customer `json:"customers"`
	Sales       []Sale     `json:"sales"`
	CurrentUser *User      `json:"currentUser"`
	Language    Language   `json:"language"`
	InvoiceSeq  int64      `json:"invoiceSeq"` // последний выданный порядковый номер накладной
}

// DefaultState возвращает начальное состояние для пустого хранилища.
func DefaultState() AppState {
	return AppState{
		Products: []Product{
			*NewProduct("1", "Premium Coffee", "Beverage", decimal.NewFromInt(450), decimal.NewFromInt(600), 50, 10, "COF001"),
			*NewProduct("2", "Basmati Rice 5kg", "Grocery", decimal.NewFromInt(700), decimal.NewFromInt(850), 5, 8, "RIC001"),
		},
		Customers: []Customer{
			*NewCustomer("1", "Walk-in Customer", "000", "N/A"),
		},
		Sales: []Sale{},
		CurrentUser: &User{
			ID:       "admin",
			Username: "admin",
			Role:     RoleAdmin,
			Name:     "System Admin",
		},
		Language: LanguageEN,
	}
}

// Clone делает глубокую копию, не разделяющую срезы и указатели с исходником.
func (s AppState) Clone() AppState {
	out := AppState{
		Products:   make([]Product, len(s.Products)),
		Customers:  make([]Customer, len(s.Customers)),
		Sales:      make([]Sale, len(s.Sales)),
		Language:   s.Language,
		InvoiceSeq: s.InvoiceSeq,
	}
	copy(out.Products, s.Products)
	copy(out.Customers, s.Customers)
	for i, sale := range s.Sales {
		out.Sales[i] = sale.clone()
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}

	return out
}

// ProductIndex возвращает позицию товара по ID или -1.
func (s AppState) ProductIndex(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// CustomerIndex возвращает позицию покупателя по ID или -1.
func (s AppState) CustomerIndex(id string) int {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

// normalize приводит загруженное состояние к инвариантам текущей версии.
func (s *AppState) normalize() {
	if s.Products == nil {
		s.Products = []Product{}
	}
	if s.Customers == nil {
		s.Customers = []Customer{}
	}
	if s.Sales == nil {
		s.Sales = []Sale{}
	}
	if !s.Language.Valid() {
		s.Language = LanguageEN
	}
	// старые снимки без счётчика: нумерация продолжается от длины журнала
	if s.InvoiceSeq < int64(len(s.Sales)) {
		s.InvoiceSeq = int64(len(s.Sales))
	}
}
