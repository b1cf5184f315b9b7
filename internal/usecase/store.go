package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate задаёт плоскую ставку налога на продажу (5%).
var DefaultTaxRate = decimal.RequireFromString("0.05")

// Store владеет единственным текущим снимком состояния.
// Все изменения проходят через его методы: следующий снимок вычисляется на копии,
// записывается в слот и только после успешной записи становится текущим.
type Store struct {
	mu       sync.RWMutex
	state    domain.AppState
	repo     SnapshotRepository
	observer SaleObserver
	logger   logger.Logger
	newID    func() string
	now      func() time.Time
	taxRate  decimal.Decimal
}

type Option func(*Store)

// WithIDGenerator подменяет генератор идентификаторов (по умолчанию uuid).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithSaleObserver(o SaleObserver) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

func WithTaxRate(rate decimal.Decimal) Option {
	return func(s *Store) { s.taxRate = rate }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore загружает снимок из слота. Если слот пуст, создаёт начальное состояние и сразу сохраняет его.
func NewStore(ctx context.Context, repo SnapshotRepository, opts ...Option) (*Store, error) {
	const op = "Store.NewStore"

	s := &Store{
		repo:     repo,
		observer: nopObserver{},
		logger:   logger.Nop{},
		newID:    uuid.NewString,
		now:      time.Now,
		taxRate:  DefaultTaxRate,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := repo.Load(ctx)
	switch {
	case errors.Is(err, e.ErrSnapshotNotFound):
		s.logger.Infof("snapshot slot is empty, seeding default state")
		if err := s.commit(ctx, domain.DefaultState()); err != nil {
			return nil, e.Wrap(op, err)
		}
	case err != nil:
		return nil, e.Wrap(op, err)
	default:
		state, err := domain.UnmarshalState(data)
		if err != nil {
			return nil, e.Wrap(op, e.Join(e.ErrSnapshotCorrupt, err))
		}
		s.state = state
		s.logger.Infof("snapshot loaded: products=%d customers=%d sales=%d",
			len(state.Products), len(state.Customers), len(state.Sales))
	}

	return s, nil
}

// commit сериализует next, пишет его в слот и публикует как текущий снимок.
// Вызывается под s.mu. При ошибке текущий снимок не меняется.
func (s *Store) commit(ctx context.Context, next domain.AppState) error {
	data, err := domain.MarshalState(next)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, data); err != nil {
		return err
	}

	s.state = next
	return nil
}

// mutate применяет fn к копии текущего снимка и фиксирует результат.
func (s *Store) mutate(ctx context.Context, fn func(next *domain.AppState) error) error {
	return s.mutateThen(ctx, fn, nil)
}

// mutateThen вызывает after после успешной фиксации, не отпуская s.mu,
// поэтому after видит изменения в том же порядке, в каком они записаны в слот.
func (s *Store) mutateThen(ctx context.Context, fn func(next *domain.AppState) error, after func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	if err := s.commit(ctx, next); err != nil {
		return err
	}

	if after != nil {
		after()
	}
	return nil
}

// AddProduct добавляет товар в каталог под новым идентификатором.
func (s *Store) AddProduct(ctx context.Context, in *ProductInput) (domain.Product, error) {
	const op = "Store.AddProduct"

	if err := validateProductInput(in); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	var created domain.Product
	err := s.mutate(ctx, func(next *domain.AppState) error {
		created = *domain.NewProduct(
			s.newID(),
			strings.TrimSpace(in.Name),
			strings.TrimSpace(in.Category),
			in.PurchasePrice,
			in.SellingPrice,
			in.Stock,
			in.MinStock,
			strings.TrimSpace(in.SKU),
		)
		next.Products = append(next.Products, created)
		return nil
	})
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct накладывает patch на товар с указанным ID.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch *ProductPatch) (domain.Product, error) {
	const op = "Store.UpdateProduct"

	if err := validateProductPatch(patch); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	var updated domain.Product
	err := s.mutate(ctx, func(next *domain.AppState) error {
		idx := next.ProductIndex(id)
		if idx < 0 {
			return e.ErrProductNotFound
		}

		applyProductPatch(&next.Products[idx], patch)
		updated = next.Products[idx]
		return nil
	})
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteProduct удаляет товар. Проведённые продажи сохраняют свои копии названия и цены.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	const op = "Store.DeleteProduct"

	err := s.mutate(ctx, func(next *domain.AppState) error {
		idx := next.ProductIndex(id)
		if idx < 0 {
			return e.ErrProductNotFound
		}

		next.Products = append(next.Products[:idx], next.Products[idx+1:]...)
		return nil
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// AddCustomer добавляет покупателя с нулевыми суммами покупок и долга.
func (s *Store) AddCustomer(ctx context.Context, in *CustomerInput) (domain.Customer, error) {
	const op = "Store.AddCustomer"

	if in == nil || strings.TrimSpace(in.Name) == "" {
		return domain.Customer{}, e.Wrap(op, e.Join(e.ErrInvalidInput, e.ErrNameRequired))
	}

	var created domain.Customer
	err := s.mutate(ctx, func(next *domain.AppState) error {
		created = *domain.NewCustomer(
			s.newID(),
			strings.TrimSpace(in.Name),
			strings.TrimSpace(in.Phone),
			strings.TrimSpace(in.Address),
		)
		next.Customers = append(next.Customers, created)
		return nil
	})
	if err != nil {
		return domain.Customer{}, e.Wrap(op, err)
	}

	return created, nil
}

// ToggleLanguage переключает язык интерфейса и возвращает новое значение.
func (s *Store) ToggleLanguage(ctx context.Context) (domain.Language, error) {
	var lang domain.Language
	err := s.mutate(ctx, func(next *domain.AppState) error {
		next.Language = next.Language.Toggle()
		lang = next.Language
		return nil
	})
	if err != nil {
		return "", e.Wrap("Store.ToggleLanguage", err)
	}

	return lang, nil
}

// Logout завершает текущую сессию.
func (s *Store) Logout(ctx context.Context) error {
	err := s.mutate(ctx, func(next *domain.AppState) error {
		next.CurrentUser = nil
		return nil
	})
	if err != nil {
		return e.Wrap("Store.Logout", err)
	}

	return nil
}

// Snapshot возвращает глубокую копию текущего состояния.
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

func (s *Store) Products() []domain.Product {
	return s.Snapshot().Products
}

func (s *Store) Customers() []domain.Customer {
	return s.Snapshot().Customers
}

func (s *Store) Sales() []domain.Sale {
	return s.Snapshot().Sales
}

func (s *Store) CurrentUser() *domain.User {
	return s.Snapshot().CurrentUser
}

func (s *Store) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Language
}

func validateProductInput(in *ProductInput) error {
	if in == nil || strings.TrimSpace(in.Name) == "" {
		return e.Join(e.ErrInvalidInput, e.ErrNameRequired)
	}

	if in.PurchasePrice.IsNegative() || in.SellingPrice.IsNegative() || in.Stock < 0 || in.MinStock < 0 {
		return e.Join(e.ErrInvalidInput, e.ErrNegativeAmount)
	}

	return nil
}

func validateProductPatch(p *ProductPatch) error {
	if p == nil {
		return nil
	}

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return e.Join(e.ErrInvalidInput, e.ErrNameRequired)
	}

	if (p.PurchasePrice != nil && p.PurchasePrice.IsNegative()) ||
		(p.SellingPrice != nil && p.SellingPrice.IsNegative()) ||
		(p.Stock != nil && *p.Stock < 0) ||
		(p.MinStock != nil && *p.MinStock < 0) {
		return e.Join(e.ErrInvalidInput, e.ErrNegativeAmount)
	}

	return nil
}

func applyProductPatch(p *domain.Product, patch *ProductPatch) {
	if patch == nil {
		return
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		p.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.PurchasePrice != nil {
		p.PurchasePrice = *patch.PurchasePrice
	}
	if patch.SellingPrice != nil {
		p.SellingPrice = *patch.SellingPrice
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.SKU != nil {
		p.SKU = strings.TrimSpace(*patch.SKU)
	}
}
