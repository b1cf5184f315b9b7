package usecase

import "github.com/DRSN-tech/retail-core/internal/domain"

// SaleObserver получает каждую проведённую продажу после фиксации снимка.
// Вызов идёт под блокировкой хранилища в порядке номеров накладных,
// поэтому реализация не должна блокировать и обращаться к Store.
type SaleObserver interface {
	SaleRecorded(sale domain.Sale)
}

type nopObserver struct{}

func (nopObserver) SaleRecorded(domain.Sale) {}
