package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type SaleHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewSaleHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{storeUsecase: storeUsecase, logger: logger}
}

// listSales
//
//	@Summary		Журнал продаж
//	@Description	От новых к старым. q фильтрует по номеру накладной и имени покупателя
//	@Tags			sales
//	@Produce		json
//	@Param			q	query	string	false	"Строка поиска"
//	@Success		200	{array}	domain.Sale
//	@Router			/sales [get]
func (s *SaleHandler) listSales(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, s.storeUsecase.SearchSales(r.URL.Query().Get("q")))
}

// getSale
//
//	@Summary	Продажа по номеру накладной
//	@Tags		sales
//	@Produce	json
//	@Param		invoice	path		string	true	"Номер накладной, например INV-1001"
//	@Success	200		{object}	domain.Sale
//	@Failure	404		{object}	ErrorResponse
//	@Router		/sales/{invoice} [get]
func (s *SaleHandler) getSale(w http.ResponseWriter, r *http.Request) {
	sale, err := s.storeUsecase.FindSale(chi.URLParam(r, "invoice"))
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, sale)
}

// quoteSale
//
//	@Summary		Расчёт итогов корзины
//	@Description	subtotal по строкам, налог по плоской ставке, total = subtotal + tax - discount
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			cart	body		QuoteRequest	true	"Корзина"
//	@Success		200		{object}	QuoteResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Router			/sales/quote [post]
func (s *SaleHandler) quoteSale(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(s.logger, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	items, err := toSaleItems(req.Items)
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	q, err := s.storeUsecase.QuoteSale(items, req.Discount)
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toQuoteResponse(q))
}

// recordSale
//
//	@Summary		Проведение продажи
//	@Description	Списывает остатки, обновляет сумму покупок покупателя и выдаёт номер накладной
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			sale	body		SaleRequest	true	"Продажа"
//	@Success		201		{object}	domain.Sale
//	@Failure		400		{object}	ErrorResponse	"Пустая корзина, несогласованные итоги или ошибка валидации"
//	@Failure		429		{object}	ErrorResponse
//	@Router			/sales [post]
func (s *SaleHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(s.logger, w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	items, err := toSaleItems(req.Items)
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	q := req.clientQuote()
	if !req.hasTotals() {
		if q, err = s.storeUsecase.QuoteSale(items, req.Discount); err != nil {
			respondError(s.logger, w, r, err)
			return
		}
	}

	sale, err := s.storeUsecase.RecordSale(r.Context(), usecase.NewSaleRequest(
		req.CustomerID,
		req.CustomerName,
		items,
		q,
		domain.PaymentMethod(req.PaymentMethod),
	))
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, sale)
}
