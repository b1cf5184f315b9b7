package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
)

type CustomerHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewCustomerHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{storeUsecase: storeUsecase, logger: logger}
}

// listCustomers
//
//	@Summary	Список покупателей
//	@Tags		customers
//	@Produce	json
//	@Param		q	query	string	false	"Поиск по имени или телефону"
//	@Success	200	{array}	domain.Customer
//	@Router		/customers [get]
func (c *CustomerHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, c.storeUsecase.SearchCustomers(r.URL.Query().Get("q")))
}

// addCustomer
//
//	@Summary	Добавление покупателя
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		CustomerRequest	true	"Покупатель"
//	@Success	201			{object}	domain.Customer
//	@Failure	400			{object}	ErrorResponse
//	@Router		/customers [post]
func (c *CustomerHandler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(c.logger, w, r, err)
		return
	}

	customer, err := c.storeUsecase.AddCustomer(r.Context(), req.toInput())
	if err != nil {
		respondError(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, customer)
}
