package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewProductHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{storeUsecase: storeUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает каталог в порядке добавления. q фильтрует по названию и SKU
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Строка поиска"
//	@Success		200	{array}		domain.Product
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, p.storeUsecase.SearchProducts(r.URL.Query().Get("q")))
}

// addProduct
//
//	@Summary		Добавление товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductRequest	true	"Товар"
//	@Success		201		{object}	domain.Product
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	if err := req.validate(); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	product, err := p.storeUsecase.AddProduct(r.Context(), req.toInput())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	p.logger.Infof("product added: id=%s name=%s", product.ID, product.Name)
	WriteSuccess(w, http.StatusCreated, product)
}

// updateProduct
//
//	@Summary		Изменение товара
//	@Description	Меняет только переданные поля
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID товара"
//	@Param			patch	body		ProductPatchRequest	true	"Изменяемые поля"
//	@Success		200		{object}	domain.Product
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/products/{id} [patch]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductPatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	if err := req.validate(); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	product, err := p.storeUsecase.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req.toPatch())
	if err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Param		id	path	string	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := p.storeUsecase.DeleteProduct(r.Context(), id); err != nil {
		respondError(p.logger, w, r, err)
		return
	}

	p.logger.Infof("product deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
