package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет доменную ошибку с HTTP-статусом.
// Для 400 сообщение берётся из самой ошибки, внутренние ошибки не раскрываются.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrSaleNotFound):
		return http.StatusNotFound, e.ErrSaleNotFound.Error()
	case errors.Is(err, e.ErrTooManyRequests):
		return http.StatusTooManyRequests, e.ErrTooManyRequests.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusBadRequest, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrInconsistentTotals):
		return http.StatusBadRequest, e.ErrInconsistentTotals.Error()
	case errors.Is(err, e.ErrInvalidJSON):
		return http.StatusBadRequest, e.ErrInvalidJSON.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, validationMessage(err)
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// validationMessage возвращает самую конкретную причину из цепочки e.Join.
func validationMessage(err error) string {
	for _, target := range []error{
		e.ErrNameRequired,
		e.ErrNegativeAmount,
		e.ErrInvalidQuantity,
		e.ErrInvalidPayment,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return e.ErrInvalidInput.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля отклоняются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Join(e.ErrInvalidJSON, err))
	}
	return nil
}

// checkMoney проверяет денежное значение из запроса:
// не отрицательное, не больше 10^9 и не точнее копеек.
func checkMoney(d decimal.Decimal) error {
	maxAmount := decimal.NewFromInt(1_000_000_000)

	if d.IsNegative() || d.GreaterThan(maxAmount) {
		return e.ErrInvalidPrice
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return e.ErrPricePrecision
	}

	return nil
}

func checkMoneyPtr(d *decimal.Decimal) error {
	if d == nil {
		return nil
	}
	return checkMoney(*d)
}

// intQuery читает целочисленный параметр запроса или def, если параметр не задан.
func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}
	return n, nil
}

// respondError пишет ошибку клиенту и логирует её: 4xx как предупреждение, 5xx как ошибку.
func respondError(log logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, _ := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%s %s", r.Method, r.URL.Path)
	} else {
		log.Warnf("%d %s %s: %s", code, r.Method, r.URL.Path, err.Error())
	}
	WriteError(w, err)
}
