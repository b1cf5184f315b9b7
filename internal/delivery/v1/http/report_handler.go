package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-core/internal/report"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
)

// ReportHandler отдаёт снимок состояния и производные отчёты по нему.
type ReportHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewReportHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{storeUsecase: storeUsecase, logger: logger}
}

// getState
//
//	@Summary	Текущий снимок состояния
//	@Tags		state
//	@Produce	json
//	@Success	200	{object}	domain.AppState
//	@Router		/state [get]
func (h *ReportHandler) getState(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.storeUsecase.Snapshot())
}

// getDashboard
//
//	@Summary	Дашборд
//	@Tags		reports
//	@Produce	json
//	@Param		top	query		int	false	"Размер списка лидеров продаж"	default(5)
//	@Success	200	{object}	report.Dashboard
//	@Failure	400	{object}	ErrorResponse
//	@Router		/reports/dashboard [get]
func (h *ReportHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	top, err := intQuery(r, "top", report.DefaultTopN)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, report.BuildDashboard(h.storeUsecase.Snapshot(), top))
}
