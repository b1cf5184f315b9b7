package http

import (
	"net/http"

	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
)

type SessionHandler struct {
	storeUsecase usecase.StoreUC
	logger       logger.Logger
}

func NewSessionHandler(storeUsecase usecase.StoreUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{storeUsecase: storeUsecase, logger: logger}
}

// toggleLanguage
//
//	@Summary	Переключение языка интерфейса (en/bn)
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	LanguageResponse
//	@Router		/session/language [post]
func (s *SessionHandler) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := s.storeUsecase.ToggleLanguage(r.Context())
	if err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, LanguageResponse{Language: lang})
}

// logout
//
//	@Summary	Завершение сессии
//	@Tags		session
//	@Success	204
//	@Router		/session/logout [post]
func (s *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.storeUsecase.Logout(r.Context()); err != nil {
		respondError(s.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
