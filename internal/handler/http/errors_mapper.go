package http

import (
	"errors"
	"net/http"

	"github.com/AviMalewar/Vibe-app/internal/oracle"
	"github.com/AviMalewar/Vibe-app/internal/service"
	"github.com/AviMalewar/Vibe-app/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrProfileNotFound:         http.StatusNotFound,
	service.ErrNoActiveSession:         http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	oracle.ErrNotConfigured:     http.StatusServiceUnavailable,
	oracle.ErrOracleUnavailable: http.StatusBadGateway,
	oracle.ErrMalformedVerdict:  http.StatusBadGateway,

	store.ErrNoProfileFound:  http.StatusNotFound,
	store.ErrNoActiveSession: http.StatusNotFound,
	store.ErrKeyNotFound:     http.StatusNotFound,
	store.ErrExecutingQuery:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
