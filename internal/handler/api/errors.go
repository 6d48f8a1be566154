package api

import (
	"net/http"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/handler/httperr"
	"cinema-scheduler/internal/pkg/errs"
	"cinema-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// abortWithScheduleError picks the status from the sentinel the error chain carries.
func abortWithScheduleError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrMovieNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Movie not found", nil)
	case errs.Is(err, roomevent.ErrRoomUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available in the requested time range", nil)
	case errs.Is(err, roomevent.ErrOutsidePremiereHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Premiere must fit within premiere hours", nil)
	case errs.Is(err, roomevent.ErrOutsideWorkingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Event must fit within working hours", nil)
	case errs.Is(err, commands.ErrDomainValidation),
		errs.Is(err, roomevent.ErrInvalidTimeRange),
		errs.Is(err, roomevent.ErrInvalidShowKind),
		errs.Is(err, roomevent.ErrInvalidReason):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
