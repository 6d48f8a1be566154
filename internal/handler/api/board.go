package api

import (
	"net/http"
	"strings"

	"cinema-scheduler/internal/domain/roomevent"
	resdto "cinema-scheduler/internal/handler/dto/response"
	"cinema-scheduler/internal/handler/httperr"
	"cinema-scheduler/internal/pkg/clock"
	"cinema-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	q     queries.BoardQueries
	clock clock.Clock
}

func NewBoardHandler(q queries.BoardQueries, clk clock.Clock) *BoardHandler {
	return &BoardHandler{q: q, clock: clk}
}

// @Summary Cinema board
// @Description Events of every room for the given days, grouped by room and ordered by start
// @Tags board
// @Produce json
// @Param days query string false "Comma separated days (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.BoardResponse
// @Failure 400 {object} httperr.Response
// @Router /api/board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	days, err := h.parseDays(c.Query("days"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid days", nil)
		return
	}

	board, err := h.q.GetCinemaBoard(c.Request.Context(), queries.GetCinemaBoardQuery{Days: days})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load board", nil)
		return
	}

	resp, err := resdto.FromCinemaBoard(board)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render board", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BoardHandler) parseDays(raw string) ([]roomevent.Day, error) {
	if strings.TrimSpace(raw) == "" {
		return []roomevent.Day{roomevent.DayOf(h.clock.Now())}, nil
	}

	parts := strings.Split(raw, ",")
	days := make([]roomevent.Day, 0, len(parts))
	for _, p := range parts {
		day, err := roomevent.ParseDay(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
