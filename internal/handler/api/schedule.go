package api

import (
	"net/http"

	reqdto "cinema-scheduler/internal/handler/dto/request"
	resdto "cinema-scheduler/internal/handler/dto/response"
	"cinema-scheduler/internal/handler/httperr"
	"cinema-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	shows            commands.ShowCommands
	cleaningSlots    commands.CleaningSlotCommands
	unavailabilities commands.UnavailabilityCommands
	schedule         commands.ScheduleCommands
}

func NewScheduleHandler(
	shows commands.ShowCommands,
	cleaningSlots commands.CleaningSlotCommands,
	unavailabilities commands.UnavailabilityCommands,
	schedule commands.ScheduleCommands,
) *ScheduleHandler {
	return &ScheduleHandler{
		shows:            shows,
		cleaningSlots:    cleaningSlots,
		unavailabilities: unavailabilities,
		schedule:         schedule,
	}
}

// @Summary Schedule show
// @Description Schedule a show together with the cleaning slot that follows it
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body reqdto.CreateShowRequest true "Create show request"
// @Success 201 {object} resdto.ShowCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/shows [post]
func (h *ScheduleHandler) CreateShow(c *gin.Context) {
	var req reqdto.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.shows.CreateShow(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithScheduleError(c, err, "Create show failed")
		return
	}

	c.JSON(http.StatusCreated, resdto.ShowCreatedResponse{
		ShowID:         result.ShowID,
		CleaningSlotID: result.CleaningSlotID,
	})
}

// @Summary Schedule cleaning slot
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCleaningSlotRequest true "Create cleaning slot request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cleaning-slots [post]
func (h *ScheduleHandler) CreateCleaningSlot(c *gin.Context) {
	var req reqdto.CreateCleaningSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cleaningSlots.CreateCleaningSlot(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithScheduleError(c, err, "Create cleaning slot failed")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.CleaningSlotID})
}

// @Summary Mark room unavailable
// @Description Block a room for a rent or a private party
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUnavailabilityRequest true "Create unavailability request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/unavailabilities [post]
func (h *ScheduleHandler) CreateUnavailability(c *gin.Context) {
	var req reqdto.CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
		return
	}

	result, err := h.unavailabilities.CreateUnavailability(c.Request.Context(), cmd)
	if err != nil {
		abortWithScheduleError(c, err, "Create unavailability failed")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.UnavailabilityID})
}

// @Summary Clear schedule
// @Description Remove every scheduled room event
// @Tags schedule
// @Success 204
// @Router /api/schedule [delete]
func (h *ScheduleHandler) ClearSchedule(c *gin.Context) {
	if err := h.schedule.ClearSchedule(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Clear schedule failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
