package api

import (
	"net/http"

	reqdto "cinema-scheduler/internal/handler/dto/request"
	resdto "cinema-scheduler/internal/handler/dto/response"
	"cinema-scheduler/internal/handler/httperr"
	"cinema-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
}

func NewCatalogHandler(cmds commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{cmds: cmds}
}

// @Summary Register room
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRoomRequest true "Register room request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms [post]
func (h *CatalogHandler) RegisterRoom(c *gin.Context) {
	var req reqdto.RegisterRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.RegisterRoom(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithScheduleError(c, err, "Register room failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Register movie
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterMovieRequest true "Register movie request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/movies [post]
func (h *CatalogHandler) RegisterMovie(c *gin.Context) {
	var req reqdto.RegisterMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.RegisterMovie(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithScheduleError(c, err, "Register movie failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
