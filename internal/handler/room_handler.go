package handler

import (
	"errors"
	"net/http"

	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService service.RoomService
}

func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *RoomHandler) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/api/rooms")
	{
		rooms.GET("", h.ListRooms)
		rooms.PUT("/:number/clean", h.MarkCleaned)
	}
}

// ListRooms lists the room inventory with live occupancy
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.RoomResponse}
// @Router       /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rooms))
}

// MarkCleaned returns a cleaned room to the available pool
// @Summary      Mark room cleaned
// @Tags         rooms
// @Produce      json
// @Param        number  path      string  true  "Room number"
// @Success      200     {object}  response.Response{data=service.RoomResponse}
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /api/rooms/{number}/clean [put]
func (h *RoomHandler) MarkCleaned(c *gin.Context) {
	room, err := h.roomService.MarkCleaned(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, room))
}
