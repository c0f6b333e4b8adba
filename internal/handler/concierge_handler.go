package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ConciergeHandler struct {
	conciergeService service.ConciergeService
}

func NewConciergeHandler(conciergeService service.ConciergeService) *ConciergeHandler {
	return &ConciergeHandler{conciergeService: conciergeService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ConciergeHandler) RegisterRoutes(router *gin.RouterGroup) {
	concierge := router.Group("/api/concierge")
	{
		concierge.POST("/chat", h.Chat)
		concierge.POST("/souvenir", h.Souvenir)
	}
}

// Chat talks to the digital concierge
// @Summary      Concierge chat
// @Description  Sends the conversation history plus a new message to the generative concierge. Backend failures degrade to a fixed fallback reply, never an error.
// @Tags         concierge
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ChatRequest  true  "Chat Payload"
// @Success      200      {object}  response.Response{data=service.ChatResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/concierge/chat [post]
func (h *ConciergeHandler) Chat(c *gin.Context) {
	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.conciergeService.Chat(c.Request.Context(), req)))
}

// Souvenir generates a digital souvenir image
// @Summary      Generate souvenir
// @Description  Generates a resort-branded souvenir image from a free-text prompt. On failure the payload carries a fallback message and no image.
// @Tags         concierge
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SouvenirRequest  true  "Souvenir Payload"
// @Success      200      {object}  response.Response{data=service.SouvenirResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/concierge/souvenir [post]
func (h *ConciergeHandler) Souvenir(c *gin.Context) {
	var req service.SouvenirRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.conciergeService.Souvenir(c.Request.Context(), req)))
}
