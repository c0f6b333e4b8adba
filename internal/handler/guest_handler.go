package handler

import (
	"errors"
	"net/http"

	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestService   service.GuestService
	billingService service.BillingService
}

func NewGuestHandler(guestService service.GuestService, billingService service.BillingService) *GuestHandler {
	return &GuestHandler{
		guestService:   guestService,
		billingService: billingService,
	}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *GuestHandler) RegisterRoutes(router *gin.RouterGroup) {
	guests := router.Group("/api/guests")
	{
		guests.POST("", h.RegisterGuest)
		guests.GET("", h.ListGuests)
		guests.GET("/:id", h.GetGuest)
		guests.POST("/:id/charges", h.AddCharge)
		guests.POST("/:id/wallet/topup", h.TopUpWallet)
		guests.POST("/:id/checkout", h.CheckOut)
		guests.GET("/:id/billing", h.BillingSummary)
		guests.GET("/:id/invoice", h.Invoice)
	}
}

// RegisterGuest registers a new guest
// @Summary      Register guest
// @Description  Registers a guest, seeds the ledger with the package entry fee and optionally assigns a room. Missing fields are substituted with defaults.
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterGuestRequest  true  "Register Guest Payload"
// @Success      201      {object}  response.Response{data=service.GuestResponse}
// @Failure      500      {object}  response.Response
// @Router       /api/guests [post]
func (h *GuestHandler) RegisterGuest(c *gin.Context) {
	var req service.RegisterGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	guest, err := h.guestService.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, guest))
}

// ListGuests lists guests
// @Summary      List guests
// @Description  Lists guests newest first, optionally filtered by status
// @Tags         guests
// @Produce      json
// @Param        status  query     string  false  "ACTIVE, CHECKED_OUT or PENDING_PAYMENT"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.Response{data=[]service.GuestResponse}
// @Router       /api/guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	params := pagination.Parse(c)
	guests, total, err := h.guestService.ListGuests(c.Request.Context(), c.Query("status"), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"guests": guests,
		"meta":   params.Meta(total),
	}))
}

// GetGuest fetches one guest with their full ledger
// @Summary      Get guest
// @Tags         guests
// @Produce      json
// @Param        id   path      string  true  "Guest ID"
// @Success      200  {object}  response.Response{data=service.GuestResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	guest, err := h.guestService.GetGuest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondGuestError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, guest))
}

// AddCharge appends a DEBIT charge to a guest's ledger
// @Summary      Add charge
// @Description  Decomposes a gross amount into taxable base + CGST + SGST and appends it to the ledger
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Guest ID"
// @Param        payload  body      service.AddChargeRequest  true  "Charge Payload"
// @Success      201      {object}  response.Response{data=service.TransactionResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/guests/{id}/charges [post]
func (h *GuestHandler) AddCharge(c *gin.Context) {
	var req service.AddChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tx, err := h.guestService.AddCharge(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tx))
}

// TopUpWallet credits a guest's wallet
// @Summary      Top up wallet
// @Description  Appends a CREDIT transaction and raises the wallet balance. Credits are not netted into the invoice total.
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Guest ID"
// @Param        payload  body      service.TopUpWalletRequest  true  "Top-up Payload"
// @Success      200      {object}  response.Response{data=service.GuestResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/guests/{id}/wallet/topup [post]
func (h *GuestHandler) TopUpWallet(c *gin.Context) {
	var req service.TopUpWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	guest, err := h.guestService.TopUpWallet(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, guest))
}

// CheckOut settles a guest's account and checks them out
// @Summary      Check out guest
// @Description  One-way transition to CHECKED_OUT; returns the settlement summary with the Collect/Refund amount
// @Tags         guests
// @Produce      json
// @Param        id   path      string  true  "Guest ID"
// @Success      200  {object}  response.Response{data=service.SettlementResponse}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/guests/{id}/checkout [post]
func (h *GuestHandler) CheckOut(c *gin.Context) {
	settlement, err := h.guestService.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, settlement))
}

// BillingSummary returns the live billing aggregation for a guest
// @Summary      Billing summary
// @Tags         billing
// @Produce      json
// @Param        id   path      string  true  "Guest ID"
// @Success      200  {object}  response.Response{data=service.BillingSummaryResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/guests/{id}/billing [get]
func (h *GuestHandler) BillingSummary(c *gin.Context) {
	summary, err := h.billingService.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondGuestError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// Invoice returns the structured invoice document for a guest
// @Summary      Invoice document
// @Description  Line items, tax summary and the Collect/Refund settlement line, ready for the rendering collaborator
// @Tags         billing
// @Produce      json
// @Param        id   path      string  true  "Guest ID"
// @Success      200  {object}  response.Response{data=service.InvoiceResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/guests/{id}/invoice [get]
func (h *GuestHandler) Invoice(c *gin.Context) {
	invoice, err := h.billingService.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondGuestError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}

func respondGuestError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrGuestNotFound) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
}
