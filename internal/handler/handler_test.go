package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/internal/catalog"
	"backend/internal/gemini"
	"backend/internal/idgen"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router    *gin.Engine
	guestRepo repository.GuestRepository
	orderRepo repository.FoodOrderRepository
	gemini    *stubGemini
}

type stubGemini struct {
	reply string
	image []byte
	mime  string
	err   error
}

func (s *stubGemini) GenerateText(context.Context, string, []gemini.Message, string) (string, error) {
	return s.reply, s.err
}

func (s *stubGemini) GenerateImage(context.Context, string) ([]byte, string, error) {
	return s.image, s.mime, s.err
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	guestRepo := repository.NewGuestRepository()
	orderRepo := repository.NewFoodOrderRepository()
	roomRepo := repository.NewRoomRepository()
	roomRepo.Seed(context.Background(), catalog.Rooms())
	ids := idgen.NewSequenceProvider()
	stub := &stubGemini{reply: "Vanakkam!"}

	guestService := service.NewGuestService(guestRepo, roomRepo, ids)
	orderService := service.NewOrderService(orderRepo, guestRepo, ids)
	billingService := service.NewBillingService(guestRepo)
	roomService := service.NewRoomService(roomRepo)
	statisticsService := service.NewStatisticsService(guestRepo, orderRepo, roomRepo)
	conciergeService := service.NewConciergeService(stub)

	router := gin.New()
	root := router.Group("")
	NewGuestHandler(guestService, billingService).RegisterRoutes(root)
	NewOrderHandler(orderService).RegisterRoutes(root)
	NewCatalogHandler().RegisterRoutes(root)
	NewRoomHandler(roomService).RegisterRoutes(root)
	NewStatisticsHandler(statisticsService).RegisterRoutes(root)
	NewConciergeHandler(conciergeService).RegisterRoutes(root)

	return &fixture{router: router, guestRepo: guestRepo, orderRepo: orderRepo, gemini: stub}
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func (f *fixture) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestRegisterGuestEndpoint(t *testing.T) {
	f := newFixture(t)

	w, env := f.do(t, http.MethodPost, "/api/guests", gin.H{
		"name":         "Arun Kumar",
		"phone":        "9876543210",
		"package_type": "FAMILY",
		"advance_paid": "1500",
		"room_number":  "101",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", env.Status)

	var guest service.GuestResponse
	decodeData(t, env, &guest)
	assert.Equal(t, "G-1", guest.ID)
	assert.Equal(t, "Family Fun Pack", guest.PackageName)
	require.NotNil(t, guest.RoomNumber)
	assert.Equal(t, "101", *guest.RoomNumber)
	require.Len(t, guest.Transactions, 1)
	assert.Equal(t, "999.00", guest.Transactions[0].Amount)
}

func TestGetGuestNotFound(t *testing.T) {
	f := newFixture(t)

	w, env := f.do(t, http.MethodGet, "/api/guests/G-404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Error)
}

func TestListGuestsEnvelope(t *testing.T) {
	f := newFixture(t)
	_, _ = f.do(t, http.MethodPost, "/api/guests", gin.H{"name": "A"})
	_, _ = f.do(t, http.MethodPost, "/api/guests", gin.H{"name": "B"})

	w, env := f.do(t, http.MethodGet, "/api/guests?page=1&limit=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Guests []service.GuestResponse `json:"guests"`
		Meta   struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	decodeData(t, env, &data)
	require.Len(t, data.Guests, 1)
	assert.Equal(t, "B", data.Guests[0].Name, "newest first")
	assert.EqualValues(t, 2, data.Meta.Total)
	assert.Equal(t, 1, data.Meta.Limit)
}

func TestOrderStatusValidation(t *testing.T) {
	f := newFixture(t)
	_, env := f.do(t, http.MethodPost, "/api/guests", gin.H{"name": "Arun"})
	var guest service.GuestResponse
	decodeData(t, env, &guest)
	_, env = f.do(t, http.MethodPost, "/api/orders", gin.H{
		"guest_id": guest.ID, "items": "Dosa", "amount": "100",
	})
	var order service.OrderResponse
	decodeData(t, env, &order)

	// Unknown status is rejected by binding before the service runs.
	w, _ := f.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status", gin.H{"status": "EATEN"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Legal value, illegal transition.
	w, env = f.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status", gin.H{"status": "DELIVERED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "invalid transition")

	w, _ = f.do(t, http.MethodPatch, "/api/orders/O-404/status", gin.H{"status": "PREPARING"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeliveryWarningSurfacesInEnvelope(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.orderRepo.Create(context.Background(), model.FoodOrder{
		ID:      "O-GHOST",
		GuestID: "G-GONE",
		Items:   "Dosa",
		Status:  model.OrderPreparing,
	}))

	w, env := f.do(t, http.MethodPatch, "/api/orders/O-GHOST/status", gin.H{"status": "DELIVERED"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, service.WarnChargeNotPosted, env.Message)
}

func TestCatalogEndpoints(t *testing.T) {
	f := newFixture(t)

	w, env := f.do(t, http.MethodGet, "/api/catalog/packages", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var pkgs []model.GuestPackage
	decodeData(t, env, &pkgs)
	assert.Len(t, pkgs, 5)

	w, _ = f.do(t, http.MethodGet, "/api/catalog/packages/LUXURY", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = f.do(t, http.MethodGet, "/api/catalog/packages/PLATINUM", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = f.do(t, http.MethodGet, "/api/catalog/amenities?category=WELLNESS", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var amenities []model.Amenity
	decodeData(t, env, &amenities)
	require.NotEmpty(t, amenities)
	for _, a := range amenities {
		assert.Equal(t, model.AmenityWellness, a.Category)
	}
}

func TestRoomEndpoints(t *testing.T) {
	f := newFixture(t)

	w, env := f.do(t, http.MethodGet, "/api/rooms", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var rooms []service.RoomResponse
	decodeData(t, env, &rooms)
	assert.Len(t, rooms, 8)

	w, _ = f.do(t, http.MethodPut, "/api/rooms/103/clean", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = f.do(t, http.MethodPut, "/api/rooms/103/clean", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w, _ = f.do(t, http.MethodPut, "/api/rooms/999/clean", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConciergeEndpoints(t *testing.T) {
	f := newFixture(t)

	w, env := f.do(t, http.MethodPost, "/api/concierge/chat", gin.H{"message": "hello"})
	assert.Equal(t, http.StatusOK, w.Code)
	var chat service.ChatResponse
	decodeData(t, env, &chat)
	assert.Equal(t, "Vanakkam!", chat.Reply)
	assert.False(t, chat.Fallback)

	// Backend failure still yields HTTP 200 with the fallback reply.
	f.gemini.err = errors.New("backend down")
	w, env = f.do(t, http.MethodPost, "/api/concierge/chat", gin.H{"message": "hello"})
	assert.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &chat)
	assert.True(t, chat.Fallback)

	// Empty message fails binding.
	w, _ = f.do(t, http.MethodPost, "/api/concierge/chat", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFrontDeskFlow(t *testing.T) {
	f := newFixture(t)

	// Register with an advance and a room.
	_, env := f.do(t, http.MethodPost, "/api/guests", gin.H{
		"name":         "Arun Kumar",
		"phone":        "9876543210",
		"package_type": "FAMILY",
		"advance_paid": "500",
		"room_number":  "201",
	})
	var guest service.GuestResponse
	decodeData(t, env, &guest)

	// An amenity charge at the pool.
	w, _ := f.do(t, http.MethodPost, "/api/guests/"+guest.ID+"/charges", gin.H{
		"description": "Swimming Pool", "amount": "150",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Lunch ordered and walked through the kitchen.
	_, env = f.do(t, http.MethodPost, "/api/orders", gin.H{
		"guest_id": guest.ID, "items": "Veg Biryani, Lassi", "amount": "550",
	})
	var order service.OrderResponse
	decodeData(t, env, &order)
	w, _ = f.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status", gin.H{"status": "PREPARING"})
	assert.Equal(t, http.StatusOK, w.Code)
	w, env = f.do(t, http.MethodPatch, "/api/orders/"+order.ID+"/status", gin.H{"status": "DELIVERED"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.Message)

	// The invoice now carries three lines: entry fee, pool, food.
	_, env = f.do(t, http.MethodGet, "/api/guests/"+guest.ID+"/invoice", nil)
	var invoice service.InvoiceResponse
	decodeData(t, env, &invoice)
	require.Len(t, invoice.Lines, 3)
	assert.Equal(t, "Food: Veg Biryani...", invoice.Lines[2].Description)
	// 999 + 150 + 550, printed in whole rupees.
	assert.Equal(t, "1699", invoice.Total)
	assert.Equal(t, "Collect", invoice.Label)
	assert.Equal(t, "1199", invoice.AmountDue)

	// Checkout settles and releases the room.
	w, env = f.do(t, http.MethodPost, "/api/guests/"+guest.ID+"/checkout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var settlement service.SettlementResponse
	decodeData(t, env, &settlement)
	assert.Equal(t, "CHECKED_OUT", settlement.Status)
	assert.Equal(t, "Collect", settlement.Label)
	assert.Equal(t, "1199.00", settlement.AmountDue)

	// A second checkout conflicts.
	w, _ = f.do(t, http.MethodPost, "/api/guests/"+guest.ID+"/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The dashboard reflects all of it.
	_, env = f.do(t, http.MethodGet, "/api/statistics/overview", nil)
	var overview service.OverviewResponse
	decodeData(t, env, &overview)
	assert.EqualValues(t, 0, overview.ActiveGuests)
	assert.EqualValues(t, 1, overview.CheckedOutGuests)
	assert.Equal(t, "500.00", overview.TotalCollection)
}
