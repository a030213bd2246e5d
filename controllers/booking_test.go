package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salon-backend/cache"
	"salon-backend/config"
	"salon-backend/models"
	"salon-backend/routes"
	"salon-backend/storage"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStorage()
	cfg := &config.Config{
		Port:        "0",
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"http://localhost:3000"},
	}
	r := routes.SetupRouter(store, cache.NewNoop(), zap.NewNop(), cfg)
	return r, store
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	} else {
		buf = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBooking(t *testing.T, w *httptest.ResponseRecorder) models.Booking {
	t.Helper()
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func bookingPayload() map[string]any {
	return map[string]any{
		"customerId":     nil,
		"customerName":   "王小明",
		"customerPhone":  "0912345678",
		"customerLineId": nil,
		"serviceId":      nil,
		"serviceName":    "專業剪髮",
		"stylistName":    "益安",
		"bookingDate":    "2025-03-10",
		"bookingTime":    "14:00",
		"status":         "pending",
		"notes":          nil,
	}
}

func TestCreateBookingResolvesNewCustomer(t *testing.T) {
	r, store := setupTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	booking := decodeBooking(t, w)
	assert.Equal(t, models.StatusPending, booking.Status)
	require.NotNil(t, booking.CustomerID)

	customer, err := store.GetCustomer(*booking.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "0912345678", customer.Phone)
	assert.Equal(t, "王小明", customer.Name)
}

func TestCreateBookingReusesCustomerByPhone(t *testing.T) {
	r, store := setupTestRouter(t)

	existing, err := store.CreateCustomer(&models.Customer{Name: "王小明", Phone: "0912345678"})
	require.NoError(t, err)

	payload := bookingPayload()
	payload["customerName"] = "同電話不同名"
	w := performRequest(t, r, http.MethodPost, "/api/bookings", payload)
	require.Equal(t, http.StatusOK, w.Code)

	booking := decodeBooking(t, w)
	require.NotNil(t, booking.CustomerID)
	assert.Equal(t, existing.ID, *booking.CustomerID)

	// First match wins and its name is never overwritten.
	customer, err := store.GetCustomer(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "王小明", customer.Name)

	customers, err := store.GetAllCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCreateBookingDefaultsStatusToPending(t *testing.T) {
	r, _ := setupTestRouter(t)

	payload := bookingPayload()
	delete(payload, "status")
	w := performRequest(t, r, http.MethodPost, "/api/bookings", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusPending, decodeBooking(t, w).Status)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	r, _ := setupTestRouter(t)

	payload := bookingPayload()
	delete(payload, "customerName")
	w := performRequest(t, r, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestCreateBookingRejectsUnknownStatus(t *testing.T) {
	r, _ := setupTestRouter(t)

	payload := bookingPayload()
	payload["status"] = "archived"
	w := performRequest(t, r, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Two customers can be granted the same stylist and slot: the system does
// no capacity check.
func TestSameSlotBookingsBothSucceed(t *testing.T) {
	r, store := setupTestRouter(t)

	stylist, err := store.CreateStaffMember(&models.Staff{Name: "益安", Role: models.RoleDesigner, IsActive: true})
	require.NoError(t, err)

	for _, phone := range []string{"0911111111", "0922222222"} {
		payload := bookingPayload()
		payload["customerPhone"] = phone
		payload["stylistId"] = stylist.ID.String()
		w := performRequest(t, r, http.MethodPost, "/api/bookings", payload)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.StatusPending, decodeBooking(t, w).Status)
	}

	byDate, err := store.GetBookingsByDate("2025-03-10")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}

func TestGetBookingsByDateSorted(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, slot := range []string{"16:30", "10:00", "13:30"} {
		payload := bookingPayload()
		payload["bookingTime"] = slot
		w := performRequest(t, r, http.MethodPost, "/api/bookings", payload)
		require.Equal(t, http.StatusOK, w.Code)
	}
	other := bookingPayload()
	other["bookingDate"] = "2025-03-11"
	performRequest(t, r, http.MethodPost, "/api/bookings", other)

	w := performRequest(t, r, http.MethodGet, "/api/bookings/date/2025-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 3)
	assert.Equal(t, "10:00", bookings[0].BookingTime)
	assert.Equal(t, "13:30", bookings[1].BookingTime)
	assert.Equal(t, "16:30", bookings[2].BookingTime)

	w = performRequest(t, r, http.MethodGet, "/api/bookings/date/2099-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPatchClearsAssistantKeepsDesigner(t *testing.T) {
	r, store := setupTestRouter(t)

	stylistID := uuid.New()
	assistantID := uuid.New()
	assistantName := "小美"
	created, err := store.CreateBooking(&models.Booking{
		CustomerName:  "王小明",
		CustomerPhone: "0912345678",
		ServiceName:   "專業剪髮",
		StylistID:     &stylistID,
		StylistName:   "益安",
		AssistantID:   &assistantID,
		AssistantName: &assistantName,
		BookingDate:   "2025-03-10",
		BookingTime:   "14:00",
		Status:        models.StatusPending,
	})
	require.NoError(t, err)

	w := performRequest(t, r, http.MethodPatch, "/api/bookings/"+created.ID.String(), map[string]any{
		"status":        "confirmed",
		"assistantId":   nil,
		"assistantName": nil,
	})
	require.Equal(t, http.StatusOK, w.Code)

	booking := decodeBooking(t, w)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Nil(t, booking.AssistantID)
	assert.Nil(t, booking.AssistantName)
	require.NotNil(t, booking.StylistID)
	assert.Equal(t, stylistID, *booking.StylistID)
	assert.Equal(t, "益安", booking.StylistName)
}

func TestPatchRejectsInvalidStatus(t *testing.T) {
	r, store := setupTestRouter(t)

	created, err := store.CreateBooking(&models.Booking{
		CustomerName:  "王小明",
		CustomerPhone: "0912345678",
		ServiceName:   "專業剪髮",
		StylistName:   "益安",
		BookingDate:   "2025-03-10",
		BookingTime:   "14:00",
		Status:        models.StatusPending,
	})
	require.NoError(t, err)

	w := performRequest(t, r, http.MethodPatch, "/api/bookings/"+created.ID.String(), map[string]any{
		"status": "done",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got, err := store.GetBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestPatchMissingBookingReturns404(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := performRequest(t, r, http.MethodPatch, "/api/bookings/"+uuid.NewString(), map[string]any{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, w.Body.String())
}

func TestDeleteBooking(t *testing.T) {
	r, store := setupTestRouter(t)

	created, err := store.CreateBooking(&models.Booking{
		CustomerName:  "王小明",
		CustomerPhone: "0912345678",
		ServiceName:   "專業剪髮",
		StylistName:   "益安",
		BookingDate:   "2025-03-10",
		BookingTime:   "14:00",
		Status:        models.StatusPending,
	})
	require.NoError(t, err)

	w := performRequest(t, r, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = performRequest(t, r, http.MethodDelete, "/api/bookings/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, w.Body.String())
}

func TestGetMissingBookingReturns404(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/api/bookings/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, w.Body.String())
}

func TestStaffRolePools(t *testing.T) {
	r, store := setupTestRouter(t)

	_, err := store.CreateStaffMember(&models.Staff{Name: "益安", Role: models.RoleDesigner, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateStaffMember(&models.Staff{Name: "小美", Role: models.RoleAssistant, IsActive: true})
	require.NoError(t, err)

	w := performRequest(t, r, http.MethodGet, "/api/staff/role/designer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var designers []models.Staff
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &designers))
	require.Len(t, designers, 1)
	assert.Equal(t, "益安", designers[0].Name)

	w = performRequest(t, r, http.MethodGet, "/api/staff/role/manager", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
