package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-backend/models"
)

func newBooking(name, phone, date, timeSlot string) *models.Booking {
	return &models.Booking{
		CustomerName:  name,
		CustomerPhone: phone,
		ServiceName:   "專業剪髮",
		StylistName:   "益安",
		BookingDate:   date,
		BookingTime:   timeSlot,
		Status:        models.StatusPending,
	}
}

func TestCreateBookingGeneratesIDAndTimestamp(t *testing.T) {
	store := NewMemStorage()

	created, err := store.CreateBooking(newBooking("王小明", "0912345678", "2025-03-10", "14:00"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetBooking(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "王小明", got.CustomerName)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestUpdateBookingMissingIDReturnsNil(t *testing.T) {
	store := NewMemStorage()

	updated, err := store.UpdateBooking(uuid.New(), map[string]any{"status": models.StatusConfirmed})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteBookingReportsExistence(t *testing.T) {
	store := NewMemStorage()

	created, err := store.CreateBooking(newBooking("王小明", "0912345678", "2025-03-10", "14:00"))
	require.NoError(t, err)

	deleted, err := store.DeleteBooking(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteBooking(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetAllBookingsNewestFirst(t *testing.T) {
	store := NewMemStorage()

	first, err := store.CreateBooking(newBooking("一", "0911111111", "2025-03-10", "10:00"))
	require.NoError(t, err)
	second, err := store.CreateBooking(newBooking("二", "0922222222", "2025-03-11", "11:00"))
	require.NoError(t, err)

	all, err := store.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestGetBookingsByDateFiltersAndSortsByTime(t *testing.T) {
	store := NewMemStorage()

	_, err := store.CreateBooking(newBooking("午後", "0911111111", "2025-03-10", "15:30"))
	require.NoError(t, err)
	_, err = store.CreateBooking(newBooking("早上", "0922222222", "2025-03-10", "10:00"))
	require.NoError(t, err)
	_, err = store.CreateBooking(newBooking("別天", "0933333333", "2025-03-11", "09:00"))
	require.NoError(t, err)

	byDate, err := store.GetBookingsByDate("2025-03-10")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "10:00", byDate[0].BookingTime)
	assert.Equal(t, "15:30", byDate[1].BookingTime)

	empty, err := store.GetBookingsByDate("2099-01-01")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetBookingsByCustomer(t *testing.T) {
	store := NewMemStorage()

	customer, err := store.CreateCustomer(&models.Customer{Name: "王小明", Phone: "0912345678"})
	require.NoError(t, err)

	linked := newBooking("王小明", "0912345678", "2025-03-10", "14:00")
	linked.CustomerID = &customer.ID
	_, err = store.CreateBooking(linked)
	require.NoError(t, err)

	_, err = store.CreateBooking(newBooking("別人", "0999999999", "2025-03-10", "15:00"))
	require.NoError(t, err)

	got, err := store.GetBookingsByCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "王小明", got[0].CustomerName)
}

func TestGetCustomerByPhoneReturnsOldestMatch(t *testing.T) {
	store := NewMemStorage()

	older, err := store.CreateCustomer(&models.Customer{Name: "原始", Phone: "0912345678"})
	require.NoError(t, err)
	_, err = store.CreateCustomer(&models.Customer{Name: "重複", Phone: "0912345678"})
	require.NoError(t, err)

	got, err := store.GetCustomerByPhone("0912345678")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, older.ID, got.ID)

	missing, err := store.GetCustomerByPhone("0000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateBookingClearsAssistantPair(t *testing.T) {
	store := NewMemStorage()

	assistantID := uuid.New()
	assistantName := "小美"
	b := newBooking("王小明", "0912345678", "2025-03-10", "14:00")
	b.AssistantID = &assistantID
	b.AssistantName = &assistantName
	created, err := store.CreateBooking(b)
	require.NoError(t, err)

	updated, err := store.UpdateBooking(created.ID, map[string]any{
		"status":        models.StatusConfirmed,
		"assistantId":   nil,
		"assistantName": nil,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.AssistantID)
	assert.Nil(t, updated.AssistantName)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	// Designer assignment untouched.
	assert.Equal(t, "益安", updated.StylistName)
}

func TestUpdateBookingAssignsStylistPair(t *testing.T) {
	store := NewMemStorage()

	created, err := store.CreateBooking(newBooking("王小明", "0912345678", "2025-03-10", "14:00"))
	require.NoError(t, err)

	stylistID := uuid.New()
	updated, err := store.UpdateBooking(created.ID, map[string]any{
		"stylistId":   stylistID.String(),
		"stylistName": "巧宣",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.StylistID)
	assert.Equal(t, stylistID, *updated.StylistID)
	assert.Equal(t, "巧宣", updated.StylistName)
}

func TestGetUnlinkedBookings(t *testing.T) {
	store := NewMemStorage()

	customer, err := store.CreateCustomer(&models.Customer{Name: "已連結", Phone: "0911111111"})
	require.NoError(t, err)

	linked := newBooking("已連結", "0911111111", "2025-03-10", "10:00")
	linked.CustomerID = &customer.ID
	_, err = store.CreateBooking(linked)
	require.NoError(t, err)

	unlinkedBooking, err := store.CreateBooking(newBooking("未連結", "0922222222", "2025-03-10", "11:00"))
	require.NoError(t, err)

	unlinked, err := store.GetUnlinkedBookings()
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, unlinkedBooking.ID, unlinked[0].ID)
}

func TestDeleteStaffKeepsBookingNames(t *testing.T) {
	store := NewMemStorage()

	stylist, err := store.CreateStaffMember(&models.Staff{Name: "益安", Role: models.RoleDesigner, IsActive: true})
	require.NoError(t, err)

	b := newBooking("王小明", "0912345678", "2025-03-10", "14:00")
	b.StylistID = &stylist.ID
	created, err := store.CreateBooking(b)
	require.NoError(t, err)

	deleted, err := store.DeleteStaffMember(stylist.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := store.GetBooking(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "益安", got.StylistName)
}

func TestGetStaffByRoleReturnsActiveOnly(t *testing.T) {
	store := NewMemStorage()

	_, err := store.CreateStaffMember(&models.Staff{Name: "益安", Role: models.RoleDesigner, IsActive: true})
	require.NoError(t, err)
	_, err = store.CreateStaffMember(&models.Staff{Name: "離職", Role: models.RoleDesigner, IsActive: false})
	require.NoError(t, err)
	_, err = store.CreateStaffMember(&models.Staff{Name: "小美", Role: models.RoleAssistant, IsActive: true})
	require.NoError(t, err)

	designers, err := store.GetStaffByRole(models.RoleDesigner)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	assert.Equal(t, "益安", designers[0].Name)

	assistants, err := store.GetStaffByRole(models.RoleAssistant)
	require.NoError(t, err)
	require.Len(t, assistants, 1)
	assert.Equal(t, "小美", assistants[0].Name)
}

func TestGetActiveServicesFiltersInactive(t *testing.T) {
	store := NewMemStorage()
	store.SeedDemoServices()

	all, err := store.GetAllServices()
	require.NoError(t, err)
	require.Len(t, all, 5)

	_, err = store.UpdateService(all[0].ID, map[string]any{"isActive": false})
	require.NoError(t, err)

	active, err := store.GetActiveServices()
	require.NoError(t, err)
	assert.Len(t, active, 4)
}

func TestSeoSettingUpsertsByPage(t *testing.T) {
	store := NewMemStorage()

	first, err := store.CreateOrUpdateSeoSetting(&models.SeoSetting{
		Page: "home", Title: "首頁", Description: "沙龍首頁",
	})
	require.NoError(t, err)

	second, err := store.CreateOrUpdateSeoSetting(&models.SeoSetting{
		Page: "home", Title: "新標題", Description: "沙龍首頁",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := store.GetAllSeoSettings()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "新標題", all[0].Title)
}
