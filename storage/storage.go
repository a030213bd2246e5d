// Package storage defines the data-access port for all salon entities and
// its two adapters: a volatile in-memory store and a durable gorm/postgres
// store. Application code depends only on the Storage interface.
package storage

import (
	"salon-backend/models"

	"github.com/google/uuid"
)

// Storage is the persistence contract. Create operations return the full
// persisted record including generated id and timestamp. Update operations
// merge a JSON patch map onto the resident record and return (nil, nil)
// when the target id does not exist. Delete operations report whether a
// row existed and was removed. Reads that match nothing return an empty
// slice (or nil pointer for point lookups), never an error.
type Storage interface {
	GetUser(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) (*models.User, error)
	UpdateUser(id uuid.UUID, patch map[string]any) (*models.User, error)

	GetAllCustomers() ([]models.Customer, error)
	GetCustomer(id uuid.UUID) (*models.Customer, error)
	GetCustomerByPhone(phone string) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) (*models.Customer, error)
	UpdateCustomer(id uuid.UUID, patch map[string]any) (*models.Customer, error)
	DeleteCustomer(id uuid.UUID) (bool, error)

	GetAllServices() ([]models.Service, error)
	GetActiveServices() ([]models.Service, error)
	GetService(id uuid.UUID) (*models.Service, error)
	CreateService(service *models.Service) (*models.Service, error)
	UpdateService(id uuid.UUID, patch map[string]any) (*models.Service, error)
	DeleteService(id uuid.UUID) (bool, error)

	GetAllStaff() ([]models.Staff, error)
	GetStaffByRole(role string) ([]models.Staff, error)
	GetStaffMember(id uuid.UUID) (*models.Staff, error)
	CreateStaffMember(member *models.Staff) (*models.Staff, error)
	UpdateStaffMember(id uuid.UUID, patch map[string]any) (*models.Staff, error)
	DeleteStaffMember(id uuid.UUID) (bool, error)

	GetAllBookings() ([]models.Booking, error)
	GetBooking(id uuid.UUID) (*models.Booking, error)
	GetBookingsByDate(date string) ([]models.Booking, error)
	GetBookingsByCustomer(customerID uuid.UUID) ([]models.Booking, error)
	GetUnlinkedBookings() ([]models.Booking, error)
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	UpdateBooking(id uuid.UUID, patch map[string]any) (*models.Booking, error)
	DeleteBooking(id uuid.UUID) (bool, error)

	GetPurchaseRecordsByCustomer(customerID uuid.UUID) ([]models.PurchaseRecord, error)
	CreatePurchaseRecord(record *models.PurchaseRecord) (*models.PurchaseRecord, error)

	GetAllMarketingCampaigns() ([]models.MarketingCampaign, error)
	GetActiveMarketingCampaigns() ([]models.MarketingCampaign, error)
	GetMarketingCampaign(id uuid.UUID) (*models.MarketingCampaign, error)
	CreateMarketingCampaign(campaign *models.MarketingCampaign) (*models.MarketingCampaign, error)
	UpdateMarketingCampaign(id uuid.UUID, patch map[string]any) (*models.MarketingCampaign, error)
	DeleteMarketingCampaign(id uuid.UUID) (bool, error)

	GetAllSeoSettings() ([]models.SeoSetting, error)
	GetSeoSettingByPage(page string) (*models.SeoSetting, error)
	CreateOrUpdateSeoSetting(setting *models.SeoSetting) (*models.SeoSetting, error)
}
