package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salon-backend/models"
)

// GormStorage is the durable adapter backed by postgres. Updates load the
// row, apply the shared patch helpers and save, so merge semantics match
// the in-memory adapter exactly.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Staff{},
		&models.Booking{},
		&models.PurchaseRecord{},
		&models.MarketingCampaign{},
		&models.SeoSetting{},
	)
	if err != nil {
		return nil, err
	}
	return &GormStorage{db: db}, nil
}

func first[T any](db *gorm.DB, conds ...any) (*T, error) {
	var out T
	if err := db.First(&out, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// Users

func (g *GormStorage) GetUser(id uuid.UUID) (*models.User, error) {
	return first[models.User](g.db, "id = ?", id)
}

func (g *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	return first[models.User](g.db, "username = ?", username)
}

func (g *GormStorage) CreateUser(user *models.User) (*models.User, error) {
	user.ID = uuid.New()
	if err := g.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (g *GormStorage) UpdateUser(id uuid.UUID, patch map[string]any) (*models.User, error) {
	u, err := g.GetUser(id)
	if err != nil || u == nil {
		return nil, err
	}
	applyUserPatch(u, patch)
	if err := g.db.Save(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// Customers

func (g *GormStorage) GetAllCustomers() ([]models.Customer, error) {
	out := make([]models.Customer, 0)
	err := g.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	return first[models.Customer](g.db, "id = ?", id)
}

// GetCustomerByPhone returns the oldest matching customer so resolution is
// stable when duplicate phones exist.
func (g *GormStorage) GetCustomerByPhone(phone string) (*models.Customer, error) {
	return first[models.Customer](g.db.Order("created_at asc"), "phone = ?", phone)
}

func (g *GormStorage) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	customer.ID = uuid.New()
	if err := g.db.Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (g *GormStorage) UpdateCustomer(id uuid.UUID, patch map[string]any) (*models.Customer, error) {
	c, err := g.GetCustomer(id)
	if err != nil || c == nil {
		return nil, err
	}
	applyCustomerPatch(c, patch)
	if err := g.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (g *GormStorage) DeleteCustomer(id uuid.UUID) (bool, error) {
	res := g.db.Where("id = ?", id).Delete(&models.Customer{})
	return res.RowsAffected > 0, res.Error
}

// Services

func (g *GormStorage) GetAllServices() ([]models.Service, error) {
	out := make([]models.Service, 0)
	err := g.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetActiveServices() ([]models.Service, error) {
	out := make([]models.Service, 0)
	err := g.db.Where("is_active = ?", true).Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetService(id uuid.UUID) (*models.Service, error) {
	return first[models.Service](g.db, "id = ?", id)
}

func (g *GormStorage) CreateService(service *models.Service) (*models.Service, error) {
	service.ID = uuid.New()
	if err := g.db.Create(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (g *GormStorage) UpdateService(id uuid.UUID, patch map[string]any) (*models.Service, error) {
	s, err := g.GetService(id)
	if err != nil || s == nil {
		return nil, err
	}
	applyServicePatch(s, patch)
	if err := g.db.Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (g *GormStorage) DeleteService(id uuid.UUID) (bool, error) {
	res := g.db.Where("id = ?", id).Delete(&models.Service{})
	return res.RowsAffected > 0, res.Error
}

// Staff

func (g *GormStorage) GetAllStaff() ([]models.Staff, error) {
	out := make([]models.Staff, 0)
	err := g.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetStaffByRole(role string) ([]models.Staff, error) {
	out := make([]models.Staff, 0)
	err := g.db.Where("role = ? AND is_active = ?", role, true).
		Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetStaffMember(id uuid.UUID) (*models.Staff, error) {
	return first[models.Staff](g.db, "id = ?", id)
}

func (g *GormStorage) CreateStaffMember(member *models.Staff) (*models.Staff, error) {
	member.ID = uuid.New()
	if err := g.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (g *GormStorage) UpdateStaffMember(id uuid.UUID, patch map[string]any) (*models.Staff, error) {
	s, err := g.GetStaffMember(id)
	if err != nil || s == nil {
		return nil, err
	}
	applyStaffPatch(s, patch)
	if err := g.db.Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (g *GormStorage) DeleteStaffMember(id uuid.UUID) (bool, error) {
	res := g.db.Where("id = ?", id).Delete(&models.Staff{})
	return res.RowsAffected > 0, res.Error
}

// Bookings

func (g *GormStorage) GetAllBookings() ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	err := g.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetBooking(id uuid.UUID) (*models.Booking, error) {
	return first[models.Booking](g.db, "id = ?", id)
}

func (g *GormStorage) GetBookingsByDate(date string) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	err := g.db.Where("booking_date = ?", date).Order("booking_time asc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetBookingsByCustomer(customerID uuid.UUID) ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	err := g.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetUnlinkedBookings() ([]models.Booking, error) {
	out := make([]models.Booking, 0)
	err := g.db.Where("customer_id IS NULL AND customer_phone <> ''").
		Order("created_at asc").Find(&out).Error
	return out, err
}

func (g *GormStorage) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	booking.ID = uuid.New()
	if err := g.db.Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (g *GormStorage) UpdateBooking(id uuid.UUID, patch map[string]any) (*models.Booking, error) {
	b, err := g.GetBooking(id)
	if err != nil || b == nil {
		return nil, err
	}
	applyBookingPatch(b, patch)
	if err := g.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (g *GormStorage) DeleteBooking(id uuid.UUID) (bool, error) {
	res := g.db.Where("id = ?", id).Delete(&models.Booking{})
	return res.RowsAffected > 0, res.Error
}

// Purchase records

func (g *GormStorage) GetPurchaseRecordsByCustomer(customerID uuid.UUID) ([]models.PurchaseRecord, error) {
	out := make([]models.PurchaseRecord, 0)
	err := g.db.Where("customer_id = ?", customerID).
		Order("purchase_date desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) CreatePurchaseRecord(record *models.PurchaseRecord) (*models.PurchaseRecord, error) {
	record.ID = uuid.New()
	record.PurchaseDate = time.Now()
	if err := g.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Marketing campaigns

func (g *GormStorage) GetAllMarketingCampaigns() ([]models.MarketingCampaign, error) {
	out := make([]models.MarketingCampaign, 0)
	err := g.db.Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetActiveMarketingCampaigns() ([]models.MarketingCampaign, error) {
	out := make([]models.MarketingCampaign, 0)
	err := g.db.Where("is_active = ?", true).Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetMarketingCampaign(id uuid.UUID) (*models.MarketingCampaign, error) {
	return first[models.MarketingCampaign](g.db, "id = ?", id)
}

func (g *GormStorage) CreateMarketingCampaign(campaign *models.MarketingCampaign) (*models.MarketingCampaign, error) {
	campaign.ID = uuid.New()
	if err := g.db.Create(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

func (g *GormStorage) UpdateMarketingCampaign(id uuid.UUID, patch map[string]any) (*models.MarketingCampaign, error) {
	c, err := g.GetMarketingCampaign(id)
	if err != nil || c == nil {
		return nil, err
	}
	applyCampaignPatch(c, patch)
	if err := g.db.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (g *GormStorage) DeleteMarketingCampaign(id uuid.UUID) (bool, error) {
	res := g.db.Where("id = ?", id).Delete(&models.MarketingCampaign{})
	return res.RowsAffected > 0, res.Error
}

// SEO settings

func (g *GormStorage) GetAllSeoSettings() ([]models.SeoSetting, error) {
	out := make([]models.SeoSetting, 0)
	err := g.db.Order("page asc").Find(&out).Error
	return out, err
}

func (g *GormStorage) GetSeoSettingByPage(page string) (*models.SeoSetting, error) {
	return first[models.SeoSetting](g.db, "page = ?", page)
}

func (g *GormStorage) CreateOrUpdateSeoSetting(setting *models.SeoSetting) (*models.SeoSetting, error) {
	existing, err := g.GetSeoSettingByPage(setting.Page)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		setting.ID = existing.ID
		if err := g.db.Save(setting).Error; err != nil {
			return nil, err
		}
		return setting, nil
	}
	setting.ID = uuid.New()
	if err := g.db.Create(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
