package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"salon-backend/models"
)

// MemStorage is the volatile adapter, used by tests and when no database
// is configured. Safe for concurrent use.
type MemStorage struct {
	mu              sync.RWMutex
	users           map[uuid.UUID]models.User
	customers       map[uuid.UUID]models.Customer
	services        map[uuid.UUID]models.Service
	staff           map[uuid.UUID]models.Staff
	bookings        map[uuid.UUID]models.Booking
	purchaseRecords map[uuid.UUID]models.PurchaseRecord
	campaigns       map[uuid.UUID]models.MarketingCampaign
	seoSettings     map[uuid.UUID]models.SeoSetting
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:           make(map[uuid.UUID]models.User),
		customers:       make(map[uuid.UUID]models.Customer),
		services:        make(map[uuid.UUID]models.Service),
		staff:           make(map[uuid.UUID]models.Staff),
		bookings:        make(map[uuid.UUID]models.Booking),
		purchaseRecords: make(map[uuid.UUID]models.PurchaseRecord),
		campaigns:       make(map[uuid.UUID]models.MarketingCampaign),
		seoSettings:     make(map[uuid.UUID]models.SeoSetting),
	}
}

// SeedDemoServices loads the default service menu so the demo instance has
// something to book against.
func (m *MemStorage) SeedDemoServices() {
	note := "起"
	defaults := []models.Service{
		{Name: "洗髮", Description: "舒適的洗髮體驗", Price: 250, IsActive: true},
		{Name: "專業剪髮", Description: "根據臉型設計專屬髮型", Price: 400, IsActive: true},
		{Name: "時尚染髮", Description: "使用頂級染劑", Price: 2000, PriceNote: &note, IsActive: true},
		{Name: "質感燙髮", Description: "自然捲度與蓬鬆感", Price: 2000, PriceNote: &note, IsActive: true},
		{Name: "深層護髮", Description: "深層修護受損髮質", Price: 800, PriceNote: &note, IsActive: true},
	}
	for i := range defaults {
		m.CreateService(&defaults[i])
	}
}

// Users

func (m *MemStorage) GetUser(id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *MemStorage) CreateUser(user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = uuid.New()
	m.users[user.ID] = *user
	return user, nil
}

func (m *MemStorage) UpdateUser(id uuid.UUID, patch map[string]any) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	applyUserPatch(&u, patch)
	m.users[id] = u
	return &u, nil
}

// Customers

func (m *MemStorage) GetAllCustomers() ([]models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStorage) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// GetCustomerByPhone returns the oldest customer with the given phone, so
// repeated resolutions always land on the same record even if duplicates
// exist.
func (m *MemStorage) GetCustomerByPhone(phone string) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var match *models.Customer
	for _, c := range m.customers {
		if c.Phone != phone {
			continue
		}
		c := c
		if match == nil || c.CreatedAt.Before(match.CreatedAt) {
			match = &c
		}
	}
	return match, nil
}

func (m *MemStorage) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now()
	m.customers[customer.ID] = *customer
	return customer, nil
}

func (m *MemStorage) UpdateCustomer(id uuid.UUID, patch map[string]any) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	applyCustomerPatch(&c, patch)
	m.customers[id] = c
	return &c, nil
}

func (m *MemStorage) DeleteCustomer(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return false, nil
	}
	delete(m.customers, id)
	return true, nil
}

// Services

func (m *MemStorage) GetAllServices() ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStorage) GetActiveServices() ([]models.Service, error) {
	all, _ := m.GetAllServices()
	out := make([]models.Service, 0, len(all))
	for _, s := range all {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemStorage) GetService(id uuid.UUID) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.services[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *MemStorage) CreateService(service *models.Service) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	service.ID = uuid.New()
	service.CreatedAt = time.Now()
	m.services[service.ID] = *service
	return service, nil
}

func (m *MemStorage) UpdateService(id uuid.UUID, patch map[string]any) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.services[id]
	if !ok {
		return nil, nil
	}
	applyServicePatch(&s, patch)
	m.services[id] = s
	return &s, nil
}

func (m *MemStorage) DeleteService(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.services[id]; !ok {
		return false, nil
	}
	delete(m.services, id)
	return true, nil
}

// Staff

func (m *MemStorage) GetAllStaff() ([]models.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Staff, 0, len(m.staff))
	for _, s := range m.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetStaffByRole returns active staff only; the role pools exist to feed
// assignment dropdowns and inactive staff must not be assignable.
func (m *MemStorage) GetStaffByRole(role string) ([]models.Staff, error) {
	all, _ := m.GetAllStaff()
	out := make([]models.Staff, 0, len(all))
	for _, s := range all {
		if s.Role == role && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemStorage) GetStaffMember(id uuid.UUID) (*models.Staff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.staff[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *MemStorage) CreateStaffMember(member *models.Staff) (*models.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member.ID = uuid.New()
	member.CreatedAt = time.Now()
	m.staff[member.ID] = *member
	return member, nil
}

func (m *MemStorage) UpdateStaffMember(id uuid.UUID, patch map[string]any) (*models.Staff, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.staff[id]
	if !ok {
		return nil, nil
	}
	applyStaffPatch(&s, patch)
	m.staff[id] = s
	return &s, nil
}

func (m *MemStorage) DeleteStaffMember(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.staff[id]; !ok {
		return false, nil
	}
	delete(m.staff, id)
	return true, nil
}

// Bookings

func (m *MemStorage) GetAllBookings() ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStorage) GetBooking(id uuid.UUID) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

// GetBookingsByDate matches the date string exactly and orders by time.
// Lexicographic order is correct because times are zero-padded HH:mm.
func (m *MemStorage) GetBookingsByDate(date string) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if b.BookingDate == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingTime < out[j].BookingTime })
	return out, nil
}

func (m *MemStorage) GetBookingsByCustomer(customerID uuid.UUID) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if b.CustomerID != nil && *b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetUnlinkedBookings returns bookings that carry a phone but never got a
// customer attached, for the reconciliation job.
func (m *MemStorage) GetUnlinkedBookings() ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if b.CustomerID == nil && b.CustomerPhone != "" {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStorage) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	m.bookings[booking.ID] = *booking
	return booking, nil
}

func (m *MemStorage) UpdateBooking(id uuid.UUID, patch map[string]any) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	applyBookingPatch(&b, patch)
	m.bookings[id] = b
	return &b, nil
}

func (m *MemStorage) DeleteBooking(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return false, nil
	}
	delete(m.bookings, id)
	return true, nil
}

// Purchase records

func (m *MemStorage) GetPurchaseRecordsByCustomer(customerID uuid.UUID) ([]models.PurchaseRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.PurchaseRecord, 0)
	for _, r := range m.purchaseRecords {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	return out, nil
}

func (m *MemStorage) CreatePurchaseRecord(record *models.PurchaseRecord) (*models.PurchaseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = uuid.New()
	record.PurchaseDate = time.Now()
	m.purchaseRecords[record.ID] = *record
	return record, nil
}

// Marketing campaigns

func (m *MemStorage) GetAllMarketingCampaigns() ([]models.MarketingCampaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.MarketingCampaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStorage) GetActiveMarketingCampaigns() ([]models.MarketingCampaign, error) {
	all, _ := m.GetAllMarketingCampaigns()
	out := make([]models.MarketingCampaign, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemStorage) GetMarketingCampaign(id uuid.UUID) (*models.MarketingCampaign, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.campaigns[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *MemStorage) CreateMarketingCampaign(campaign *models.MarketingCampaign) (*models.MarketingCampaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	campaign.ID = uuid.New()
	campaign.CreatedAt = time.Now()
	m.campaigns[campaign.ID] = *campaign
	return campaign, nil
}

func (m *MemStorage) UpdateMarketingCampaign(id uuid.UUID, patch map[string]any) (*models.MarketingCampaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, nil
	}
	applyCampaignPatch(&c, patch)
	m.campaigns[id] = c
	return &c, nil
}

func (m *MemStorage) DeleteMarketingCampaign(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[id]; !ok {
		return false, nil
	}
	delete(m.campaigns, id)
	return true, nil
}

// SEO settings

func (m *MemStorage) GetAllSeoSettings() ([]models.SeoSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.SeoSetting, 0, len(m.seoSettings))
	for _, s := range m.seoSettings {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Page < out[j].Page })
	return out, nil
}

func (m *MemStorage) GetSeoSettingByPage(page string) (*models.SeoSetting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.seoSettings {
		if s.Page == page {
			setting := s
			return &setting, nil
		}
	}
	return nil, nil
}

func (m *MemStorage) CreateOrUpdateSeoSetting(setting *models.SeoSetting) (*models.SeoSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.seoSettings {
		if existing.Page == setting.Page {
			setting.ID = id
			setting.UpdatedAt = time.Now()
			m.seoSettings[id] = *setting
			return setting, nil
		}
	}
	setting.ID = uuid.New()
	setting.UpdatedAt = time.Now()
	m.seoSettings[setting.ID] = *setting
	return setting, nil
}
