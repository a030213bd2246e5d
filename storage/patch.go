package storage

import (
	"github.com/google/uuid"

	"salon-backend/models"
)

// Patch maps come straight from decoded JSON bodies, so values are string,
// float64, bool or nil. Unknown keys are ignored; an explicit null clears
// nullable fields. Both adapters apply patches through these helpers so
// merge semantics stay identical.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asStringPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func asIntPtr(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	}
	return nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asUUIDPtr(v any) *uuid.UUID {
	switch id := v.(type) {
	case uuid.UUID:
		return &id
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil
		}
		return &parsed
	}
	return nil
}

func applyUserPatch(u *models.User, patch map[string]any) {
	for key, val := range patch {
		switch key {
		case "username":
			if s, ok := asString(val); ok {
				u.Username = s
			}
		case "password":
			if s, ok := asString(val); ok {
				u.Password = s
			}
		}
	}
}

func applyCustomerPatch(c *models.Customer, patch map[string]any) {
	for key, val := range patch {
		switch key {
		case "name":
			if s, ok := asString(val); ok {
				c.Name = s
			}
		case "phone":
			if s, ok := asString(val); ok {
				c.Phone = s
			}
		case "lineId":
			c.LineID = asStringPtr(val)
		case "email":
			c.Email = asStringPtr(val)
		case "notes":
			c.Notes = asStringPtr(val)
		}
	}
}

func applyServicePatch(s *models.Service, patch map[string]any) {
	for key, val := range patch {
		switch key {
		case "name":
			if v, ok := asString(val); ok {
				s.Name = v
			}
		case "description":
			if v, ok := asString(val); ok {
				s.Description = v
			}
		case "price":
			if v, ok := asInt(val); ok {
				s.Price = v
			}
		case "priceNote":
			s.PriceNote = asStringPtr(val)
		case "duration":
			s.Duration = asIntPtr(val)
		case "isActive":
			if v, ok := asBool(val); ok {
				s.IsActive = v
			}
		}
	}
}

func applyStaffPatch(m *models.Staff, patch map[string]any) {
	for key, val := range patch {
		switch key {
		case "name":
			if v, ok := asString(val); ok {
				m.Name = v
			}
		case "role":
			if v, ok := asString(val); ok {
				m.Role = v
			}
		case "email":
			m.Email = asStringPtr(val)
		case "phone":
			m.Phone = asStringPtr(val)
		case "specialty":
			m.Specialty = asStringPtr(val)
		case "yearsOfExperience":
			m.YearsOfExperience = asIntPtr(val)
		case "photoUrl":
			m.PhotoURL = asStringPtr(val)
		case "isActive":
			if v, ok := asBool(val); ok {
				m.IsActive = v
			}
		}
	}
}

func applyBookingPatch(b *models.Booking, patch map[string]any) {
	for key, val := range patch {
		switch key {
		case "customerId":
			b.CustomerID = asUUIDPtr(val)
		case "customerName":
			if v, ok := asString(val); ok {
				b.CustomerName = v
			}
		case "customerPhone":
			if v, ok := asString(val); ok {
				b.CustomerPhone = v
			}
		case "customerLineId":
			b.CustomerLineID = asStringPtr(val)
		case "serviceId":
			b.ServiceID = asUUIDPtr(val)
		case "serviceName":
			if v, ok := asString(val); ok {
				b.ServiceName = v
			}
		case "stylistId":
			b.StylistID = asUUIDPtr(val)
		case "stylistName":
			if v, ok := asString(val); ok {
				b.StylistName = v
			}
		case "assistantId":
			b.AssistantID = asUUIDPtr(val)
		case "assistantName":
			b.AssistantName = asStringPtr(val)
		case "bookingDate":
			if v, ok := asString(val); ok {
				b.BookingDate = v
			}
		case "bookingTime":
			if v, ok := asString(val); ok {
				b.BookingTime = v
			}
		case "status":
			if v, ok := asString(val); ok {
				b.Status = v
			}
		case "notes":
			b.Notes = asStringPtr(val)
		}
	}
}

func applyCampaignPatch(c *models.MarketingCampaign, patch map[string]any) {
	for key, val := range patch {
		switch key {
		case "title":
			if v, ok := asString(val); ok {
				c.Title = v
			}
		case "description":
			if v, ok := asString(val); ok {
				c.Description = v
			}
		case "discountType":
			c.DiscountType = asStringPtr(val)
		case "discountValue":
			c.DiscountValue = asStringPtr(val)
		case "startDate":
			c.StartDate = asStringPtr(val)
		case "endDate":
			c.EndDate = asStringPtr(val)
		case "isActive":
			if v, ok := asBool(val); ok {
				c.IsActive = v
			}
		}
	}
}
