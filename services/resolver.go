// Package services holds the business logic that sits between the HTTP
// controllers and the storage port.
package services

import (
	"go.uber.org/zap"

	"salon-backend/models"
	"salon-backend/storage"
)

// ResolveBookingCustomer links a freshly persisted booking to a customer
// record, creating one when no customer carries the booking's phone. It is
// a fallback identity-linking step: bookings that already arrived with a
// customerId, or without a phone, are left alone. The link is a second
// write after the booking insert; on any failure the booking simply stays
// unlinked (the reconciler retries later) and the original booking is
// returned.
//
// An existing customer is reused as-is: its name is never overwritten with
// the name on the new booking.
func ResolveBookingCustomer(store storage.Storage, booking *models.Booking, log *zap.Logger) *models.Booking {
	if booking.CustomerID != nil || booking.CustomerPhone == "" {
		return booking
	}

	customer, err := store.GetCustomerByPhone(booking.CustomerPhone)
	if err != nil {
		log.Warn("customer lookup failed, booking left unlinked",
			zap.String("bookingId", booking.ID.String()), zap.Error(err))
		return booking
	}

	if customer == nil {
		customer, err = store.CreateCustomer(&models.Customer{
			Name:   booking.CustomerName,
			Phone:  booking.CustomerPhone,
			LineID: booking.CustomerLineID,
		})
		if err != nil {
			log.Warn("customer creation failed, booking left unlinked",
				zap.String("bookingId", booking.ID.String()), zap.Error(err))
			return booking
		}
		log.Info("customer created from booking",
			zap.String("customerId", customer.ID.String()),
			zap.String("phone", customer.Phone))
	}

	linked, err := store.UpdateBooking(booking.ID, map[string]any{"customerId": customer.ID})
	if err != nil || linked == nil {
		log.Warn("booking link failed, booking left unlinked",
			zap.String("bookingId", booking.ID.String()),
			zap.String("customerId", customer.ID.String()), zap.Error(err))
		return booking
	}
	return linked
}
