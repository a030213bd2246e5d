package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon-backend/models"
	"salon-backend/services"
	"salon-backend/storage"
	"salon-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for the public
// booking flow. Names are denormalized onto the booking at creation time.
type CreateBookingInput struct {
	CustomerID     *string `json:"customerId"`
	CustomerName   string  `json:"customerName" binding:"required"`
	CustomerPhone  string  `json:"customerPhone" binding:"required"`
	CustomerLineID *string `json:"customerLineId"`
	ServiceID      *string `json:"serviceId"`
	ServiceName    string  `json:"serviceName" binding:"required"`
	StylistID      *string `json:"stylistId"`
	StylistName    string  `json:"stylistName" binding:"required"`
	AssistantID    *string `json:"assistantId"`
	AssistantName  *string `json:"assistantName"`
	BookingDate    string  `json:"bookingDate" binding:"required,datetime=2006-01-02"`
	BookingTime    string  `json:"bookingTime" binding:"required,datetime=15:04"`
	Status         string  `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes          *string `json:"notes"`
}

type BookingController struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewBookingController(store storage.Storage, log *zap.Logger) *BookingController {
	return &BookingController{Store: store, Log: log}
}

// GetBookings returns all bookings, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Store.GetAllBookings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingsByDate returns bookings whose bookingDate equals the path
// date exactly, sorted by time.
func (bc *BookingController) GetBookingsByDate(c *gin.Context) {
	bookings, err := bc.Store.GetBookingsByDate(c.Param("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBookingsByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		// An unparsable id cannot match anything.
		c.JSON(http.StatusOK, []models.Booking{})
		return
	}
	bookings, err := bc.Store.GetBookingsByCustomer(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	booking, err := bc.Store.GetBooking(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if booking == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking persists the booking first, then runs customer identity
// resolution as a separate follow-up write. The two steps are not atomic:
// if the second fails the booking survives unlinked and the reconciler
// picks it up later.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	booking := models.Booking{
		CustomerID:     parseOptionalUUID(input.CustomerID),
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerLineID: input.CustomerLineID,
		ServiceID:      parseOptionalUUID(input.ServiceID),
		ServiceName:    input.ServiceName,
		StylistID:      parseOptionalUUID(input.StylistID),
		StylistName:    input.StylistName,
		AssistantID:    parseOptionalUUID(input.AssistantID),
		AssistantName:  input.AssistantName,
		BookingDate:    input.BookingDate,
		BookingTime:    input.BookingTime,
		Status:         status,
		Notes:          input.Notes,
	}

	created, err := bc.Store.CreateBooking(&booking)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	created = services.ResolveBookingCustomer(bc.Store, created, bc.Log)

	c.JSON(http.StatusOK, created)
}

// UpdateBooking merges an arbitrary partial patch. Staff reassignment and
// status changes go through this same operation; the admin UI composes the
// patch so paired fields (assistantId/assistantName) change together, with
// explicit nulls clearing both.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if raw, ok := patch["status"]; ok {
		status, isString := raw.(string)
		if !isString || !models.ValidStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
			return
		}
	}

	booking, err := bc.Store.UpdateBooking(id, patch)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if booking == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	deleted, err := bc.Store.DeleteBooking(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseOptionalUUID maps absent, null or malformed ids to nil rather than
// rejecting the request; the public flow sends ids it does not always have.
func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
