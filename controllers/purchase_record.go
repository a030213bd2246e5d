package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon-backend/models"
	"salon-backend/storage"
	"salon-backend/utils"
)

// CreatePurchaseRecordInput defines the expected JSON structure for a purchase
// record. Amount is a pointer so a comped visit (amount 0) is accepted.
type CreatePurchaseRecordInput struct {
	CustomerID  string  `json:"customerId" binding:"required,uuid"`
	ServiceID   *string `json:"serviceId"`
	ServiceName string  `json:"serviceName" binding:"required"`
	Amount      *int    `json:"amount" binding:"required,min=0"`
	StylistName *string `json:"stylistName"`
	Notes       *string `json:"notes"`
}

type PurchaseRecordController struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewPurchaseRecordController(store storage.Storage, log *zap.Logger) *PurchaseRecordController {
	return &PurchaseRecordController{Store: store, Log: log}
}

// GetByCustomer returns a customer's purchase history, newest first.
func (pc *PurchaseRecordController) GetByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusOK, []models.PurchaseRecord{})
		return
	}
	records, err := pc.Store.GetPurchaseRecordsByCustomer(customerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

func (pc *PurchaseRecordController) Create(c *gin.Context) {
	var input CreatePurchaseRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	record, err := pc.Store.CreatePurchaseRecord(&models.PurchaseRecord{
		CustomerID:  customerID,
		ServiceID:   parseOptionalUUID(input.ServiceID),
		ServiceName: input.ServiceName,
		Amount:      *input.Amount,
		StylistName: input.StylistName,
		Notes:       input.Notes,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}
