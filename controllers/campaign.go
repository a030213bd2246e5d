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

// CreateCampaignInput defines the expected JSON structure for a marketing campaign
type CreateCampaignInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	DiscountType  *string `json:"discountType"`
	DiscountValue *string `json:"discountValue"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	IsActive      *bool   `json:"isActive"`
}

type CampaignController struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewCampaignController(store storage.Storage, log *zap.Logger) *CampaignController {
	return &CampaignController{Store: store, Log: log}
}

func (cc *CampaignController) GetCampaigns(c *gin.Context) {
	campaigns, err := cc.Store.GetAllMarketingCampaigns()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (cc *CampaignController) GetActiveCampaigns(c *gin.Context) {
	campaigns, err := cc.Store.GetActiveMarketingCampaigns()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (cc *CampaignController) GetCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		return
	}
	campaign, err := cc.Store.GetMarketingCampaign(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if campaign == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (cc *CampaignController) CreateCampaign(c *gin.Context) {
	var input CreateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	campaign, err := cc.Store.CreateMarketingCampaign(&models.MarketingCampaign{
		Title:         input.Title,
		Description:   input.Description,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		IsActive:      active,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (cc *CampaignController) UpdateCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	campaign, err := cc.Store.UpdateMarketingCampaign(id, patch)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if campaign == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (cc *CampaignController) DeleteCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		return
	}
	deleted, err := cc.Store.DeleteMarketingCampaign(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Campaign not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
