package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-backend/models"
	"salon-backend/storage"
	"salon-backend/utils"
)

// UpsertSeoSettingInput defines the expected JSON structure for SEO settings;
// writes upsert on the page value.
type UpsertSeoSettingInput struct {
	Page        string  `json:"page" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Keywords    *string `json:"keywords"`
	OGImage     *string `json:"ogImage"`
}

type SeoController struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewSeoController(store storage.Storage, log *zap.Logger) *SeoController {
	return &SeoController{Store: store, Log: log}
}

func (sc *SeoController) GetSettings(c *gin.Context) {
	settings, err := sc.Store.GetAllSeoSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (sc *SeoController) GetSettingByPage(c *gin.Context) {
	setting, err := sc.Store.GetSeoSettingByPage(c.Param("page"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if setting == nil {
		utils.RespondWithError(c, http.StatusNotFound, "SEO setting not found")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (sc *SeoController) UpsertSetting(c *gin.Context) {
	var input UpsertSeoSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	setting, err := sc.Store.CreateOrUpdateSeoSetting(&models.SeoSetting{
		Page:        input.Page,
		Title:       input.Title,
		Description: input.Description,
		Keywords:    input.Keywords,
		OGImage:     input.OGImage,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, setting)
}
