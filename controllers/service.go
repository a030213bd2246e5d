package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salon-backend/cache"
	"salon-backend/models"
	"salon-backend/storage"
	"salon-backend/utils"
)

const activeServicesKey = "services:active"
const activeServicesTTL = 5 * time.Minute

// CreateServiceInput defines the expected JSON structure for creating a service.
// Price is a pointer so an explicit 0 passes required validation.
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       *int    `json:"price" binding:"required,min=0"`
	PriceNote   *string `json:"priceNote"`
	Duration    *int    `json:"duration"` // minutes
	IsActive    *bool   `json:"isActive"`
}

type ServiceController struct {
	Store storage.Storage
	Cache cache.Cache
	Log   *zap.Logger
}

func NewServiceController(store storage.Storage, cacheStore cache.Cache, log *zap.Logger) *ServiceController {
	return &ServiceController{Store: store, Cache: cacheStore, Log: log}
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	services, err := sc.Store.GetAllServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetActiveServices is the public menu; only isActive services are offered
// on the booking flow. The response is cached briefly since it is read on
// every visit and changes only on admin writes.
func (sc *ServiceController) GetActiveServices(c *gin.Context) {
	ctx := c.Request.Context()

	if raw, hit, err := sc.Cache.Get(ctx, activeServicesKey); err == nil && hit {
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
		return
	} else if err != nil {
		sc.Log.Warn("active services cache read failed", zap.Error(err))
	}

	services, err := sc.Store.GetActiveServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if raw, err := json.Marshal(services); err == nil {
		if err := sc.Cache.Set(ctx, activeServicesKey, raw, activeServicesTTL); err != nil {
			sc.Log.Warn("active services cache write failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, services)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	service, err := sc.Store.GetService(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if service == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	service, err := sc.Store.CreateService(&models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		PriceNote:   input.PriceNote,
		Duration:    input.Duration,
		IsActive:    active,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	sc.invalidate(c)
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Store.UpdateService(id, patch)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if service == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	sc.invalidate(c)
	c.JSON(http.StatusOK, service)
}

// DeleteService hard-deletes; historical bookings keep their denormalized
// serviceName.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	deleted, err := sc.Store.DeleteService(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	sc.invalidate(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (sc *ServiceController) invalidate(c *gin.Context) {
	if err := sc.Cache.Delete(c.Request.Context(), activeServicesKey); err != nil {
		sc.Log.Warn("active services cache invalidation failed", zap.Error(err))
	}
}
