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

// CreateStaffInput defines the expected JSON structure for creating a staff member
type CreateStaffInput struct {
	Name              string  `json:"name" binding:"required"`
	Role              string  `json:"role" binding:"required,oneof=designer assistant"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Specialty         *string `json:"specialty"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
	PhotoURL          *string `json:"photoUrl"`
	IsActive          *bool   `json:"isActive"`
}

type StaffController struct {
	Store storage.Storage
	Log   *zap.Logger
}

func NewStaffController(store storage.Storage, log *zap.Logger) *StaffController {
	return &StaffController{Store: store, Log: log}
}

func (sc *StaffController) GetStaff(c *gin.Context) {
	staff, err := sc.Store.GetAllStaff()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaffByRole serves the designer/assistant pools for the assignment
// dialog. Only active staff are returned.
func (sc *StaffController) GetStaffByRole(c *gin.Context) {
	role := c.Param("role")
	if !models.ValidRole(role) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
		return
	}
	staff, err := sc.Store.GetStaffByRole(role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (sc *StaffController) GetStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}
	member, err := sc.Store.GetStaffMember(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if member == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (sc *StaffController) CreateStaffMember(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	member, err := sc.Store.CreateStaffMember(&models.Staff{
		Name:              input.Name,
		Role:              input.Role,
		Email:             input.Email,
		Phone:             input.Phone,
		Specialty:         input.Specialty,
		YearsOfExperience: input.YearsOfExperience,
		PhotoURL:          input.PhotoURL,
		IsActive:          active,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, member)
}

func (sc *StaffController) UpdateStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if raw, ok := patch["role"]; ok {
		role, isString := raw.(string)
		if !isString || !models.ValidRole(role) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
			return
		}
	}

	member, err := sc.Store.UpdateStaffMember(id, patch)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if member == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteStaffMember hard-deletes; bookings keep their stylistName and
// assistantName snapshots.
func (sc *StaffController) DeleteStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}
	deleted, err := sc.Store.DeleteStaffMember(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
