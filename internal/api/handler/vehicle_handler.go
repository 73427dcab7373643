package handler

import (
	"strconv"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/response"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleSvc: vehicleSvc,
	}
}

func (s *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := s.vehicleSvc.ListVehicles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, vehicles)
}

func (s *VehicleHandler) ListBrandModels(c *gin.Context) {
	brands, err := s.vehicleSvc.ListBrandModels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, brands)
}

func (s *VehicleHandler) ListIssueTypes(c *gin.Context) {
	response.Success(c, s.vehicleSvc.ListIssueTypes(c.Request.Context()))
}

func (s *VehicleHandler) ListMyVehicles(c *gin.Context) {
	userID := c.GetUint64("user_id")

	vehicles, err := s.vehicleSvc.ListUserVehicles(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, vehicles)
}

func (s *VehicleHandler) CreateMyVehicle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateUserVehicleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	vehicle, err := s.vehicleSvc.CreateUserVehicle(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, vehicle)
}

func (s *VehicleHandler) UpdateMyVehicle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateUserVehicleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	vehicle, err := s.vehicleSvc.UpdateUserVehicle(c.Request.Context(), userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, vehicle)
}

func (s *VehicleHandler) DeleteMyVehicle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.vehicleSvc.DeleteUserVehicle(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
