package controllers

import (
	"net/http"

	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine, h *Handler) {
	register := router.Group("/register", h.throttled())
	{
		register.POST("/patient", h.RegisterPatient)
		register.POST("/doctor", h.RegisterDoctor)
		register.POST("/hospital-admin", h.RegisterHospitalAdmin)
	}
	login := router.Group("/login", h.throttled())
	{
		login.POST("", h.Login(nil))
		login.POST("/hospital-admin", h.Login([]role.Role{role.HospitalAdmin}))
		login.POST("/system-admin", h.Login([]role.Role{role.SystemAdmin}))
	}
}

/*
* Bind JSON
* And pass to the service
 */
func (h *Handler) RegisterPatient(c *gin.Context) {
	var req models.PatientRegister
	if !bind(c, &req) {
		return
	}
	if _, err := h.Services.RegisterPatient(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(models.MessageResponse{Message: "Patient registered successfully"}))
}

func (h *Handler) RegisterDoctor(c *gin.Context) {
	var req models.DoctorRegister
	if !bind(c, &req) {
		return
	}
	if _, err := h.Services.RegisterDoctor(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(models.MessageResponse{Message: "Doctor registered. Await hospital admin approval."}))
}

func (h *Handler) RegisterHospitalAdmin(c *gin.Context) {
	var req models.HospitalAdminRegister
	if !bind(c, &req) {
		return
	}
	if _, err := h.Services.RegisterHospitalAdmin(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(models.MessageResponse{Message: "Hospital admin registered successfully"}))
}

/*
* only restricts which roles may log in on this route
* Empty means any role
 */
func (h *Handler) Login(only []role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if !bind(c, &req) {
			return
		}
		resp, err := h.Services.Login(c.Request.Context(), req, only...)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(resp))
	}
}
