package controllers

import (
	"net/http"

	"SecureEHealth/middleware"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func Prescription(router *gin.Engine, h *Handler) {
	prescriptions := router.Group("/prescriptions", h.authenticated())
	{
		prescriptions.POST("/doctor", middleware.Authorize(role.Doctor), h.CreatePrescription)
		prescriptions.GET("/doctor", middleware.Authorize(role.Doctor), h.DoctorPrescriptions)
		prescriptions.GET("/patient", middleware.Authorize(role.Patient), h.PatientPrescriptions)
		prescriptions.GET("/:prescriptionId/verify", middleware.Authorize(role.Patient, role.Doctor), h.VerifyPrescription)
	}
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req models.PrescriptionCreate
	if !bind(c, &req) {
		return
	}
	prescription, err := h.Services.CreatePrescription(c.Request.Context(), middleware.Claims(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(models.PrescriptionCreated{
		Message: "Prescription created successfully",
		ID:      prescription.ID.Hex(),
		Hash:    prescription.Hash,
	}))
}

func (h *Handler) DoctorPrescriptions(c *gin.Context) {
	list, err := h.Services.DoctorPrescriptions(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(list))
}

func (h *Handler) PatientPrescriptions(c *gin.Context) {
	list, err := h.Services.PatientPrescriptions(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(list))
}

func (h *Handler) VerifyPrescription(c *gin.Context) {
	result, err := h.Services.VerifyPrescription(c.Request.Context(), middleware.Claims(c), c.Param("prescriptionId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}
