package controllers

import (
	"net/http"

	"SecureEHealth/middleware"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine, h *Handler) {
	appointments := router.Group("/appointments", h.authenticated())
	{
		appointments.GET("/patient", middleware.Authorize(role.Patient), h.PatientAppointments)
		appointments.POST("/request", middleware.Authorize(role.Patient), h.RequestAppointment)
		appointments.POST("/doctor/:appointmentId/accept", middleware.Authorize(role.Doctor), h.AcceptAppointment)
		appointments.GET("/doctor/my-appointments", middleware.Authorize(role.Doctor), h.DoctorAppointments)
	}
}

/*
* Bind JSON
* Slot is normalized to IST by the service
 */
func (h *Handler) RequestAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if !bind(c, &req) {
		return
	}
	appointment, err := h.Services.RequestSlot(c.Request.Context(), middleware.Claims(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(models.AppointmentCreated{
		Message: "Appointment requested successfully",
		ID:      appointment.ID.Hex(),
		Slot:    appointment.Slot,
	}))
}

func (h *Handler) AcceptAppointment(c *gin.Context) {
	if err := h.Services.AcceptSlot(c.Request.Context(), middleware.Claims(c), c.Param("appointmentId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(models.MessageResponse{Message: "Appointment accepted"}))
}

func (h *Handler) PatientAppointments(c *gin.Context) {
	rows, err := h.Services.PatientAppointments(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(rows))
}

func (h *Handler) DoctorAppointments(c *gin.Context) {
	rows, err := h.Services.DoctorAppointments(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(rows))
}
