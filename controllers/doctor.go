package controllers

import (
	"net/http"

	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

// Doctor holds the public doctor lookups.
func Doctor(router *gin.Engine, h *Handler) {
	router.GET("/users/doctor/:doctorId", h.GetDoctor)
	router.GET("/appointments/hospitals/:hospitalId/doctors", h.ListHospitalDoctorsPublic)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	details, err := h.Services.GetDoctorDetails(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(details))
}

func (h *Handler) ListHospitalDoctorsPublic(c *gin.Context) {
	doctors, err := h.Services.ListApprovedDoctors(c.Request.Context(), c.Param("hospitalId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}
