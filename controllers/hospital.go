package controllers

import (
	"net/http"

	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func Hospital(router *gin.Engine, h *Handler) {
	hospitals := router.Group("/hospitals")
	{
		hospitals.GET("", h.ListHospitals)
		hospitals.GET("/:hospitalId", h.GetHospital)
	}
}

func (h *Handler) ListHospitals(c *gin.Context) {
	hospitals, err := h.Services.ListHospitals(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(hospitals))
}

func (h *Handler) GetHospital(c *gin.Context) {
	hospital, err := h.Services.GetHospital(c.Request.Context(), c.Param("hospitalId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(hospital))
}
