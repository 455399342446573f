package controllers

import (
	"net/http"

	"SecureEHealth/middleware"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func HospitalAdmin(router *gin.Engine, h *Handler) {
	admin := router.Group("/hospital-admin", h.authenticated(), middleware.Authorize(role.HospitalAdmin))
	{
		admin.GET("/overview", h.Overview)
		admin.GET("/doctors", h.ListDoctors)
		admin.POST("/approve/:doctorId", h.ApproveDoctor)
		admin.POST("/reject/:doctorId", h.RejectDoctor)
	}
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.Services.HospitalOverview(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(overview))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Services.ListHospitalDoctors(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}

func (h *Handler) ApproveDoctor(c *gin.Context) {
	if err := h.Services.Approve(c.Request.Context(), middleware.Claims(c), c.Param("doctorId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(models.MessageResponse{Message: "Doctor approved"}))
}

func (h *Handler) RejectDoctor(c *gin.Context) {
	if err := h.Services.Reject(c.Request.Context(), middleware.Claims(c), c.Param("doctorId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(models.MessageResponse{Message: "Doctor rejected"}))
}
