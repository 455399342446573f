package controllers

import (
	"net/http"

	"SecureEHealth/middleware"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func SuperAdmin(router *gin.Engine, h *Handler) {
	router.GET("/system-admin/overview", h.authenticated(), middleware.Authorize(role.SystemAdmin), h.SystemOverview)
}

func (h *Handler) SystemOverview(c *gin.Context) {
	overview, err := h.Services.SystemOverview(c.Request.Context(), middleware.Claims(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(overview))
}
