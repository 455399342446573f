package routes

import (
	"net/http"

	"SecureEHealth/controllers"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, h *controllers.Handler) {
	controllers.RegisterValidators()

	//public
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"status": "ok"}))
	})
	controllers.Auth(r, h)
	controllers.Hospital(r, h)
	controllers.Doctor(r, h)
	//private routes, each group checks its own token and role
	controllers.HospitalAdmin(r, h)
	controllers.Appointment(r, h)
	controllers.Prescription(r, h)
	controllers.SuperAdmin(r, h)
}
