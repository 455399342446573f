package controllers

import (
	"context"

	"SecureEHealth/auth"
	"SecureEHealth/middleware"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/services"
	"SecureEHealth/util"

	"github.com/gin-gonic/gin"
)

// Services is the slice of services.Service the HTTP layer calls.
type Services interface {
	RegisterPatient(ctx context.Context, req models.PatientRegister) (*models.Account, error)
	RegisterDoctor(ctx context.Context, req models.DoctorRegister) (*models.Account, error)
	RegisterHospitalAdmin(ctx context.Context, req models.HospitalAdminRegister) (*models.Account, error)
	Login(ctx context.Context, req models.LoginRequest, only ...role.Role) (*models.LoginResponse, error)

	Approve(ctx context.Context, claims *auth.Claims, doctorID string) error
	Reject(ctx context.Context, claims *auth.Claims, doctorID string) error
	HospitalOverview(ctx context.Context, claims *auth.Claims) (*models.HospitalOverview, error)
	ListHospitalDoctors(ctx context.Context, claims *auth.Claims) ([]models.Account, error)

	GetHospital(ctx context.Context, hospitalID string) (*models.Hospital, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	ListApprovedDoctors(ctx context.Context, hospitalID string) ([]models.Account, error)
	GetDoctorDetails(ctx context.Context, doctorID string) (*models.DoctorDetails, error)

	RequestSlot(ctx context.Context, claims *auth.Claims, req models.AppointmentRequest) (*models.Appointment, error)
	AcceptSlot(ctx context.Context, claims *auth.Claims, appointmentID string) error
	PatientAppointments(ctx context.Context, claims *auth.Claims) ([]models.PatientAppointment, error)
	DoctorAppointments(ctx context.Context, claims *auth.Claims) ([]models.DoctorAppointment, error)

	CreatePrescription(ctx context.Context, claims *auth.Claims, req models.PrescriptionCreate) (*models.Prescription, error)
	PatientPrescriptions(ctx context.Context, claims *auth.Claims) ([]models.Prescription, error)
	DoctorPrescriptions(ctx context.Context, claims *auth.Claims) ([]models.Prescription, error)
	VerifyPrescription(ctx context.Context, claims *auth.Claims, prescriptionID string) (*models.PrescriptionVerification, error)

	SystemOverview(ctx context.Context, claims *auth.Claims) (*models.SystemOverview, error)
}

var _ Services = (*services.Service)(nil)

// Handler carries what every route group needs.
type Handler struct {
	Services Services
	Tokens   middleware.TokenValidator
	Limiter  *middleware.RateLimiter
}

func (h *Handler) authenticated() gin.HandlerFunc {
	return middleware.JWTAuth(h.Tokens)
}

func (h *Handler) throttled() gin.HandlerFunc {
	if h.Limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(h.Limiter)
}

// fail echoes the request id so a client report can be matched to the access log line.
func fail(c *gin.Context, err error) {
	body := util.FailedResponse(err)
	if rid := middleware.RequestID(c); rid != "" {
		body["request_id"] = rid
	}
	c.JSON(util.StatusFor(err), body)
}

// bind rejects a body that does not decode or fails its binding tags.
func bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		fail(c, util.Wrap(util.InvalidInput, util.INVALID_REQUEST_BODY, err))
		return false
	}
	return true
}
