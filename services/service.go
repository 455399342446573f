package services

import (
	"context"
	"errors"
	"time"

	"SecureEHealth/auth"
	"SecureEHealth/config/redis"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/store"
	"SecureEHealth/util"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccountStore interface {
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	FindAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	InsertAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error)
	SetDoctorStatus(ctx context.Context, doctorID primitive.ObjectID, hospitalID string, status role.ApprovalStatus) (bool, error)
	ListDoctors(ctx context.Context, hospitalID string, statuses ...role.ApprovalStatus) ([]models.Account, error)
	CountDoctors(ctx context.Context, hospitalID string, status role.ApprovalStatus) (int64, error)
	CountAccounts(ctx context.Context, r role.Role) (int64, error)
}

type HospitalStore interface {
	FindHospital(ctx context.Context, hospitalID string) (*models.Hospital, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	CountHospitals(ctx context.Context) (int64, error)
	UpsertHospital(ctx context.Context, h models.Hospital) (bool, error)
}

type AppointmentStore interface {
	FindActiveAppointment(ctx context.Context, doctorID primitive.ObjectID, slot time.Time) (*models.Appointment, error)
	InsertAppointment(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error)
	AcceptAppointment(ctx context.Context, appointmentID, doctorID primitive.ObjectID) (bool, error)
	FindAcceptedAppointment(ctx context.Context, appointmentID, doctorID primitive.ObjectID) (*models.Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error)
	ListAppointmentsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error)
}

type PrescriptionStore interface {
	InsertPrescription(ctx context.Context, prescription *models.Prescription) (primitive.ObjectID, error)
	FindPrescription(ctx context.Context, id primitive.ObjectID) (*models.Prescription, error)
	ListPrescriptionsByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error)
	ListPrescriptionsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error)
}

// Store is everything the services read and write. *store.Mongo satisfies it.
type Store interface {
	AccountStore
	HospitalStore
	AppointmentStore
	PrescriptionStore
}

var _ Store = (*store.Mongo)(nil)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type Service struct {
	store     Store
	passwords PasswordHasher
	tokens    TokenIssuer
	cache     redis.Cache
	cacheTTL  time.Duration
	log       logrus.FieldLogger
	now       func() time.Time
}

type Option func(*Service)

func WithCache(c redis.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(st Store, passwords PasswordHasher, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{
		store:     st,
		passwords: passwords,
		tokens:    tokens,
		cache:     redis.Noop{},
		cacheTTL:  time.Hour,
		log:       logrus.StandardLogger(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func parseID(raw, message string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, util.Wrap(util.InvalidReference, message, err)
	}
	return id, nil
}

// callerID reads the account id out of validated claims.
func callerID(claims *auth.Claims) (primitive.ObjectID, error) {
	if claims == nil {
		return primitive.NilObjectID, util.E(util.InvalidToken, util.TOKEN_MISSING)
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, util.Wrap(util.MalformedToken, util.TOKEN_MALFORMED, err)
	}
	return id, nil
}

// storeFailure logs the cause and returns an error that carries no driver detail.
func (s *Service) storeFailure(op string, err error) error {
	s.log.WithError(err).WithField("op", op).Error("store operation failed")
	return util.Wrap(util.IntegrityFailure, util.INTERNAL_ERROR, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, store.ErrDuplicate)
}
