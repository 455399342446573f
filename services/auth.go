package services

import (
	"context"
	"errors"
	"strings"

	"SecureEHealth/auth"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

/*
* Email is compared lowercased and trimmed
* Refuse early when the email is already taken
* Hash the password, never keep the plaintext
* Insert; a duplicate key from the unique email index is the same DuplicateEmail
 */
func (s *Service) createAccount(ctx context.Context, account *models.Account, password string) (*models.Account, error) {
	account.Email = normalizeEmail(account.Email)
	if _, err := s.store.FindAccountByEmail(ctx, account.Email); err == nil {
		return nil, util.E(util.DuplicateEmail, util.EMAIL_ALREADY_EXISTS)
	} else if !isNotFound(err) {
		return nil, s.storeFailure("findAccountByEmail", err)
	}

	digest, err := s.passwords.Hash(password)
	if err != nil {
		s.log.WithError(err).Error("password hashing failed")
		return nil, util.Wrap(util.IntegrityFailure, util.PASSWORD_HASH_FAILED, err)
	}
	account.PasswordHash = digest
	account.CreatedAt = s.now().UTC()

	if _, err := s.store.InsertAccount(ctx, account); err != nil {
		if isDuplicate(err) {
			return nil, util.E(util.DuplicateEmail, util.EMAIL_ALREADY_EXISTS)
		}
		return nil, s.storeFailure("insertAccount", err)
	}
	s.log.WithField("accountId", account.ID.Hex()).WithField("role", account.Role).Info("account registered")
	return account, nil
}

func (s *Service) RegisterPatient(ctx context.Context, req models.PatientRegister) (*models.Account, error) {
	return s.createAccount(ctx, &models.Account{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  role.Patient,
	}, req.Password)
}

/*
* The hospital must be in the directory
* Doctor always starts PENDING, whatever the body says
 */
func (s *Service) RegisterDoctor(ctx context.Context, req models.DoctorRegister) (*models.Account, error) {
	if err := s.requireHospital(ctx, req.HospitalID); err != nil {
		return nil, err
	}
	return s.createAccount(ctx, &models.Account{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           role.Doctor,
		HospitalID:     req.HospitalID,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Location:       models.NewGeoPoint(req.Latitude, req.Longitude),
		Status:         role.Pending,
	}, req.Password)
}

func (s *Service) RegisterHospitalAdmin(ctx context.Context, req models.HospitalAdminRegister) (*models.Account, error) {
	if err := s.requireHospital(ctx, req.HospitalID); err != nil {
		return nil, err
	}
	return s.createAccount(ctx, &models.Account{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       role.HospitalAdmin,
		HospitalID: req.HospitalID,
	}, req.Password)
}

// CreateSystemAdmin is only called from the CLI.
func (s *Service) CreateSystemAdmin(ctx context.Context, req models.SystemAdminRegister) (*models.Account, error) {
	return s.createAccount(ctx, &models.Account{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  role.SystemAdmin,
	}, req.Password)
}

func (s *Service) requireHospital(ctx context.Context, hospitalID string) error {
	if _, err := s.GetHospital(ctx, hospitalID); err != nil {
		return err
	}
	return nil
}

/*
* Unknown email, a role outside `only` and a wrong password all look the same
* A malformed stored digest is an integrity failure, not a bad password
* Doctors must be APPROVED to get a token
 */
func (s *Service) Login(ctx context.Context, req models.LoginRequest, only ...role.Role) (*models.LoginResponse, error) {
	account, err := s.store.FindAccountByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return nil, util.E(util.InvalidCredentials, util.INVALID_CREDENTIALS)
		}
		return nil, s.storeFailure("findAccountByEmail", err)
	}
	if len(only) > 0 && !roleIn(account.Role, only) {
		return nil, util.E(util.InvalidCredentials, util.INVALID_CREDENTIALS)
	}

	ok, err := s.passwords.Verify(req.Password, account.PasswordHash)
	if err != nil {
		if errors.Is(err, auth.ErrMalformedDigest) {
			s.log.WithField("accountId", account.ID.Hex()).Error("stored password digest is malformed")
			return nil, util.Wrap(util.IntegrityFailure, util.STORED_DIGEST_CORRUPT, err)
		}
		return nil, util.Wrap(util.IntegrityFailure, util.INTERNAL_ERROR, err)
	}
	if !ok {
		return nil, util.E(util.InvalidCredentials, util.INVALID_CREDENTIALS)
	}

	if account.Role == role.Doctor && account.Status != role.Approved {
		return nil, util.E(util.NotApproved, util.DOCTOR_NOT_APPROVED)
	}

	token, err := s.tokens.Issue(auth.Identity{
		AccountID: account.ID.Hex(),
		Role:      account.Role,
		Name:      account.Name,
	})
	if err != nil {
		s.log.WithError(err).Error("token issue failed")
		return nil, util.Wrap(util.IntegrityFailure, util.TOKEN_GENERATION_FAILED, err)
	}
	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        account.Role,
		Name:        account.Name,
	}, nil
}

func roleIn(r role.Role, roles []role.Role) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}

/*
* Load the caller's current account, not the token's snapshot
* Role drift since issuance is Forbidden
* An admin with no hospital cannot act on any hospital
 */
func (s *Service) ResolveAdminHospital(ctx context.Context, claims *auth.Claims) (*models.Account, error) {
	if _, err := auth.RequireRole(claims, role.HospitalAdmin); err != nil {
		return nil, err
	}
	id, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	admin, err := s.store.FindAccountByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, util.E(util.NotFound, util.ADMIN_NOT_FOUND)
		}
		return nil, s.storeFailure("findAccountByID", err)
	}
	if admin.Role != role.HospitalAdmin {
		return nil, util.E(util.Forbidden, util.HOSPITAL_ADMIN_ACCESS_ONLY)
	}
	if admin.HospitalID == "" {
		return nil, util.E(util.Forbidden, util.ADMIN_NOT_LINKED_TO_HOSPITAL)
	}
	return admin, nil
}

// requireApprovedDoctor re-reads the doctor so a rejection takes effect before the token expires.
func (s *Service) requireApprovedDoctor(ctx context.Context, claims *auth.Claims) (*models.Account, error) {
	if _, err := auth.RequireRole(claims, role.Doctor); err != nil {
		return nil, err
	}
	id, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	doctor, err := s.store.FindAccountByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, util.E(util.Forbidden, util.DOCTOR_APPROVAL_REVOKED)
		}
		return nil, s.storeFailure("findAccountByID", err)
	}
	if !doctor.IsApprovedDoctor() {
		return nil, util.E(util.Forbidden, util.DOCTOR_APPROVAL_REVOKED)
	}
	return doctor, nil
}
