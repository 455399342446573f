package services

import (
	"context"

	"SecureEHealth/auth"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Only patients book
* Doctor must exist, belong to the hospital and be APPROVED
* Normalize the slot to IST, look for an active booking on it
* Insert REQUESTED; the partial unique index catches the race
 */
func (s *Service) RequestSlot(ctx context.Context, claims *auth.Claims, req models.AppointmentRequest) (*models.Appointment, error) {
	if _, err := auth.RequireRole(claims, role.Patient); err != nil {
		return nil, err
	}
	patientID, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	doctorID, err := parseID(req.DoctorID, util.INVALID_DOCTOR_ID_FORMAT)
	if err != nil {
		return nil, err
	}
	if req.Slot.IsZero() {
		return nil, util.E(util.InvalidInput, util.INVALID_REQUEST_BODY)
	}

	doctor, err := s.store.FindAccountByID(ctx, doctorID)
	if err != nil && !isNotFound(err) {
		return nil, s.storeFailure("findAccountByID", err)
	}
	if err != nil || !doctor.IsApprovedDoctor() || doctor.HospitalID != req.HospitalID {
		return nil, util.E(util.NotFound, util.DOCTOR_NOT_IN_HOSPITAL)
	}

	slot := NormalizeSlot(req.Slot)
	if _, err := s.store.FindActiveAppointment(ctx, doctorID, slot); err == nil {
		return nil, util.E(util.SlotConflict, util.SLOT_ALREADY_BOOKED)
	} else if !isNotFound(err) {
		return nil, s.storeFailure("findActiveAppointment", err)
	}

	appointment := &models.Appointment{
		PatientID:  patientID,
		DoctorID:   doctorID,
		HospitalID: req.HospitalID,
		Slot:       slot,
		Status:     models.AppointmentRequested,
		CreatedAt:  s.now().UTC(),
	}
	if _, err := s.store.InsertAppointment(ctx, appointment); err != nil {
		if isDuplicate(err) {
			return nil, util.E(util.SlotConflict, util.SLOT_ALREADY_BOOKED)
		}
		return nil, s.storeFailure("insertAppointment", err)
	}
	return appointment, nil
}

// AcceptSlot moves the doctor's own appointment to ACCEPTED. Anyone else's is NotFound.
func (s *Service) AcceptSlot(ctx context.Context, claims *auth.Claims, appointmentID string) error {
	doctor, err := s.requireApprovedDoctor(ctx, claims)
	if err != nil {
		return err
	}
	id, err := parseID(appointmentID, util.INVALID_ID_FORMAT)
	if err != nil {
		return err
	}
	matched, err := s.store.AcceptAppointment(ctx, id, doctor.ID)
	if err != nil {
		return s.storeFailure("acceptAppointment", err)
	}
	if !matched {
		return util.E(util.NotFound, util.APPOINTMENT_NOT_FOUND)
	}
	return nil
}

/*
* Newest slot first
* Doctor and hospital lookups are memoized for the request
 */
func (s *Service) PatientAppointments(ctx context.Context, claims *auth.Claims) ([]models.PatientAppointment, error) {
	if _, err := auth.RequireRole(claims, role.Patient); err != nil {
		return nil, err
	}
	patientID, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	appointments, err := s.store.ListAppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, s.storeFailure("listAppointmentsByPatient", err)
	}

	doctors := map[primitive.ObjectID]*models.Account{}
	rows := make([]models.PatientAppointment, 0, len(appointments))
	for _, a := range appointments {
		row := models.PatientAppointment{
			ID:         a.ID,
			PatientID:  a.PatientID,
			DoctorID:   a.DoctorID,
			HospitalID: a.HospitalID,
			Slot:       a.Slot.In(IST),
			Status:     a.Status,
		}
		doctor, ok := doctors[a.DoctorID]
		if !ok {
			doctor, _ = s.store.FindAccountByID(ctx, a.DoctorID)
			doctors[a.DoctorID] = doctor
		}
		if doctor != nil {
			row.DoctorName = doctor.Name
			row.Specialization = doctor.Specialization
		}
		if hospital, err := s.GetHospital(ctx, a.HospitalID); err == nil {
			row.HospitalName = hospital.HospitalName
			row.HospitalCity = hospital.City
			row.HospitalCoords = hospital.Coordinates()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DoctorAppointments lists the doctor's schedule, earliest slot first.
func (s *Service) DoctorAppointments(ctx context.Context, claims *auth.Claims) ([]models.DoctorAppointment, error) {
	if _, err := auth.RequireRole(claims, role.Doctor); err != nil {
		return nil, err
	}
	doctorID, err := callerID(claims)
	if err != nil {
		return nil, err
	}
	appointments, err := s.store.ListAppointmentsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, s.storeFailure("listAppointmentsByDoctor", err)
	}

	patients := map[primitive.ObjectID]*models.Account{}
	rows := make([]models.DoctorAppointment, 0, len(appointments))
	for _, a := range appointments {
		row := models.DoctorAppointment{
			ID:         a.ID,
			PatientID:  a.PatientID,
			DoctorID:   a.DoctorID,
			HospitalID: a.HospitalID,
			Slot:       a.Slot.In(IST),
			Status:     a.Status,
		}
		patient, ok := patients[a.PatientID]
		if !ok {
			patient, _ = s.store.FindAccountByID(ctx, a.PatientID)
			patients[a.PatientID] = patient
		}
		if patient != nil {
			row.PatientName = patient.Name
			row.PatientEmail = patient.Email
		}
		rows = append(rows, row)
	}
	return rows, nil
}
