package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore mimics the unique indexes of the Mongo store.
type memStore struct {
	mu            sync.Mutex
	accounts      map[primitive.ObjectID]*models.Account
	hospitals     map[string]models.Hospital
	appointments  map[primitive.ObjectID]*models.Appointment
	prescriptions map[primitive.ObjectID]*models.Prescription
	failWith      error
}

func newMemStore() *memStore {
	return &memStore{
		accounts:      map[primitive.ObjectID]*models.Account{},
		hospitals:     map[string]models.Hospital{},
		appointments:  map[primitive.ObjectID]*models.Appointment{},
		prescriptions: map[primitive.ObjectID]*models.Prescription{},
	}
}

func (m *memStore) FindAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, a := range m.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) FindAccountByID(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) InsertAccount(_ context.Context, account *models.Account) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == account.Email {
			return primitive.NilObjectID, store.ErrDuplicate
		}
	}
	account.ID = primitive.NewObjectID()
	cp := *account
	m.accounts[account.ID] = &cp
	return account.ID, nil
}

func (m *memStore) SetDoctorStatus(_ context.Context, doctorID primitive.ObjectID, hospitalID string, status role.ApprovalStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[doctorID]
	if !ok || a.Role != role.Doctor || a.HospitalID != hospitalID {
		return false, nil
	}
	a.Status = status
	return true, nil
}

func (m *memStore) ListDoctors(_ context.Context, hospitalID string, statuses ...role.ApprovalStatus) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Account{}
	for _, a := range m.accounts {
		if a.Role != role.Doctor || (hospitalID != "" && a.HospitalID != hospitalID) {
			continue
		}
		if len(statuses) > 0 && !statusIn(a.Status, statuses) {
			continue
		}
		cp := *a
		cp.PasswordHash = ""
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func statusIn(s role.ApprovalStatus, statuses []role.ApprovalStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func (m *memStore) CountDoctors(ctx context.Context, hospitalID string, status role.ApprovalStatus) (int64, error) {
	doctors, err := m.ListDoctors(ctx, hospitalID, status)
	return int64(len(doctors)), err
}

func (m *memStore) CountAccounts(_ context.Context, r role.Role) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.accounts {
		if a.Role == r {
			n++
		}
	}
	return n, nil
}

func (m *memStore) FindHospital(_ context.Context, hospitalID string) (*models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hospitals[hospitalID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &h, nil
}

func (m *memStore) ListHospitals(_ context.Context) ([]models.Hospital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Hospital{}
	for _, h := range m.hospitals {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HospitalID < out[j].HospitalID })
	return out, nil
}

func (m *memStore) CountHospitals(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.hospitals)), nil
}

func (m *memStore) UpsertHospital(_ context.Context, h models.Hospital) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hospitals[h.HospitalID]; ok {
		return false, nil
	}
	m.hospitals[h.HospitalID] = h
	return true, nil
}

func isActive(a *models.Appointment) bool {
	return a.Status == models.AppointmentRequested || a.Status == models.AppointmentAccepted
}

func (m *memStore) FindActiveAppointment(_ context.Context, doctorID primitive.ObjectID, slot time.Time) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appointments {
		if a.DoctorID == doctorID && a.Slot.Equal(slot) && isActive(a) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertAppointment(_ context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appointments {
		if a.DoctorID == appointment.DoctorID && a.Slot.Equal(appointment.Slot) && isActive(a) {
			return primitive.NilObjectID, store.ErrDuplicate
		}
	}
	appointment.ID = primitive.NewObjectID()
	cp := *appointment
	m.appointments[appointment.ID] = &cp
	return appointment.ID, nil
}

func (m *memStore) AcceptAppointment(_ context.Context, appointmentID, doctorID primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[appointmentID]
	if !ok || a.DoctorID != doctorID || !isActive(a) {
		return false, nil
	}
	a.Status = models.AppointmentAccepted
	return true, nil
}

func (m *memStore) FindAcceptedAppointment(_ context.Context, appointmentID, doctorID primitive.ObjectID) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[appointmentID]
	if !ok || a.DoctorID != doctorID || a.Status != models.AppointmentAccepted {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) listAppointments(match func(*models.Appointment) bool, asc bool) []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range m.appointments {
		if match(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].Slot.Before(out[j].Slot)
		}
		return out[i].Slot.After(out[j].Slot)
	})
	return out
}

func (m *memStore) ListAppointmentsByPatient(_ context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	return m.listAppointments(func(a *models.Appointment) bool { return a.PatientID == patientID }, false), nil
}

func (m *memStore) ListAppointmentsByDoctor(_ context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	return m.listAppointments(func(a *models.Appointment) bool { return a.DoctorID == doctorID }, true), nil
}

func (m *memStore) InsertPrescription(_ context.Context, prescription *models.Prescription) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prescription.ID = primitive.NewObjectID()
	cp := *prescription
	m.prescriptions[prescription.ID] = &cp
	return prescription.ID, nil
}

func (m *memStore) FindPrescription(_ context.Context, id primitive.ObjectID) (*models.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prescriptions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) listPrescriptions(match func(*models.Prescription) bool) []models.Prescription {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Prescription{}
	for _, p := range m.prescriptions {
		if match(p) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memStore) ListPrescriptionsByPatient(_ context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return m.listPrescriptions(func(p *models.Prescription) bool { return p.PatientID == patientID }), nil
}

func (m *memStore) ListPrescriptionsByDoctor(_ context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	return m.listPrescriptions(func(p *models.Prescription) bool { return p.DoctorID == doctorID }), nil
}
