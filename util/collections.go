package util

const (
	AccountCollection      = "accounts"
	HospitalCollection     = "hospitals"
	AppointmentCollection  = "appointments"
	PrescriptionCollection = "prescriptions"
	MigrationCollection    = "schema_migrations"
)

const (
	HospitalKey     = "HOSPITAL:"
	HospitalListKey = "HOSPITALS:ALL"
)
