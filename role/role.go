package role

// Role is the account role carried in accounts and session claims.
type Role string

const (
	Patient       Role = "PATIENT"
	Doctor        Role = "DOCTOR"
	HospitalAdmin Role = "HOSPITAL_ADMIN"
	SystemAdmin   Role = "SYSTEM_ADMIN"
)

// All lists every role in a stable order.
var All = []Role{Patient, Doctor, HospitalAdmin, SystemAdmin}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	for _, known := range All {
		if r == known {
			return true
		}
	}
	return false
}

// ApprovalStatus is the doctor account lifecycle state.
type ApprovalStatus string

const (
	Pending  ApprovalStatus = "PENDING"
	Approved ApprovalStatus = "APPROVED"
	Rejected ApprovalStatus = "REJECTED"
)
