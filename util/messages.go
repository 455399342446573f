package util

const (
	INVALID_CREDENTIALS          = "Invalid credentials"
	DOCTOR_NOT_APPROVED          = "Doctor not approved yet"
	EMAIL_ALREADY_EXISTS         = "Email already exists"
	ACCESS_DENIED                = "Access denied"
	PATIENT_ACCESS_ONLY          = "Patient access only"
	DOCTOR_ACCESS_ONLY           = "Doctor access only"
	HOSPITAL_ADMIN_ACCESS_ONLY   = "Hospital Admin access only"
	SYSTEM_ADMIN_ACCESS_ONLY     = "System Admin access only"
	TOKEN_MISSING                = "Not authenticated"
	TOKEN_INVALID                = "Invalid token"
	TOKEN_EXPIRED                = "Token expired"
	TOKEN_MALFORMED              = "Invalid token payload"
	ADMIN_NOT_FOUND              = "Admin user not found"
	ADMIN_NOT_LINKED_TO_HOSPITAL = "Admin is not linked to any hospital"
	HOSPITAL_NOT_FOUND           = "Hospital not found"
	DOCTOR_NOT_FOUND             = "Doctor not found"
	DOCTOR_NOT_IN_HOSPITAL       = "Doctor not found in this hospital"
	DOCTOR_NOT_FOUND_OR_FOREIGN  = "Doctor not found or belongs to another hospital"
	DOCTOR_APPROVAL_REVOKED      = "Doctor account is not approved"
	SLOT_ALREADY_BOOKED          = "Slot already booked"
	APPOINTMENT_NOT_FOUND        = "Appointment not found"
	INVALID_APPOINTMENT          = "Invalid appointment"
	PRESCRIPTION_NOT_FOUND       = "Prescription not found"
	INVALID_ID_FORMAT            = "Invalid ID format"
	INVALID_DOCTOR_ID_FORMAT     = "Invalid Doctor ID format"
	INVALID_REQUEST_BODY         = "Invalid request body"
	TOO_MANY_REQUESTS            = "Too many requests"
	INTERNAL_ERROR               = "Internal server error"
	PRESCRIPTION_CREATE_FAILED   = "Prescription creation failed"
	PASSWORD_HASH_FAILED         = "Unable to secure password"
	TOKEN_GENERATION_FAILED      = "Unable to generate token"
	STORED_DIGEST_CORRUPT        = "Stored credential is corrupt"
)
