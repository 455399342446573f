package auth

import (
	"fmt"

	"SecureEHealth/role"
	"SecureEHealth/util"
)

var roleOnlyMessage = map[role.Role]string{
	role.Patient:       util.PATIENT_ACCESS_ONLY,
	role.Doctor:        util.DOCTOR_ACCESS_ONLY,
	role.HospitalAdmin: util.HOSPITAL_ADMIN_ACCESS_ONLY,
	role.SystemAdmin:   util.SYSTEM_ADMIN_ACCESS_ONLY,
}

// RequireRole hands the claims back unchanged when their role is one of allowed.
func RequireRole(claims *Claims, allowed ...role.Role) (*Claims, error) {
	if claims == nil {
		return nil, util.E(util.InvalidToken, util.TOKEN_MISSING)
	}
	for _, r := range allowed {
		if claims.Role == r {
			return claims, nil
		}
	}
	return nil, util.E(util.Forbidden, forbiddenMessage(allowed))
}

func forbiddenMessage(allowed []role.Role) string {
	if len(allowed) == 1 {
		if msg, ok := roleOnlyMessage[allowed[0]]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s: requires one of %v", util.ACCESS_DENIED, allowed)
}
