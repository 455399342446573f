package models

import (
	"time"

	"SecureEHealth/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is one document in the accounts collection, for every role.
// Doctor-only fields stay empty for other roles.
type Account struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         role.Role          `json:"role" bson:"role"`
	HospitalID   string             `json:"hospitalId,omitempty" bson:"hospitalId,omitempty"`

	Specialization string              `json:"specialization,omitempty" bson:"specialization,omitempty"`
	LicenseNumber  string              `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	Latitude       *float64            `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude      *float64            `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Location       *GeoPoint           `json:"location,omitempty" bson:"location,omitempty"`
	Status         role.ApprovalStatus `json:"status,omitempty" bson:"status,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a *Account) IsApprovedDoctor() bool {
	return a.Role == role.Doctor && a.Status == role.Approved
}

// GeoPoint is a GeoJSON point; Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lat, long *float64) *GeoPoint {
	if lat == nil || long == nil {
		return nil
	}
	return &GeoPoint{Type: "Point", Coordinates: []float64{*long, *lat}}
}
