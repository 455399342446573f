package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Hospital is reference data keyed by HospitalID, not by the storage id.
type Hospital struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	HospitalID   string             `json:"hospitalId" bson:"hospitalId"`
	HospitalName string             `json:"hospitalName" bson:"hospitalName"`
	City         string             `json:"city" bson:"city"`
	State        string             `json:"state" bson:"state"`
	Location     *GeoPoint          `json:"location,omitempty" bson:"location,omitempty"`
}

func (h *Hospital) Coordinates() []float64 {
	if h == nil || h.Location == nil {
		return nil
	}
	return h.Location.Coordinates
}

// HospitalOverview is the hospital admin dashboard header.
type HospitalOverview struct {
	HospitalName     string    `json:"hospitalName"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Coordinates      []float64 `json:"coordinates"`
	PendingApprovals int64     `json:"pendingApprovals"`
}
