package models

type Medicine struct {
	Name      string `json:"name" bson:"name" binding:"required"`
	Dosage    string `json:"dosage" bson:"dosage" binding:"required"`
	Frequency string `json:"frequency" bson:"frequency" binding:"required"`
	Duration  string `json:"duration" bson:"duration" binding:"required"`
}
