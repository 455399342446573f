package store

import (
	"context"

	"SecureEHealth/config/db"
	"SecureEHealth/models"
	"SecureEHealth/role"
	"SecureEHealth/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) accounts() *mongo.Collection {
	return db.OpenCollections(m.db, util.AccountCollection)
}

func (m *Mongo) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := db.FindOne(ctx, m.accounts(), bson.M{"email": email}, &account); err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (m *Mongo) FindAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var account models.Account
	if err := db.FindOne(ctx, m.accounts(), bson.M{"_id": id}, &account); err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (m *Mongo) InsertAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, m.accounts(), account)
	if err != nil {
		return primitive.NilObjectID, translate(err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	account.ID = id
	return id, nil
}

/*
* One conditional update; the hospital scope is part of the filter
* Returns false when nothing matched (absent or foreign doctor)
 */
func (m *Mongo) SetDoctorStatus(ctx context.Context, doctorID primitive.ObjectID, hospitalID string, status role.ApprovalStatus) (bool, error) {
	filter := bson.M{
		"_id":        doctorID,
		"role":       role.Doctor,
		"hospitalId": hospitalID,
	}
	res, err := db.UpdateOne(ctx, m.accounts(), filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, translate(err)
	}
	return res.MatchedCount > 0, nil
}

// ListDoctors never returns password hashes. An empty hospitalID lists every hospital.
func (m *Mongo) ListDoctors(ctx context.Context, hospitalID string, statuses ...role.ApprovalStatus) ([]models.Account, error) {
	filter := bson.M{"role": role.Doctor}
	if hospitalID != "" {
		filter["hospitalId"] = hospitalID
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().
		SetProjection(bson.M{"passwordHash": 0}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	doctors := []models.Account{}
	if err := db.FindAll(ctx, m.accounts(), filter, &doctors, opts); err != nil {
		return nil, translate(err)
	}
	return doctors, nil
}

func (m *Mongo) CountDoctors(ctx context.Context, hospitalID string, status role.ApprovalStatus) (int64, error) {
	filter := bson.M{"role": role.Doctor, "status": status}
	if hospitalID != "" {
		filter["hospitalId"] = hospitalID
	}
	n, err := db.Count(ctx, m.accounts(), filter)
	return n, translate(err)
}

func (m *Mongo) CountAccounts(ctx context.Context, r role.Role) (int64, error) {
	n, err := db.Count(ctx, m.accounts(), bson.M{"role": r})
	return n, translate(err)
}
