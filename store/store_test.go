package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"SecureEHealth/models"
	"SecureEHealth/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestFindAccountByEmail(t *testing.T) {
	mt := newMock(t)

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "ehealth.accounts", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "alice@x.com"},
			{Key: "name", Value: "Alice"},
			{Key: "role", Value: "PATIENT"},
			{Key: "passwordHash", Value: "$argon2id$..."},
		}))

		account, err := NewMongo(mt.DB).FindAccountByEmail(context.Background(), "alice@x.com")
		require.NoError(t, err)
		assert.Equal(t, id, account.ID)
		assert.Equal(t, role.Patient, account.Role)
		assert.Equal(t, "$argon2id$...", account.PasswordHash)
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "ehealth.accounts", mtest.FirstBatch))

		_, err := NewMongo(mt.DB).FindAccountByEmail(context.Background(), "nobody@x.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInsertAccountDuplicate(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: ehealth.accounts index: email_1",
		}))

		_, err := NewMongo(mt.DB).InsertAccount(context.Background(), &models.Account{Email: "alice@x.com"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	mt.Run("inserted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		account := &models.Account{Email: "bob@x.com", Role: role.Patient}
		id, err := NewMongo(mt.DB).InsertAccount(context.Background(), account)
		require.NoError(t, err)
		assert.False(t, id.IsZero())
		assert.Equal(t, id, account.ID)
	})
}

func TestSetDoctorStatus(t *testing.T) {
	mt := newMock(t)

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		ok, err := NewMongo(mt.DB).SetDoctorStatus(context.Background(), primitive.NewObjectID(), "H001", role.Approved)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	mt.Run("out of scope", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		ok, err := NewMongo(mt.DB).SetDoctorStatus(context.Background(), primitive.NewObjectID(), "H002", role.Rejected)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestInsertAppointmentSlotIndexViolation(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate slot", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error index: doctor_slot_active",
		}))

		_, err := NewMongo(mt.DB).InsertAppointment(context.Background(), &models.Appointment{
			DoctorID: primitive.NewObjectID(),
			Slot:     time.Now(),
			Status:   models.AppointmentRequested,
		})
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestListAppointmentsByDoctor(t *testing.T) {
	mt := newMock(t)

	mt.Run("decodes batch", func(mt *mtest.T) {
		doctorID := primitive.NewObjectID()
		slot := time.Date(2026, 5, 4, 4, 30, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "ehealth.appointments", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "doctorId", Value: doctorID},
				{Key: "hospitalId", Value: "H001"},
				{Key: "slot", Value: primitive.NewDateTimeFromTime(slot)},
				{Key: "status", Value: "REQUESTED"},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "doctorId", Value: doctorID},
				{Key: "hospitalId", Value: "H001"},
				{Key: "slot", Value: primitive.NewDateTimeFromTime(slot.Add(time.Hour))},
				{Key: "status", Value: "ACCEPTED"},
			},
		))

		list, err := NewMongo(mt.DB).ListAppointmentsByDoctor(context.Background(), doctorID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.True(t, slot.Equal(list[0].Slot))
		assert.Equal(t, models.AppointmentAccepted, list[1].Status)
	})
}

func TestCountDoctors(t *testing.T) {
	mt := newMock(t)

	mt.Run("pending", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "ehealth.accounts", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}},
		))
		n, err := NewMongo(mt.DB).CountDoctors(context.Background(), "H001", role.Pending)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}

	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no documents", mongo.ErrNoDocuments, ErrNotFound},
		{"wrapped no documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), ErrNotFound},
		{"duplicate key", dup, ErrDuplicate},
		{"passthrough", other, other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, translate(tc.in))
		})
	}
}
