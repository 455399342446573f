package migrations

import (
	"context"
	"fmt"
	"time"

	"SecureEHealth/config/db"
	"SecureEHealth/util"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migration is applied at most once; its ID is recorded in schema_migrations.
type Migration struct {
	ID          string
	Description string
	Up          func(ctx context.Context, database *mongo.Database) (int64, error)
}

// All lists migrations in the order they run.
var All = []Migration{
	{ID: "001_accounts_email_unique", Description: "unique index on accounts.email", Up: AddAccountEmailIndex},
	{ID: "002_appointments_active_slot_unique", Description: "partial unique index on active appointment slots", Up: AddActiveSlotIndex},
	{ID: "003_hospitals_hospitalId_unique", Description: "unique index on hospitals.hospitalId", Up: AddHospitalIDIndex},
	{ID: "004_backfill_doctor_status", Description: "set PENDING on doctors without a status", Up: BackfillDoctorStatus},
}

type record struct {
	ID          string    `bson:"_id"`
	Description string    `bson:"description"`
	Affected    int64     `bson:"affected"`
	AppliedAt   time.Time `bson:"appliedAt"`
}

/*
* Skip every migration already recorded
* Stop at the first failure so later ones never run on a half-migrated schema
 */
func Run(ctx context.Context, database *mongo.Database, log logrus.FieldLogger) (int, error) {
	ledger := db.OpenCollections(database, util.MigrationCollection)
	applied := 0
	for _, m := range All {
		var done record
		err := db.FindOne(ctx, ledger, bson.M{"_id": m.ID}, &done)
		if err == nil {
			continue
		}
		if !db.IsNotFound(err) {
			return applied, fmt.Errorf("read migration ledger: %w", err)
		}

		affected, err := m.Up(ctx, database)
		if err != nil {
			return applied, fmt.Errorf("migration %s failed: %w", m.ID, err)
		}
		if _, err := db.CreateOne(ctx, ledger, record{
			ID:          m.ID,
			Description: m.Description,
			Affected:    affected,
			AppliedAt:   time.Now().UTC(),
		}); err != nil {
			return applied, fmt.Errorf("record migration %s: %w", m.ID, err)
		}
		log.WithField("migration", m.ID).WithField("affected", affected).Info("Migration applied")
		applied++
	}
	return applied, nil
}
