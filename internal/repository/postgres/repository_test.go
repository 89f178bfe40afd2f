package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mixMaster/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

var liquidColumns = []string{
	"id", "name", "description", "tags", "flavor_profile", "fruit_types",
	"cooling_type", "liquid_type", "mixing_info", "stock", "created_at", "updated_at",
}

func TestLiquidRepositoryFindCandidates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLiquidRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(liquidColumns).AddRow(
		"6f1c1a4e-8f7a-4b8e-9d52-0d1f6c7b2a11", "Mango Ice", "frozen mango",
		[]byte(`["summer"]`),
		[]byte(`{"primary":"tropical","menthol_level":6,"sweetness":7}`),
		[]byte(`["mango"]`),
		"koolada", "nicsalt",
		[]byte(`{"is_mixable":true,"compatibility":["citrus"]}`),
		12, now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM "liquids" WHERE stock > 0 AND \(mixing_info->>'is_mixable'\)::boolean IS TRUE AND .*menthol_level.* BETWEEN .* EXISTS .*lower\(cooling_type\) = .* ORDER BY name ASC,id ASC`).
		WillReturnRows(rows)

	got, err := repo.FindCandidates(context.Background(), domain.CatalogFilter{
		Menthol:     &domain.Window{Min: 4, Max: 8},
		FruitTypes:  []string{"Mango"},
		CoolingType: "Koolada",
	})
	if err != nil {
		t.Fatalf("FindCandidates() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d liquids, want 1", len(got))
	}

	l := got[0]
	if l.FlavorProfile.Primary != domain.FlavorTropical || l.FlavorProfile.MentholLevel == nil || *l.FlavorProfile.MentholLevel != 6 {
		t.Fatalf("flavor profile = %+v", l.FlavorProfile)
	}
	if l.FlavorProfile.Complexity != nil {
		t.Fatal("uncurated complexity should stay nil")
	}
	if !l.MixingInfo.IsMixable || len(l.FruitTypes) != 1 || l.Type != domain.LiquidTypeNicSalt {
		t.Fatalf("liquid = %+v", l)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestLiquidRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLiquidRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "liquids" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(liquidColumns))

	got, err := repo.FindByID(context.Background(), "6f1c1a4e-8f7a-4b8e-9d52-0d1f6c7b2a11")
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestLiquidRepositoryFindByIDsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLiquidRepository(db)

	got, err := repo.FindByIDs(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query expected: %v", err)
	}
}

func TestFeedbackRepositoryUpsertUserVote(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)
	uid := uint(9)

	mock.ExpectQuery(`INSERT INTO "suggestion_feedback" .* ON CONFLICT \("identity_hash","user_id"\) DO UPDATE SET "liked"="excluded"."liked","updated_at"="excluded"."updated_at" RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	fb := &domain.SuggestionFeedback{IdentityHash: strings.Repeat("a", 64), UserID: &uid, Liked: true}
	if err := repo.Upsert(context.Background(), fb); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if fb.ID != 3 {
		t.Fatalf("id = %d, want 3", fb.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestFeedbackRepositoryAnonymousVoteIsPlainInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectQuery(`INSERT INTO "suggestion_feedback" \("identity_hash","user_id","liked","created_at","updated_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	fb := &domain.SuggestionFeedback{IdentityHash: strings.Repeat("b", 64), Liked: false}
	if err := repo.Upsert(context.Background(), fb); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestFeedbackRepositorySummary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)
	hash := strings.Repeat("c", 64)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\) FILTER \(WHERE liked\) AS like_count`).
		WithArgs(hash).
		WillReturnRows(sqlmock.NewRows([]string{"like_count", "dislike_count"}).AddRow(5, 2))

	got, err := repo.Summary(context.Background(), hash)
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if got.LikeCount != 5 || got.DislikeCount != 2 || got.IdentityHash != hash {
		t.Fatalf("summary = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
