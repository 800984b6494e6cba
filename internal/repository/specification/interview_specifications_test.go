package specification

import (
	"strings"
	"testing"

	"interview-content-be/internal/constant"
	"interview-content-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func applyAll(db *gorm.DB, specs ...Specification) *gorm.DB {
	for _, s := range specs {
		db = s.Apply(db)
	}
	return db
}

// The unit-selection query must rank by score descending with the original
// sort order as tie break, and cap the rows it returns.
func TestContentUnitRankingQuery(t *testing.T) {
	db := dryRunDB(t)
	sessionId := uuid.New()

	query := applyAll(db.Model(&model.ContentUnit{}),
		ForSession{SessionID: sessionId},
		RankedByRelevance{},
		Limit{N: constant.MaxSourceUnits},
	)

	var units []model.ContentUnit
	stmt := query.Find(&units).Statement
	sql := stmt.SQL.String()

	if !strings.Contains(sql, "session_id = ?") {
		t.Errorf("query = %q, want a session filter", sql)
	}
	if !strings.Contains(sql, "ORDER BY relevance_score DESC, sort_order ASC") {
		t.Errorf("query = %q, want ranking by score with sort-order tie break", sql)
	}
	if !strings.Contains(sql, "LIMIT ?") {
		t.Errorf("query = %q, want a row cap", sql)
	}

	foundCap := false
	for _, v := range stmt.Vars {
		if v == constant.MaxSourceUnits {
			foundCap = true
		}
	}
	if !foundCap {
		t.Errorf("query vars = %v, want the %d-row cap bound", stmt.Vars, constant.MaxSourceUnits)
	}
}

func TestSessionListQuery(t *testing.T) {
	db := dryRunDB(t)
	orgId := uuid.New()
	userId := uuid.New()

	query := applyAll(db.Model(&model.InterviewSession{}),
		OwnedByOrganization{OrganizationID: orgId},
		OwnedByUser{UserID: userId},
		WithStatus{Status: constant.SessionStatusCompleted},
		OrderBy{Field: "created_at", Desc: true},
		Pagination{Limit: 20, Offset: 20},
	)

	var sessions []model.InterviewSession
	stmt := query.Find(&sessions).Statement
	sql := stmt.SQL.String()

	for _, fragment := range []string{
		"organization_id = ?",
		"user_id = ?",
		"status = ?",
		"ORDER BY created_at DESC",
		"LIMIT ?",
		"OFFSET ?",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("query = %q, want %q", sql, fragment)
		}
	}
}
