// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog writes generated study plans into a SQLite file so the
// course graph can be queried with SQL: one row per course and one row per
// prerequisite relation.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/FranCalveyra/austral-map-v2/internal/plan"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// Relation names the prerequisite field a requirement row came from.
type Relation string

const (
	RelationTake    Relation = "take"
	RelationPass    Relation = "pass"
	RelationTakeFor Relation = "take_for"
	RelationPassFor Relation = "pass_for"
)

// Store is a plan catalog backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			plan_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			year INTEGER,
			semester INTEGER,
			credits TEXT,
			PRIMARY KEY (plan_name, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_courses_id ON courses(plan_name, id)`,
		`CREATE TABLE IF NOT EXISTS requirements (
			plan_name TEXT NOT NULL,
			course_id TEXT NOT NULL,
			related_id TEXT NOT NULL,
			relation TEXT NOT NULL,
			condition TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_requirements_course ON requirements(plan_name, course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_requirements_related ON requirements(plan_name, related_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// WritePlan replaces every row of the named plan with the given courses.
func (s *Store) WritePlan(ctx context.Context, name string, courses []types.Course) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"courses", "requirements"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE plan_name = ?`, name); err != nil {
			return fmt.Errorf("clearing %s for %s: %w", table, name, err)
		}
	}

	courseStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO courses (plan_name, position, id, name, year, semester, credits) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing course insert: %w", err)
	}
	defer courseStmt.Close()

	reqStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO requirements (plan_name, course_id, related_id, relation, condition) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing requirement insert: %w", err)
	}
	defer reqStmt.Close()

	for i, c := range courses {
		if _, err := courseStmt.ExecContext(ctx,
			name, i, c.ID, c.Course, nullInt(c.Year), nullInt(c.Semester), nullString(c.Credits),
		); err != nil {
			return fmt.Errorf("inserting course %s: %w", c.ID, err)
		}

		for _, f := range []struct {
			rel   Relation
			field *string
		}{
			{RelationTake, c.PrerequisitesToTake},
			{RelationPass, c.PrerequisitesToPass},
			{RelationTakeFor, c.PrerequisiteToTakeFor},
			{RelationPassFor, c.PrerequisiteToPassFor},
		} {
			for _, r := range plan.ParseRequirements(f.field) {
				if _, err := reqStmt.ExecContext(ctx, name, c.ID, r.ID, string(f.rel), string(r.Condition)); err != nil {
					return fmt.Errorf("inserting %s requirement %s -> %s: %w", f.rel, c.ID, r.ID, err)
				}
			}
		}
	}

	return tx.Commit()
}

// Counts reports how many courses and requirement rows a plan has.
func (s *Store) Counts(ctx context.Context, name string) (courses, requirements int, err error) {
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM courses WHERE plan_name = ?`, name).Scan(&courses); err != nil {
		return 0, 0, fmt.Errorf("counting courses: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM requirements WHERE plan_name = ?`, name).Scan(&requirements); err != nil {
		return 0, 0, fmt.Errorf("counting requirements: %w", err)
	}
	return courses, requirements, nil
}

// Requirements returns the related course IDs of one relation, in insertion order.
func (s *Store) Requirements(ctx context.Context, name, courseID string, rel Relation) ([]types.Requirement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT related_id, condition FROM requirements
		 WHERE plan_name = ? AND course_id = ? AND relation = ? ORDER BY rowid`,
		name, courseID, string(rel))
	if err != nil {
		return nil, fmt.Errorf("querying requirements: %w", err)
	}
	defer rows.Close()

	var out []types.Requirement
	for rows.Next() {
		var r types.Requirement
		var cond string
		if err := rows.Scan(&r.ID, &cond); err != nil {
			return nil, fmt.Errorf("scanning requirement: %w", err)
		}
		r.Condition = types.Condition(cond)
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
