package database

import (
	"database/sql"
	"fmt"
	"log"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS schools (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT UNIQUE NOT NULL,
		admin_email TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		website TEXT,
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'suspended')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		school_id INTEGER NOT NULL REFERENCES schools (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin', 'teacher', 'student', 'student_coordinator')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (school_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		school_id INTEGER NOT NULL REFERENCES schools (id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT,
		start_at TIMESTAMPTZ NOT NULL,
		end_at TIMESTAMPTZ NOT NULL,
		location TEXT,
		host TEXT,
		notes TEXT,
		registration_link TEXT,
		max_participants INTEGER,
		status TEXT NOT NULL DEFAULT 'upcoming' CHECK (status IN ('upcoming', 'ongoing', 'completed', 'cancelled')),
		created_by INTEGER REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		id SERIAL PRIMARY KEY,
		school_id INTEGER REFERENCES schools (id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		grade TEXT,
		section TEXT,
		email TEXT,
		phone TEXT,
		guardian_name TEXT,
		guardian_phone TEXT,
		medical_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id SERIAL PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		coach_user_id INTEGER REFERENCES users (id) ON DELETE SET NULL,
		max_size INTEGER NOT NULL DEFAULT 10,
		notes TEXT,
		created_by INTEGER REFERENCES users (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (event_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		team_id INTEGER NOT NULL REFERENCES teams (id) ON DELETE CASCADE,
		participant_id INTEGER NOT NULL REFERENCES participants (id) ON DELETE CASCADE,
		role TEXT NOT NULL DEFAULT 'member' CHECK (role IN ('leader', 'member')),
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (team_id, participant_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		school_id INTEGER REFERENCES schools (id) ON DELETE CASCADE,
		event_id INTEGER REFERENCES events (id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed', 'cancelled')),
		due_at TIMESTAMPTZ,
		priority TEXT,
		assignee_user_id INTEGER REFERENCES users (id) ON DELETE SET NULL,
		created_by INTEGER REFERENCES users (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id SERIAL PRIMARY KEY,
		school_id INTEGER NOT NULL REFERENCES schools (id) ON DELETE CASCADE,
		event_id INTEGER REFERENCES events (id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		created_by INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id SERIAL PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		venue TEXT NOT NULL,
		start_at TIMESTAMPTZ NOT NULL,
		end_at TIMESTAMPTZ NOT NULL,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS logistics (
		id SERIAL PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		details_json TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS files (
		id SERIAL PRIMARY KEY,
		school_id INTEGER NOT NULL REFERENCES schools (id) ON DELETE CASCADE,
		event_id INTEGER REFERENCES events (id) ON DELETE CASCADE,
		owner_type TEXT NOT NULL DEFAULT 'event',
		owner_id INTEGER NOT NULL DEFAULT 0,
		filename TEXT NOT NULL,
		mime TEXT NOT NULL,
		size BIGINT NOT NULL,
		path TEXT NOT NULL,
		uploaded_by INTEGER REFERENCES users (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users (id) ON DELETE SET NULL,
		action TEXT NOT NULL,
		target_type TEXT NOT NULL,
		target_id INTEGER,
		meta_json TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// columnUpgrade describes a lazily added column from an older schema
// generation, optionally backfilled from a legacy column when that column is
// still around.
type columnUpgrade struct {
	table        string
	column       string
	ddlType      string
	backfillFrom string
}

var columnUpgrades = []columnUpgrade{
	{table: "events", column: "title", ddlType: "TEXT", backfillFrom: "name"},
	{table: "events", column: "start_at", ddlType: "TIMESTAMPTZ", backfillFrom: "start_time"},
	{table: "events", column: "end_at", ddlType: "TIMESTAMPTZ", backfillFrom: "end_time"},
	{table: "events", column: "host", ddlType: "TEXT"},
	{table: "events", column: "notes", ddlType: "TEXT"},
	{table: "events", column: "registration_link", ddlType: "TEXT"},
	{table: "announcements", column: "event_id", ddlType: "INTEGER"},
	{table: "announcements", column: "body", ddlType: "TEXT", backfillFrom: "content"},
	{table: "participants", column: "school_id", ddlType: "INTEGER"},
	{table: "tasks", column: "school_id", ddlType: "INTEGER"},
	{table: "tasks", column: "due_at", ddlType: "TIMESTAMPTZ", backfillFrom: "due_date"},
	{table: "users", column: "grade", ddlType: "TEXT"},
	{table: "users", column: "section", ddlType: "TEXT"},
	{table: "users", column: "guardian_name", ddlType: "TEXT"},
	{table: "users", column: "guardian_phone", ddlType: "TEXT"},
	{table: "users", column: "medical_notes", ddlType: "TEXT"},
}

// EnsureSchema creates missing tables and applies the column upgrades. It is
// idempotent and called once from main before the server starts listening.
// The add-column and backfill statements commit independently: a crash in
// between leaves partial state that the column probing tolerates on the next
// run.
func EnsureSchema(db *sql.DB) error {
	log.Println("Ensuring database schema...")

	for _, stmt := range createStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, up := range columnUpgrades {
		if err := ensureColumn(db, up); err != nil {
			return err
		}
	}

	log.Println("Database schema is up to date")
	return nil
}

func ensureColumn(db *sql.DB, up columnUpgrade) error {
	cols, err := TableColumns(db, up.table)
	if err != nil {
		return err
	}
	if cols[up.column] {
		return nil
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", up.table, up.column, up.ddlType)
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to add column %s.%s: %v", up.table, up.column, err)
		return err
	}

	if up.backfillFrom != "" && cols[up.backfillFrom] {
		backfill := fmt.Sprintf(
			"UPDATE %s SET %s = %s WHERE %s IS NULL AND %s IS NOT NULL",
			up.table, up.column, up.backfillFrom, up.column, up.backfillFrom,
		)
		if _, err := db.Exec(backfill); err != nil {
			log.Printf("Failed to backfill %s.%s from %s: %v", up.table, up.column, up.backfillFrom, err)
			return err
		}
	}

	log.Printf("Added column %s.%s", up.table, up.column)
	return nil
}
