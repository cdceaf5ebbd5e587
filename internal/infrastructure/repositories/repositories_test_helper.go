package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		user_type TEXT NOT NULL,
		verification_status TEXT DEFAULT 'pending',
		profile_img_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		project_type TEXT NOT NULL,
		location_lat TEXT NOT NULL,
		location_lng TEXT NOT NULL,
		area_size TEXT NOT NULL,
		area_unit TEXT NOT NULL,
		description TEXT,
		start_date DATETIME NOT NULL,
		status TEXT DEFAULT 'registered',
		boundary_geojson TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAssessmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE carbon_assessments (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		assessment_date DATETIME NOT NULL,
		carbon_estimate TEXT NOT NULL,
		confidence_score TEXT NOT NULL,
		methodology TEXT NOT NULL,
		data_sources TEXT NOT NULL,
		ai_model_version TEXT NOT NULL,
		verification_status TEXT DEFAULT 'pending',
		report_url TEXT
	);`)
}

func createCreditTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE carbon_credits (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		assessment_id TEXT NOT NULL,
		credit_amount TEXT NOT NULL,
		issuance_date DATETIME NOT NULL,
		expiry_date DATETIME,
		certificate_id TEXT NOT NULL UNIQUE,
		status TEXT DEFAULT 'available',
		price_per_credit TEXT,
		verification_document_url TEXT
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		credit_id TEXT NOT NULL,
		buyer_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		price_per_unit TEXT NOT NULL,
		total_price TEXT NOT NULL,
		transaction_date DATETIME NOT NULL,
		status TEXT DEFAULT 'pending'
	);`)
}

func createSatelliteTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE satellite_observations (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		capture_date DATETIME NOT NULL,
		ndvi_value TEXT,
		land_cover_classification TEXT,
		cloud_cover_percentage TEXT,
		source TEXT NOT NULL,
		raw_data_url TEXT,
		processed_data_url TEXT
	);`)
}

func createVerificationLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_logs (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		assessment_id TEXT,
		verification_date DATETIME NOT NULL,
		model_used TEXT NOT NULL,
		input_data TEXT,
		output_result TEXT,
		confidence_score TEXT,
		verification_type TEXT NOT NULL
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createProjectTable(t, db)
	createAssessmentTable(t, db)
	createCreditTable(t, db)
	createTransactionTable(t, db)
	createSatelliteTable(t, db)
	createVerificationLogTable(t, db)
}
