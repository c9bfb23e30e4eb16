package services_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"jobportal_backend/database"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/storage"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret"
	cfg.JWT.TTLDays = 1
	config.AppConfig = cfg

	os.Exit(m.Run())
}

// newTestDB opens a uniquely named in-memory sqlite database so tests stay
// hermetic and can run in parallel.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	store, err := storage.NewStorage(storage.Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createJob(t *testing.T, db *gorm.DB, employerID, title string, jobType models.JobType) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:       title,
		Description: "Build modern UI.",
		CompanyName: "Tech Corp",
		JobType:     jobType,
		EmployerID:  employerID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
