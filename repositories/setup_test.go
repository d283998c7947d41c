package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"warbler/models"
	"warbler/repositories"
)

// fakeHasher is a cheap stand-in for bcrypt in store tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, digest string) bool  { return digest == "hashed:"+password }

// newTestDB opens an isolated in-memory database. A single connection is
// kept so the whole test sees the same sqlite instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

func newUserRepo(t *testing.T, db *gorm.DB) repositories.UserRepository {
	t.Helper()
	return repositories.NewUserRepository(db, fakeHasher{})
}

func signupUser(t *testing.T, repo repositories.UserRepository, username string) *models.User {
	t.Helper()
	user, err := repo.Signup(username, username+"@email.com", "password", "")
	require.NoError(t, err)
	return user
}

func strptr(s string) *string { return &s }
