package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ronankibharath98/JobHunt/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database with the full schema. Each call
// gets its own database so tests cannot see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		FullName:    "Test User",
		Email:       email,
		PhoneNumber: "1234567890",
		Password:    "not-a-real-hash",
		Role:        role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, UserID: owner.ID}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedJob(t *testing.T, db *gorm.DB, company *models.Company, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Description: "description of " + title,
		CompanyID:   company.ID,
		CreatedByID: company.UserID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
