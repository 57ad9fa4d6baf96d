package services

import (
	"testing"
	"time"

	"github.com/ronankibharath98/JobHunt/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCreatesPendingApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	company := seedCompany(t, db, recruiter, "Acme")
	job := seedJob(t, db, company, "Backend Engineer")
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)

	application, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, application.Status)
	assert.Equal(t, job.ID, application.JobID)
	assert.Equal(t, seeker.ID, application.ApplicantID)

	// membership is visible from the job side
	withApplicants, err := svc.ApplicantsFor(job.ID)
	require.NoError(t, err)
	require.Len(t, withApplicants.Applications, 1)
	assert.Equal(t, application.ID, withApplicants.Applications[0].ID)
}

func TestApplyTwiceFailsWithConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	job := seedJob(t, db, seedCompany(t, db, recruiter, "Acme"), "Backend Engineer")
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)

	_, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)

	_, err = svc.Apply(seeker.ID, job.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyUnknownJobCreatesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)

	_, err := svc.Apply(seeker.ID, 9999)
	assert.ErrorIs(t, err, ErrJobNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

// The duplicate check runs before the job lookup: when both conditions hold,
// the caller hears "already applied".
func TestApplyDuplicateCheckedBeforeJobExistence(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	job := seedJob(t, db, seedCompany(t, db, recruiter, "Acme"), "Backend Engineer")
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)

	_, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(&models.Job{}, job.ID).Error)

	_, err = svc.Apply(seeker.ID, job.ID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestApplicationsForReturnsOwnNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	company := seedCompany(t, db, recruiter, "Acme")
	first := seedJob(t, db, company, "First Role")
	second := seedJob(t, db, company, "Second Role")
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)
	other := seedUser(t, db, "other@x.com", models.RoleSeeker)

	a1, err := svc.Apply(seeker.ID, first.ID)
	require.NoError(t, err)
	a2, err := svc.Apply(seeker.ID, second.ID)
	require.NoError(t, err)
	_, err = svc.Apply(other.ID, first.ID)
	require.NoError(t, err)

	// push the first application into the past so ordering is deterministic
	require.NoError(t, db.Model(&models.Application{}).Where("id = ?", a1.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	applications, err := svc.ApplicationsFor(seeker.ID)
	require.NoError(t, err)
	require.Len(t, applications, 2)
	assert.Equal(t, a2.ID, applications[0].ID)
	assert.Equal(t, a1.ID, applications[1].ID)

	// job and company are expanded
	assert.Equal(t, "Second Role", applications[0].Job.Title)
	assert.Equal(t, "Acme", applications[0].Job.Company.Name)
}

func TestApplicationsForEmptyIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)

	applications, err := svc.ApplicationsFor(seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, applications)
}

func TestApplicantsForExpandsApplicantsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	job := seedJob(t, db, seedCompany(t, db, recruiter, "Acme"), "Backend Engineer")
	alice := seedUser(t, db, "alice@x.com", models.RoleSeeker)
	bob := seedUser(t, db, "bob@x.com", models.RoleSeeker)

	aliceApp, err := svc.Apply(alice.ID, job.ID)
	require.NoError(t, err)
	bobApp, err := svc.Apply(bob.ID, job.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Application{}).Where("id = ?", aliceApp.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	got, err := svc.ApplicantsFor(job.ID)
	require.NoError(t, err)
	require.Len(t, got.Applications, 2)
	assert.Equal(t, bobApp.ID, got.Applications[0].ID)
	assert.Equal(t, "bob@x.com", got.Applications[0].Applicant.Email)
	assert.Equal(t, "alice@x.com", got.Applications[1].Applicant.Email)
}

func TestApplicantsForUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	_, err := svc.ApplicantsFor(42)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateStatusLowercasesValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	job := seedJob(t, db, seedCompany(t, db, recruiter, "Acme"), "Backend Engineer")
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)
	application, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(application.ID, "Accepted")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	var stored models.Application
	require.NoError(t, db.First(&stored, application.ID).Error)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

// Values outside pending/accepted/rejected are stored as-is; the enum was
// never enforced and custom stages are in active use.
func TestUpdateStatusAcceptsArbitraryValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	recruiter := seedUser(t, db, "recruiter@x.com", models.RoleRecruiter)
	job := seedJob(t, db, seedCompany(t, db, recruiter, "Acme"), "Backend Engineer")
	seeker := seedUser(t, db, "seeker@x.com", models.RoleSeeker)
	application, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(application.ID, "Shortlisted")
	require.NoError(t, err)
	assert.Equal(t, "shortlisted", updated.Status)
}

func TestUpdateStatusUnknownApplicationMutatesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)

	_, err := svc.UpdateStatus(9999, "accepted")
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
