package services_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

func TestSaveCompanyProfileRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCompanyProfileService(repositories.NewProfileRepository(db), newTestStorage(t))
	user := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)

	_, err := svc.Save(context.Background(), user.ID, &dto.SaveCompanyProfileRequest{
		CompanyName: "Tech Corp",
		Description: "We build things.",
		Location:    "Berlin",
		Industry:    "Software",
		Employees:   "11-50",
		FoundedYear: "2015",
	})
	require.NoError(t, err)

	profile, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Corp", profile.CompanyName)
	assert.Equal(t, "Software", profile.Industry)
	assert.Equal(t, "2015", profile.FoundedYear)
}

func TestSaveCompanyProfileKeepsLogoWhenNotResent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCompanyProfileService(repositories.NewProfileRepository(db), newTestStorage(t))
	user := createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)

	first, err := svc.Save(context.Background(), user.ID, &dto.SaveCompanyProfileRequest{
		CompanyName: "Tech Corp",
		LogoBase64:  base64.StdEncoding.EncodeToString([]byte("logo bytes")),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.Logo)

	second, err := svc.Save(context.Background(), user.ID, &dto.SaveCompanyProfileRequest{CompanyName: "Tech Corp GmbH"})
	require.NoError(t, err)
	assert.Equal(t, first.Logo, second.Logo)
	assert.Equal(t, "Tech Corp GmbH", second.CompanyName)
}

func TestGetCompanyProfileNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCompanyProfileService(repositories.NewProfileRepository(db), newTestStorage(t))

	_, err := svc.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "Company profile not found", apperrors.ClientMessage(err))
}
