package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services"
	"jobportal_backend/pkg/apperrors"
)

func newNetworkService(db *gorm.DB) services.NetworkService {
	return services.NewNetworkService(
		repositories.NewConnectionRepository(db),
		repositories.NewNotificationRepository(db),
		repositories.NewUserRepository(db),
		email.Noop{},
	)
}

func TestSendConnectionRequestToSelf(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	user := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)

	_, err := svc.SendConnectionRequest(user.ID, user.ID)
	require.Error(t, err)
	assert.Equal(t, "You cannot connect with yourself", apperrors.ClientMessage(err))
}

func TestSendConnectionRequestCreatesPendingAndNotification(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	requester := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	receiver := createUser(t, db, "Jane Roe", "jane@example.com", models.UserRoleCandidate)

	result, err := svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPending, result.Connection.Status)
	assert.Equal(t, receiver.ID, result.ReceiverID)

	require.NotNil(t, result.Notification)
	assert.Equal(t, receiver.ID, result.Notification.UserID)
	assert.Equal(t, "📨 You received a new connection request!", result.Notification.Message)
	require.NotNil(t, result.Notification.ConnectionID)
	assert.Equal(t, result.Connection.ID, *result.Notification.ConnectionID)
}

func TestSendConnectionRequestDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	requester := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	receiver := createUser(t, db, "Jane Roe", "jane@example.com", models.UserRoleCandidate)

	_, err := svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.NoError(t, err)

	_, err = svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.Error(t, err)
	assert.Equal(t, "Connection request already exists", apperrors.ClientMessage(err))

	// The reverse direction counts as the same pair.
	_, err = svc.SendConnectionRequest(receiver.ID, requester.ID)
	require.Error(t, err)
	assert.Equal(t, "Connection request already exists", apperrors.ClientMessage(err))
}

func TestRespondConnectionRequestReceiverOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	requester := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	receiver := createUser(t, db, "Jane Roe", "jane@example.com", models.UserRoleCandidate)

	sent, err := svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.NoError(t, err)

	_, err = svc.RespondConnectionRequest(requester.ID, sent.Connection.ID, models.ConnectionActionAccepted)
	require.Error(t, err)
	assert.Equal(t, "Not authorized", apperrors.ClientMessage(err))
}

func TestRejectDeletesConnectionAndNotifiesRequester(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	requester := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	receiver := createUser(t, db, "Jane Roe", "jane@example.com", models.UserRoleCandidate)

	sent, err := svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.NoError(t, err)

	result, err := svc.RespondConnectionRequest(receiver.ID, sent.Connection.ID, models.ConnectionActionRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionActionRejected, result.Action)
	assert.Equal(t, requester.ID, result.RequesterID)

	var connections int64
	require.NoError(t, db.Model(&models.Connection{}).Count(&connections).Error)
	assert.EqualValues(t, 0, connections)

	// The receiver's pending notification is gone; the requester has the
	// outcome.
	var receiverNotifications int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", receiver.ID).Count(&receiverNotifications).Error)
	assert.EqualValues(t, 0, receiverNotifications)

	var requesterNotification models.Notification
	require.NoError(t, db.First(&requesterNotification, "user_id = ?", requester.ID).Error)
	assert.Equal(t, "❌ Your connection request was rejected!", requesterNotification.Message)
}

func TestAcceptKeepsConnectionAndNotifiesRequester(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	requester := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	receiver := createUser(t, db, "Jane Roe", "jane@example.com", models.UserRoleCandidate)

	sent, err := svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.NoError(t, err)

	result, err := svc.RespondConnectionRequest(receiver.ID, sent.Connection.ID, models.ConnectionActionAccepted)
	require.NoError(t, err)
	assert.Equal(t, "✅ Your connection request was accepted!", result.RequesterNotification.Message)

	var stored models.Connection
	require.NoError(t, db.First(&stored, "id = ?", sent.Connection.ID).Error)
	assert.Equal(t, models.ConnectionStatusAccepted, stored.Status)
}

func TestRespondConnectionRequestInvalidAction(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	requester := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	receiver := createUser(t, db, "Jane Roe", "jane@example.com", models.UserRoleCandidate)

	sent, err := svc.SendConnectionRequest(requester.ID, receiver.ID)
	require.NoError(t, err)

	_, err = svc.RespondConnectionRequest(receiver.ID, sent.Connection.ID, "maybe")
	require.Error(t, err)
	assert.Equal(t, "Invalid action: maybe", apperrors.ClientMessage(err))
}

func TestGetAllUsersExcludesCompanies(t *testing.T) {
	db := newTestDB(t)
	svc := newNetworkService(db)
	candidate := createUser(t, db, "John Doe", "john@example.com", models.UserRoleCandidate)
	createUser(t, db, "Tech Corp", "company@example.com", models.UserRoleCompany)

	require.NoError(t, db.Create(&models.Profile{
		UserID:   candidate.ID,
		Headline: "Frontend engineer",
		Location: "Berlin",
	}).Error)

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, candidate.ID, users[0].ID)
	assert.Equal(t, "Frontend engineer", users[0].Headline)
	assert.Equal(t, "Berlin", users[0].Location)
}
