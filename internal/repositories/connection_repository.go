package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

var (
	ErrConnectionNotFound = errors.New("connection not found")
	ErrConnectionExists   = errors.New("connection already exists between these users")
)

type ConnectionRepository interface {
	Create(connection *models.Connection) error
	FindByID(id string) (*models.Connection, error)
	ExistsBetween(userA, userB string) (bool, error)
	UpdateStatus(id string, status models.ConnectionStatus) error
	Delete(id string) error
}

type ConnectionRepositoryImpl struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &ConnectionRepositoryImpl{db: db}
}

func (r *ConnectionRepositoryImpl) Create(connection *models.Connection) error {
	return r.db.Create(connection).Error
}

func (r *ConnectionRepositoryImpl) FindByID(id string) (*models.Connection, error) {
	var connection models.Connection
	err := r.db.First(&connection, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, ErrConnectionNotFound)
	}
	return &connection, nil
}

// ExistsBetween reports whether any connection (pending or accepted) links
// the two users in either direction.
func (r *ConnectionRepositoryImpl) ExistsBetween(userA, userB string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Connection{}).
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *ConnectionRepositoryImpl) UpdateStatus(id string, status models.ConnectionStatus) error {
	result := r.db.Model(&models.Connection{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

func (r *ConnectionRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Connection{}, "id = ?", id).Error
}
