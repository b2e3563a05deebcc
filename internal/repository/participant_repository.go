package repository

import (
	"estate-backoffice/internal/models"
)

type ParticipantRepository interface {
	Create(participant *models.Participant) error
	GetByID(id uint) (*models.Participant, error)
	GetByProperty(propertyID uint) ([]models.Participant, error)
	ExistsForProperty(propertyID uint, email string) (bool, error)
	Update(participant *models.Participant) error
	Delete(id uint) error
}

type participantRepository struct {
	conn Conn
}

func NewParticipantRepository(conn Conn) ParticipantRepository {
	return &participantRepository{conn: conn}
}

func (r *participantRepository) Create(participant *models.Participant) error {
	return r.conn.DB().Create(participant).Error
}

func (r *participantRepository) GetByID(id uint) (*models.Participant, error) {
	var participant models.Participant
	err := r.conn.DB().First(&participant, id).Error
	return &participant, err
}

func (r *participantRepository) GetByProperty(propertyID uint) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.conn.DB().
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&participants).Error
	return participants, err
}

func (r *participantRepository) ExistsForProperty(propertyID uint, email string) (bool, error) {
	var count int64
	err := r.conn.DB().Model(&models.Participant{}).
		Where("property_id = ? AND email = ?", propertyID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *participantRepository) Update(participant *models.Participant) error {
	return r.conn.DB().Save(participant).Error
}

func (r *participantRepository) Delete(id uint) error {
	return r.conn.DB().Delete(&models.Participant{}, id).Error
}
