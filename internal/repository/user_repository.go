package repository

import (
	"estate-backoffice/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(offset, limit int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
}

type userRepository struct {
	conn Conn
}

func NewUserRepository(conn Conn) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) Create(user *models.User) error {
	return r.conn.DB().Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.conn.DB().First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.conn.DB().Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.conn.DB().Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) GetAll(offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.conn.DB().Model(&models.User{})
	query.Count(&total)

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&users).Error
	return users, total, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.conn.DB().Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.conn.DB().Delete(&models.User{}, id).Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.conn.DB().Model(&models.User{}).Count(&count).Error
	return count, err
}
