package repo

import (
	"errors"

	"gorm.io/gorm"

	"store-console/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FirstByType(userType int) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "user_type = ?", userType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("created_at DESC, id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepo) UpdateFields(id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected > 0, res.Error
}
