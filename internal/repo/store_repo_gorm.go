package repo

import (
	"errors"

	"gorm.io/gorm"

	"store-console/internal/domain"
)

type StoreRepo struct{ db *gorm.DB }

func NewStoreRepo(db *gorm.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) List() ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.Order("code ASC").Find(&stores).Error
	return stores, err
}

func (r *StoreRepo) FindByCode(code string) (*domain.Store, error) {
	var s domain.Store
	err := r.db.First(&s, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *StoreRepo) Create(s *domain.Store) error { return r.db.Create(s).Error }

func (r *StoreRepo) Update(code string, s *domain.Store) (int64, error) {
	res := r.db.Model(&domain.Store{}).Where("code = ?", code).Updates(map[string]any{
		"designation": s.Designation,
		"manager":     s.Manager,
		"email":       s.Email,
		"mobile":      s.Mobile,
		"store_type":  s.StoreType,
	})
	return res.RowsAffected, res.Error
}

func (r *StoreRepo) Delete(code string) (bool, error) {
	res := r.db.Where("code = ?", code).Delete(&domain.Store{})
	return res.RowsAffected > 0, res.Error
}
