package repository

import (
	"errors"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/apperr"
	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"
	"gorm.io/gorm"
)

type ProfileCardRepository struct {
	db *gorm.DB
}

func NewProfileCardRepository(db *gorm.DB) *ProfileCardRepository {
	return &ProfileCardRepository{db}
}

func (r *ProfileCardRepository) Create(card *model.ProfileCard) error {
	return r.db.Create(card).Error
}

func (r *ProfileCardRepository) FindByID(id string) (*model.ProfileCard, error) {
	var card model.ProfileCard
	err := r.db.First(&card, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateFields writes only the given columns. Callers own the patch
// semantics; an empty map still bumps updated_at.
func (r *ProfileCardRepository) UpdateFields(id string, fields map[string]any) error {
	res := r.db.Model(&model.ProfileCard{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ProfileCardRepository) Delete(id string) error {
	res := r.db.Delete(&model.ProfileCard{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ProfileCardRepository) List(limit, offset int) ([]model.ProfileCard, error) {
	var cards []model.ProfileCard
	err := r.db.Order("created_at asc").Limit(limit).Offset(offset).Find(&cards).Error
	return cards, err
}

// Count is a dedicated aggregate so listing never loads the whole
// table just to report a total.
func (r *ProfileCardRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.ProfileCard{}).Count(&total).Error
	return total, err
}
