package repository

import (
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// ---------------- Addresses ----------------

func (r *UserRepository) ListAddresses(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}

// GetAddressForUser scopes the lookup to the owner so one user can never
// resolve another user's address.
func (r *UserRepository) GetAddressForUser(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *UserRepository) CreateAddress(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *UserRepository) UpdateAddress(userID, addressID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) DeleteAddress(userID, addressID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", addressID, userID).Delete(&entity.Address{})
	return res.RowsAffected, res.Error
}
