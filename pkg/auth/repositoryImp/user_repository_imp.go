package repositoryImp

import (
	"gorm.io/gorm"

	"cultivos/entities"
	"cultivos/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) List() ([]entities.User, error) {
	var out []entities.User
	return out, r.db.Order("id ASC").Find(&out).Error
}

func (r *userRepo) FindByUsername(username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns the oldest account registered with email.
func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).Order("id ASC").First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) Save(u *entities.User) error {
	return r.db.Model(u).Select("username", "password", "role", "email").Updates(u).Error
}

func (r *userRepo) SetPassword(id uint, hash string) error {
	return r.db.Model(&entities.User{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *userRepo) DeleteByUsername(username string) (bool, error) {
	res := r.db.Where("username = ?", username).Delete(&entities.User{})
	return res.RowsAffected > 0, res.Error
}
