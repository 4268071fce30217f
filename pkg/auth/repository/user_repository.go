package repository

import "cultivos/entities"

type UserRepository interface {
	List() ([]entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	Create(u *entities.User) error
	Save(u *entities.User) error
	SetPassword(id uint, hash string) error
	DeleteByUsername(username string) (bool, error)
}
