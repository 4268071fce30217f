package repository

import "cultivos/entities"

type ManagementRepository interface {
	Report() ([]entities.CropManagementReport, error)
	List() ([]entities.CropManagement, error)
	FindByCode(code uint) (*entities.CropManagement, error)
	Create(m *entities.CropManagement) error
	Update(m *entities.CropManagement) (bool, error)
	Delete(code uint) (bool, error)
}
