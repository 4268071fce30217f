package service

import "cultivos/entities"

type ManagementService interface {
	Report() ([]entities.CropManagementReport, error)
	List() ([]entities.CropManagement, error)
	Get(code uint) (*entities.CropManagement, error)
	Create(m *entities.CropManagement) (*entities.CropManagement, error)
	Update(code uint, m *entities.CropManagement) (*entities.CropManagement, error)
	Delete(code uint) error
}
