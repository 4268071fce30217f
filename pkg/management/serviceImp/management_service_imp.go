package serviceImp

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cultivos/entities"
	"cultivos/pkg/apperr"
	repo "cultivos/pkg/management/repository"
	"cultivos/pkg/management/service"
)

type managementSvc struct {
	r   repo.ManagementRepository
	log *zap.Logger
}

func NewManagementService(r repo.ManagementRepository, log *zap.Logger) service.ManagementService {
	return &managementSvc{r: r, log: log}
}

func validate(m *entities.CropManagement) error {
	if m.UserID == 0 || m.VegetableID == 0 || m.SoilID == 0 || m.ClimateID == 0 {
		return fmt.Errorf("%w: user, vegetable, soil and climate are required", apperr.ErrInvalidInput)
	}
	m.Video = strings.TrimSpace(m.Video)
	m.Notes = strings.TrimSpace(m.Notes)
	return nil
}

func (s *managementSvc) Report() ([]entities.CropManagementReport, error) {
	out, err := s.r.Report()
	if err != nil {
		return nil, fmt.Errorf("crop management report: %w", err)
	}
	return out, nil
}

func (s *managementSvc) List() ([]entities.CropManagement, error) {
	out, err := s.r.List()
	if err != nil {
		return nil, fmt.Errorf("list crop management: %w", err)
	}
	return out, nil
}

func (s *managementSvc) Get(code uint) (*entities.CropManagement, error) {
	m, err := s.r.FindByCode(code)
	if err != nil {
		return nil, fmt.Errorf("crop management %d: %w", code, apperr.FromDB(err))
	}
	return m, nil
}

func (s *managementSvc) Create(m *entities.CropManagement) (*entities.CropManagement, error) {
	if err := validate(m); err != nil {
		return nil, err
	}
	m.Code = 0
	if err := s.r.Create(m); err != nil {
		return nil, fmt.Errorf("create crop management: %w", err)
	}
	s.log.Info("crop management created", zap.Uint("code", m.Code), zap.Uint("user_id", m.UserID))
	return m, nil
}

func (s *managementSvc) Update(code uint, m *entities.CropManagement) (*entities.CropManagement, error) {
	if err := validate(m); err != nil {
		return nil, err
	}
	m.Code = code
	ok, err := s.r.Update(m)
	if err != nil {
		return nil, fmt.Errorf("update crop management %d: %w", code, err)
	}
	if !ok {
		return nil, fmt.Errorf("crop management %d: %w", code, apperr.ErrNotFound)
	}
	s.log.Info("crop management updated", zap.Uint("code", code))
	return m, nil
}

func (s *managementSvc) Delete(code uint) error {
	ok, err := s.r.Delete(code)
	if err != nil {
		return fmt.Errorf("delete crop management %d: %w", code, err)
	}
	if !ok {
		return fmt.Errorf("crop management %d: %w", code, apperr.ErrNotFound)
	}
	s.log.Info("crop management deleted", zap.Uint("code", code))
	return nil
}
