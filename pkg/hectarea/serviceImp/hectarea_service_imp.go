package serviceImp

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cultivos/entities"
	"cultivos/pkg/apperr"
	"cultivos/pkg/harvest"
	repo "cultivos/pkg/hectarea/repository"
	"cultivos/pkg/hectarea/service"
)

type hectareaSvc struct {
	r     repo.HectareaRepository
	rules *harvest.Table
	log   *zap.Logger
}

func NewHectareaService(r repo.HectareaRepository, rules *harvest.Table, log *zap.Logger) service.HectareaService {
	return &hectareaSvc{r: r, rules: rules, log: log}
}

func invalid(err error) error { return fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err) }

func (s *hectareaSvc) Preview(in harvest.Input) (*entities.Hectarea, error) {
	h, err := s.rules.Calculate(in)
	if err != nil {
		return nil, invalid(err)
	}
	return h, nil
}

func (s *hectareaSvc) Register(in harvest.Input) (*entities.Hectarea, error) {
	if in.Number < 0 {
		return nil, invalid(fmt.Errorf("plot number must be positive, got %d", in.Number))
	}
	h, err := s.Preview(in)
	if err != nil {
		return nil, err
	}
	if h.Number == 0 {
		if h.Number, err = s.NextNumber(); err != nil {
			return nil, err
		}
	}
	if err := s.r.Create(h); err != nil {
		err = apperr.FromDB(err)
		if errors.Is(err, apperr.ErrDuplicate) {
			return nil, fmt.Errorf("plot %d: %w", h.Number, err)
		}
		return nil, fmt.Errorf("create plot %d: %w", h.Number, err)
	}
	s.log.Info("plot registered",
		zap.Int("number", h.Number),
		zap.String("crop_type", h.CropType),
		zap.String("first_harvest", h.FirstHarvest),
		zap.String("routine_harvest", h.RoutineHarvest))
	return h, nil
}

func (s *hectareaSvc) List() ([]entities.Hectarea, error) { return s.r.List() }

func (s *hectareaSvc) Get(number int) (*entities.Hectarea, error) {
	h, err := s.r.FindByNumber(number)
	if err != nil {
		return nil, fmt.Errorf("plot %d: %w", number, apperr.FromDB(err))
	}
	return h, nil
}

func (s *hectareaSvc) Update(number int, in service.UpdateInput) (*entities.Hectarea, error) {
	h, err := s.Get(number)
	if err != nil {
		return nil, err
	}
	for _, d := range []string{in.SowingDate, in.FirstHarvest, in.RoutineHarvest} {
		if _, err := harvest.ParseDate(d); err != nil {
			return nil, invalid(err)
		}
	}

	h.CropType = harvest.NormalizeCrop(in.CropType)
	h.SowingDate = strings.TrimSpace(in.SowingDate)
	h.FirstHarvest = strings.TrimSpace(in.FirstHarvest)
	h.RoutineHarvest = strings.TrimSpace(in.RoutineHarvest)
	h.SoilType = nil
	if soil := strings.TrimSpace(in.SoilType); soil != "" {
		h.SoilType = &soil
	}
	h.Temperature = harvest.ParseOptionalFloat(in.Temperature)

	if err := s.r.Update(h); err != nil {
		return nil, fmt.Errorf("update plot %d: %w", number, apperr.FromDB(err))
	}
	s.log.Info("plot updated", zap.Int("number", number))
	return h, nil
}

func (s *hectareaSvc) Delete(number int) error {
	ok, err := s.r.DeleteByNumber(number)
	if err != nil {
		return fmt.Errorf("delete plot %d: %w", number, err)
	}
	if !ok {
		return fmt.Errorf("plot %d: %w", number, apperr.ErrNotFound)
	}
	s.log.Info("plot deleted", zap.Int("number", number))
	return nil
}

// NextNumber is max(numero)+1, or 1 for an empty store.
func (s *hectareaSvc) NextNumber() (int, error) {
	n, err := s.r.MaxNumber()
	if err != nil {
		return 0, fmt.Errorf("next plot number: %w", err)
	}
	return n + 1, nil
}
