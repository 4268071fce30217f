package serviceImp

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cultivos/entities"
	"cultivos/pkg/apperr"
	repo "cultivos/pkg/catalog/repository"
	"cultivos/pkg/catalog/service"
	"cultivos/pkg/harvest"
)

type catalogSvc[T any, P entities.CatalogPtr[T]] struct {
	kind string
	r    repo.CatalogRepository[T]
	log  *zap.Logger
}

func New[T any, P entities.CatalogPtr[T]](kind string, r repo.CatalogRepository[T], log *zap.Logger) service.CatalogService[T] {
	return &catalogSvc[T, P]{kind: kind, r: r, log: log.With(zap.String("catalog", kind))}
}

func (s *catalogSvc[T, P]) Kind() string { return s.kind }

func (s *catalogSvc[T, P]) List() ([]T, error) {
	out, err := s.r.List()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return out, nil
}

func (s *catalogSvc[T, P]) Options() ([]service.Option, error) {
	rows, err := s.List()
	if err != nil {
		return nil, err
	}
	opts := make([]service.Option, 0, len(rows))
	for i := range rows {
		p := P(&rows[i])
		opts = append(opts, service.Option{Key: p.Key(), Name: p.Label()})
	}
	return opts, nil
}

func (s *catalogSvc[T, P]) Get(key uint) (*T, error) {
	e, err := s.r.FindByKey(key)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", s.kind, key, apperr.FromDB(err))
	}
	return e, nil
}

func (s *catalogSvc[T, P]) Search(fragment string) ([]T, error) {
	out, err := s.r.SearchByName(strings.TrimSpace(fragment))
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", s.kind, err)
	}
	return out, nil
}

func (s *catalogSvc[T, P]) validate(e *T) error {
	if strings.TrimSpace(P(e).Label()) == "" {
		return fmt.Errorf("%w: %s name is required", apperr.ErrInvalidInput, s.kind)
	}
	return nil
}

func (s *catalogSvc[T, P]) Create(e *T) (*T, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}
	P(e).SetKey(0)
	if err := s.r.Create(e); err != nil {
		return nil, s.writeErr(e, err)
	}
	s.log.Info("catalog entry created", zap.Uint("key", P(e).Key()), zap.String("name", P(e).Label()))
	return e, nil
}

func (s *catalogSvc[T, P]) Update(key uint, e *T) (*T, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}
	ok, err := s.r.Update(key, e)
	if err != nil {
		return nil, s.writeErr(e, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", s.kind, key, apperr.ErrNotFound)
	}
	s.log.Info("catalog entry updated", zap.Uint("key", key))
	return e, nil
}

// Delete leaves rows that reference key untouched.
func (s *catalogSvc[T, P]) Delete(key uint) error {
	ok, err := s.r.Delete(key)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", s.kind, key, err)
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", s.kind, key, apperr.ErrNotFound)
	}
	s.log.Info("catalog entry deleted", zap.Uint("key", key))
	return nil
}

func (s *catalogSvc[T, P]) writeErr(e *T, err error) error {
	err = apperr.FromDB(err)
	if errors.Is(err, apperr.ErrDuplicate) {
		return fmt.Errorf("%s %q: %w", s.kind, P(e).Label(), err)
	}
	return fmt.Errorf("save %s: %w", s.kind, err)
}

// BuiltinCrops is what CropNames offers while the crop catalog is empty.
var BuiltinCrops = []string{harvest.CropCitrus, harvest.CropMaize, harvest.CropWheat, harvest.CropTomato}

// CropNames lists the crop catalog names for plot forms.
func CropNames(crops service.CatalogService[entities.CropType]) ([]string, error) {
	rows, err := crops.List()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return append([]string(nil), BuiltinCrops...), nil
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names, nil
}
