package repository

import "cultivos/entities"

type HectareaRepository interface {
	Create(h *entities.Hectarea) error
	List() ([]entities.Hectarea, error)
	FindByNumber(number int) (*entities.Hectarea, error)
	Update(h *entities.Hectarea) error
	DeleteByNumber(number int) (bool, error)
	MaxNumber() (int, error)
}
