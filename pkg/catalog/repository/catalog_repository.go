package repository

// CatalogRepository is shared by every reference-data table. Mutations
// report whether a row with the given key existed.
type CatalogRepository[T any] interface {
	List() ([]T, error)
	FindByKey(key uint) (*T, error)
	SearchByName(fragment string) ([]T, error)
	Create(e *T) error
	Update(key uint, e *T) (bool, error)
	Delete(key uint) (bool, error)
	Count() (int64, error)
}
