package service

// Kinds exposed over HTTP and the CLI.
const (
	KindSoil      = "soil"
	KindClimate   = "climate"
	KindVegetable = "vegetable"
	KindCrop      = "crop"
)

// Option is the id+name pair used to fill selection lists.
type Option struct {
	Key  uint   `json:"key"`
	Name string `json:"name"`
}

type CatalogService[T any] interface {
	Kind() string
	List() ([]T, error)
	Options() ([]Option, error)
	Get(key uint) (*T, error)
	Search(fragment string) ([]T, error)
	Create(e *T) (*T, error)
	Update(key uint, e *T) (*T, error)
	Delete(key uint) error
}
