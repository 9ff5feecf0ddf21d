package repository

import "github.com/jhoicas/cmedia-api/internal/domain/entity"

// CatalogRepository lecturas de catálogo para la creación de planes.
type CatalogRepository interface {
	ListServiceTypes() ([]*entity.ServiceType, error)
	ListSLAs() ([]*entity.SLA, error)
}
