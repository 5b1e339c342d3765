package services

import (
	"blossom/internal/domain"
	"blossom/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Categories() []domain.Category {
	return domain.Categories
}

// ListProducts returns the storefront catalog, optionally filtered by
// category ("" or "all" means every category).
func (s *CatalogService) ListProducts(category string) ([]domain.Product, error) {
	if category == "" || category == "all" {
		return s.Prods.ListAvailable()
	}
	return s.Prods.ListByCategory(category)
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}
