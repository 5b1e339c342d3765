package handlers

import (
	"blossom/internal/config"
	"blossom/internal/repos"
	"blossom/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	DeliveryHandler *DeliveryHandler
	ProductAPI      *ProductAPIHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	deliverySvc := services.NewDeliveryService()

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc, Delivery: deliverySvc},
		DeliveryHandler: &DeliveryHandler{Delivery: deliverySvc},
		ProductAPI:      &ProductAPIHandler{Repo: prodRepo, SecretHash: cfg.AdminSecretHash},
	}
}
