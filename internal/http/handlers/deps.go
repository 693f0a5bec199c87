package handlers

import (
	"github.com/jmoiron/sqlx"

	"partsdepot/internal/repos"
	"partsdepot/internal/services"
)

type Deps struct {
	API *API
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	payRepo := repos.NewPaymentRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	checkoutSvc := services.NewCheckoutService(db, prodRepo, orderRepo, payRepo)

	return &Deps{
		API: &API{
			Products: &ProductHandler{Catalog: catalogSvc},
			Orders:   &OrderHandler{Svc: checkoutSvc, Repo: orderRepo},
		},
	}
}
