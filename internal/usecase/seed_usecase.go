package usecase

import "context"

// SeedResult reports what the fixture loader created or skipped.
type SeedResult struct {
	AdminCreated    bool `json:"admin_created"`
	CustomerCreated bool `json:"customer_created"`
	ProductsCreated int  `json:"products_created"`
}

// SeedUsecase loads demo fixtures. Safe to call repeatedly.
type SeedUsecase interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
