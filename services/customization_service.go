package services

import (
	"context"
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"
	"backend/utils"
)

type CustomizationService struct {
	Repo        *repository.CustomizationRepository
	ProductRepo *repository.ProductRepository
	Pricing     *PricingService
}

func NewCustomizationService(
	repo *repository.CustomizationRepository,
	productRepo *repository.ProductRepository,
	pricing *PricingService,
) *CustomizationService {
	return &CustomizationService{Repo: repo, ProductRepo: productRepo, Pricing: pricing}
}

// Submit re-runs the estimator server-side and persists the selection with the
// estimate snapshot. The client's displayed figure is never trusted.
func (s *CustomizationService) Submit(ctx context.Context, userID, productID uint, sel CustomizationSelection, remarks string) (*entity.CustomizationRequest, error) {
	if sel.MetalTypeID == nil && sel.MainStoneTypeID == nil &&
		sel.SecondaryStoneTypeID == nil && sel.OtherStoneTypeID == nil {
		return nil, errors.New("nothing customized")
	}

	p, err := s.ProductRepo.FindByID(productID)
	if err != nil {
		return nil, errors.New("product not found")
	}

	est := s.Pricing.EstimateForProduct(ctx, p, sel)

	req := &entity.CustomizationRequest{
		ReferenceNo:          utils.NewReferenceNo("CUS"),
		MetalTypeID:          sel.MetalTypeID,
		MainStoneTypeID:      sel.MainStoneTypeID,
		SecondaryStoneTypeID: sel.SecondaryStoneTypeID,
		OtherStoneTypeID:     sel.OtherStoneTypeID,
		EstimatedPriceUSD:    est.PriceUSD,
		EstimateWarnings:     strings.Join(est.Warnings, "\n"),
		Remarks:              remarks,
		ProductID:            productID,
		UserID:               userID,
	}
	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}
