package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"backend/entity"
	"backend/repository"
)

// metalShareOfPrice is the assumed fraction of a piece's price attributable to
// its metal. The stored price bundles metal, stones and making charges without
// a breakdown, so metal substitutions scale this share rather than repricing
// from scratch.
const metalShareOfPrice = 0.6

// StoneSlot is one of a product's three stone positions: the original stone's
// catalog name, its weight in carats, and an optional replacement pick.
type StoneSlot struct {
	OriginalName string
	WeightCarats float64
	SelectedID   *uint
}

// EstimateRequest describes a product's original priced composition plus the
// customer's proposed substitutions. The estimate is always the original price
// plus per-component deltas; it never reprices from first principles, which
// keeps the admin-entered base price authoritative.
type EstimateRequest struct {
	OriginalPriceUSD  float64
	OriginalMetalName string
	MetalWeightGrams  float64 // kept for parity with the product schema; the metal delta is share-based

	MainStone      StoneSlot
	SecondaryStone StoneSlot
	OtherStone     StoneSlot

	SelectedMetalID *uint
}

// CustomizationSelection is the customer's transient choice: any field may be
// nil, meaning "keep the original".
type CustomizationSelection struct {
	MetalTypeID          *uint `json:"metalTypeId"`
	MainStoneTypeID      *uint `json:"mainStoneTypeId"`
	SecondaryStoneTypeID *uint `json:"secondaryStoneTypeId"`
	OtherStoneTypeID     *uint `json:"otherStoneTypeId"`
}

// Estimate is the recomputed price plus any data-quality warnings raised while
// matching the original composition against the catalogs.
type Estimate struct {
	PriceUSD int64    `json:"priceUSD"`
	Warnings []string `json:"warnings,omitempty"`
}

type PricingService struct {
	Catalog   *repository.CatalogRepository
	INRPerUSD float64
}

func NewPricingService(catalog *repository.CatalogRepository, inrPerUSD float64) *PricingService {
	return &PricingService{Catalog: catalog, INRPerUSD: inrPerUSD}
}

// EstimateForProduct runs the estimator against the live catalogs. Any failure
// to assemble the inputs degrades to the product's list price: an unmodified
// figure beats no figure on the customization form.
func (s *PricingService) EstimateForProduct(ctx context.Context, p *entity.Product, sel CustomizationSelection) Estimate {
	fallback := Estimate{
		PriceUSD: roundUSD(p.CalculatedPriceUSD),
		Warnings: []string{"estimate unavailable, showing list price"},
	}

	metals, err := s.Catalog.ListMetals(ctx)
	if err != nil {
		return fallback
	}
	stones, err := s.Catalog.ListStones(ctx)
	if err != nil {
		return fallback
	}

	req := EstimateRequest{
		OriginalPriceUSD:  p.CalculatedPriceUSD,
		OriginalMetalName: p.MetalType,
		MetalWeightGrams:  p.MetalWeight,
		MainStone:         StoneSlot{OriginalName: p.MainStoneType, WeightCarats: p.MainStoneWeight, SelectedID: sel.MainStoneTypeID},
		SecondaryStone:    StoneSlot{OriginalName: p.SecondaryStoneType, WeightCarats: p.SecondaryStoneWeight, SelectedID: sel.SecondaryStoneTypeID},
		OtherStone:        StoneSlot{OriginalName: p.OtherStoneType, WeightCarats: p.OtherStoneWeight, SelectedID: sel.OtherStoneTypeID},
		SelectedMetalID:   sel.MetalTypeID,
	}
	return ComputeEstimate(req, metals, stones, s.INRPerUSD)
}

// ComputeEstimate is the pure re-estimation: original price plus a metal delta
// plus the net stone delta. Unmatched catalog components contribute zero delta
// and are reported as warnings instead of silently absorbed. The result is
// rounded to whole USD and floored at zero.
func ComputeEstimate(req EstimateRequest, metals []entity.MetalType, stones []entity.StoneType, inrPerUSD float64) Estimate {
	var warnings []string
	if inrPerUSD <= 0 {
		return Estimate{
			PriceUSD: roundUSD(req.OriginalPriceUSD),
			Warnings: []string{"invalid exchange rate, showing list price"},
		}
	}

	// Metal: percentage-markup strategy. The delta rescales the metal's
	// share of the original price by the ratio of the two multipliers.
	metalDelta := 0.0
	origMetal := findMetalByName(metals, req.OriginalMetalName)
	if origMetal == nil {
		if req.OriginalMetalName != "" {
			warnings = append(warnings, fmt.Sprintf("original metal %q not in catalog", req.OriginalMetalName))
		}
	} else if req.SelectedMetalID != nil && *req.SelectedMetalID != origMetal.ID {
		if sel := findMetalByID(metals, *req.SelectedMetalID); sel != nil {
			origMult := 1 + origMetal.PriceModifier/100
			newMult := 1 + sel.PriceModifier/100
			metalDelta = metalShareOfPrice * req.OriginalPriceUSD * (newMult/origMult - 1)
		} else {
			warnings = append(warnings, fmt.Sprintf("selected metal id %d not in catalog", *req.SelectedMetalID))
		}
	}

	// Stones: per-carat strategy, each slot independent. Both totals use the
	// slot's original weight; a zero-weight slot contributes nothing either way.
	originalStoneTotal := 0.0
	newStoneTotal := 0.0
	for _, slot := range []StoneSlot{req.MainStone, req.SecondaryStone, req.OtherStone} {
		orig := findStoneByName(stones, slot.OriginalName)
		if orig == nil && slot.OriginalName != "" {
			warnings = append(warnings, fmt.Sprintf("original stone %q not in catalog", slot.OriginalName))
		}

		origContribution := 0.0
		if orig != nil && slot.WeightCarats > 0 {
			origContribution = slot.WeightCarats * orig.PriceModifier / inrPerUSD
		}

		newContribution := origContribution
		if slot.SelectedID != nil {
			if sel := findStoneByID(stones, *slot.SelectedID); sel != nil {
				newContribution = 0
				if slot.WeightCarats > 0 {
					newContribution = slot.WeightCarats * sel.PriceModifier / inrPerUSD
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("selected stone id %d not in catalog", *slot.SelectedID))
			}
		}

		originalStoneTotal += origContribution
		newStoneTotal += newContribution
	}

	total := req.OriginalPriceUSD + metalDelta + (newStoneTotal - originalStoneTotal)
	price := roundUSD(total)
	if price < 0 {
		price = 0
	}
	return Estimate{PriceUSD: price, Warnings: warnings}
}

func roundUSD(v float64) int64 {
	return int64(math.Round(v))
}

func findMetalByName(metals []entity.MetalType, name string) *entity.MetalType {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range metals {
		if strings.EqualFold(metals[i].Name, name) {
			return &metals[i]
		}
	}
	return nil
}

func findMetalByID(metals []entity.MetalType, id uint) *entity.MetalType {
	for i := range metals {
		if metals[i].ID == id {
			return &metals[i]
		}
	}
	return nil
}

func findStoneByName(stones []entity.StoneType, name string) *entity.StoneType {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range stones {
		if strings.EqualFold(stones[i].Name, name) {
			return &stones[i]
		}
	}
	return nil
}

func findStoneByID(stones []entity.StoneType, id uint) *entity.StoneType {
	for i := range stones {
		if stones[i].ID == id {
			return &stones[i]
		}
	}
	return nil
}
