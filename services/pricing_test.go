package services

import (
	"context"
	"math"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 83.8488

func testMetals() []entity.MetalType {
	return []entity.MetalType{
		withID(1, entity.MetalType{Name: "Sterling Silver", PriceModifier: 0}),
		withID(2, entity.MetalType{Name: "18k Gold", PriceModifier: 18}),
		withID(3, entity.MetalType{Name: "Platinum", PriceModifier: 35}),
	}
}

func testStones() []entity.StoneType {
	return []entity.StoneType{
		stoneWithID(1, entity.StoneType{Name: "Ruby", PriceModifier: 5000}),
		stoneWithID(2, entity.StoneType{Name: "Emerald", PriceModifier: 8000}),
		stoneWithID(3, entity.StoneType{Name: "Sapphire", PriceModifier: 6500}),
	}
}

func withID(id uint, m entity.MetalType) entity.MetalType {
	m.ID = id
	return m
}

func stoneWithID(id uint, s entity.StoneType) entity.StoneType {
	s.ID = id
	return s
}

func uintPtr(v uint) *uint { return &v }

func baseRequest() EstimateRequest {
	return EstimateRequest{
		OriginalPriceUSD:  1000,
		OriginalMetalName: "18k Gold",
		MetalWeightGrams:  8.5,
		MainStone:         StoneSlot{OriginalName: "Ruby", WeightCarats: 1.0},
		SecondaryStone:    StoneSlot{OriginalName: "Sapphire", WeightCarats: 0.5},
	}
}

func TestEstimateNoSubstitutionKeepsOriginalPrice(t *testing.T) {
	req := baseRequest()
	est := ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, int64(1000), est.PriceUSD)
	assert.Empty(t, est.Warnings)

	// selecting the originals explicitly is also a no-op
	req.SelectedMetalID = uintPtr(2)
	req.MainStone.SelectedID = uintPtr(1)
	req.SecondaryStone.SelectedID = uintPtr(3)
	est = ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, int64(1000), est.PriceUSD)
}

func TestEstimateMetalDelta(t *testing.T) {
	req := baseRequest()
	req.SelectedMetalID = uintPtr(3) // 18k Gold -> Platinum

	est := ComputeEstimate(req, testMetals(), testStones(), testRate)

	want := 1000 + 0.6*1000*((1.35/1.18)-1)
	assert.Equal(t, int64(math.Round(want)), est.PriceUSD)
	assert.Equal(t, int64(1086), est.PriceUSD)
	assert.Empty(t, est.Warnings)
}

func TestEstimateStoneDelta(t *testing.T) {
	req := baseRequest()
	req.MainStone.SelectedID = uintPtr(2) // Ruby -> Emerald, 1.0 ct

	est := ComputeEstimate(req, testMetals(), testStones(), testRate)

	want := 1000 + 1.0*(8000-5000)/testRate // ~1035.78
	assert.Equal(t, int64(math.Round(want)), est.PriceUSD)
	assert.Equal(t, int64(1036), est.PriceUSD)
}

func TestEstimateCombinedDeltas(t *testing.T) {
	req := baseRequest()
	req.SelectedMetalID = uintPtr(3)
	req.MainStone.SelectedID = uintPtr(2)
	req.SecondaryStone.SelectedID = uintPtr(1) // Sapphire -> Ruby, 0.5 ct (cheaper)

	est := ComputeEstimate(req, testMetals(), testStones(), testRate)

	want := 1000 +
		0.6*1000*((1.35/1.18)-1) +
		1.0*(8000-5000)/testRate +
		0.5*(5000-6500)/testRate
	assert.Equal(t, int64(math.Round(want)), est.PriceUSD)
}

func TestEstimateIsIdempotent(t *testing.T) {
	req := baseRequest()
	req.SelectedMetalID = uintPtr(3)
	req.MainStone.SelectedID = uintPtr(2)

	first := ComputeEstimate(req, testMetals(), testStones(), testRate)
	second := ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, first, second)
}

func TestEstimateZeroWeightSlotContributesNothing(t *testing.T) {
	req := baseRequest()
	req.OtherStone = StoneSlot{OriginalName: "Ruby", WeightCarats: 0, SelectedID: uintPtr(2)}

	est := ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, int64(1000), est.PriceUSD)
}

func TestEstimateUnmatchedOriginalMetal(t *testing.T) {
	req := baseRequest()
	req.OriginalMetalName = "Rose Gold" // renamed out of the catalog
	req.SelectedMetalID = uintPtr(3)

	est := ComputeEstimate(req, testMetals(), testStones(), testRate)

	// no metal delta regardless of the selection, but flagged
	assert.Equal(t, int64(1000), est.PriceUSD)
	require.Len(t, est.Warnings, 1)
	assert.Contains(t, est.Warnings[0], "Rose Gold")
}

func TestEstimateUnmatchedOriginalStone(t *testing.T) {
	req := baseRequest()
	req.MainStone.OriginalName = "Moisanite" // typo in the product row

	// no selection: the slot drops out entirely
	est := ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, int64(1000), est.PriceUSD)
	require.Len(t, est.Warnings, 1)

	// an explicit replacement is still priced even without an original match
	req.MainStone.SelectedID = uintPtr(2)
	est = ComputeEstimate(req, testMetals(), testStones(), testRate)
	want := 1000 + 1.0*8000/testRate
	assert.Equal(t, int64(math.Round(want)), est.PriceUSD)
}

func TestEstimateCaseInsensitiveMatching(t *testing.T) {
	req := baseRequest()
	req.OriginalMetalName = "18K GOLD"
	req.MainStone.OriginalName = "ruby"
	req.SelectedMetalID = uintPtr(3)

	est := ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, int64(1086), est.PriceUSD)
	assert.Empty(t, est.Warnings)
}

func TestEstimateFlooredAtZero(t *testing.T) {
	req := EstimateRequest{
		OriginalPriceUSD:  10,
		OriginalMetalName: "Sterling Silver",
		MainStone:         StoneSlot{OriginalName: "Emerald", WeightCarats: 5, SelectedID: uintPtr(1)},
	}
	// dropping 5 ct of emerald for ruby removes far more than $10
	est := ComputeEstimate(req, testMetals(), testStones(), testRate)
	assert.Equal(t, int64(0), est.PriceUSD)
}

func TestEstimateInvalidRateFallsBack(t *testing.T) {
	req := baseRequest()
	req.SelectedMetalID = uintPtr(3)

	est := ComputeEstimate(req, testMetals(), testStones(), 0)
	assert.Equal(t, int64(1000), est.PriceUSD)
	require.Len(t, est.Warnings, 1)
}

func TestEstimateForProductCatalogFailureFallsBackToListPrice(t *testing.T) {
	db := newTestDB(t)
	product := createPublishedProduct(t, db, "Aurelia Ring", 1000)

	// with the catalog table gone every estimate degrades to the list price
	require.NoError(t, db.Migrator().DropTable(&entity.MetalType{}))

	pricing := NewPricingService(repository.NewCatalogRepository(db, nil), testRate)
	platinumID := uint(1)
	est := pricing.EstimateForProduct(context.Background(), product, CustomizationSelection{MetalTypeID: &platinumID})

	assert.Equal(t, int64(1000), est.PriceUSD)
	require.Len(t, est.Warnings, 1)
	assert.Contains(t, est.Warnings[0], "showing list price")
}
