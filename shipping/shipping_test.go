package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustRate(t *testing.T, courier, service string) RateCard {
	t.Helper()
	for _, rate := range DefaultRateCards {
		if rate.Courier == courier && rate.Service == service {
			return rate
		}
	}
	t.Fatalf("rate %s %s missing from default cards", courier, service)
	return RateCard{}
}

func TestBillableWeightFloorsAtOneKg(t *testing.T) {
	assert.Equal(t, 1, BillableWeightKg(1, Dimensions{}))
	assert.Equal(t, 1, BillableWeightKg(920, Dimensions{L: 10, W: 10, H: 5}))
	assert.Equal(t, 1, BillableWeightKg(1000, Dimensions{}))
}

func TestBillableWeightRoundsUp(t *testing.T) {
	assert.Equal(t, 3, BillableWeightKg(2500, Dimensions{}))
	assert.Equal(t, 2, BillableWeightKg(1001, Dimensions{}))
}

func TestBillableWeightUsesVolumetricWhenBulky(t *testing.T) {
	// 40x40x30 cm = 48000 cm³ → 8 kg volumetric, outweighs 1.2 kg actual
	assert.Equal(t, 8, BillableWeightKg(1200, Dimensions{L: 40, W: 40, H: 30}))
}

func TestCostAtBaseTier(t *testing.T) {
	rate := mustRate(t, "JNE", "REG")
	cost, err := Cost(920, Dimensions{L: 10, W: 10, H: 5}, rate)
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), cost)
}

func TestCostWithAdditionalKilograms(t *testing.T) {
	rate := mustRate(t, "JNE", "REG")
	// 2500 g → 3 kg billable → base + 2 × addl
	cost, err := Cost(2500, Dimensions{}, rate)
	assert.NoError(t, err)
	assert.Equal(t, rate.BasePrice+2*rate.AddlKgPrice, cost)
}

func TestCostRejectsOverCapacity(t *testing.T) {
	rate := RateCard{Courier: "JNE", Service: "TRUCK", BaseKg: 1, BasePrice: 50000, AddlKgPrice: 5000, MaxKg: 5}
	_, err := Cost(7200, Dimensions{}, rate)
	assert.ErrorIs(t, err, ErrOverCapacity)
}

func TestCostRejectsNonPositiveWeight(t *testing.T) {
	rate := mustRate(t, "JNE", "REG")
	_, err := Cost(0, Dimensions{}, rate)
	assert.ErrorIs(t, err, ErrInvalidParcel)
}

func TestCostMonotoneInWeight(t *testing.T) {
	rate := mustRate(t, "SiCepat", "REG")
	var prev int64
	for grams := 100; grams <= 20000; grams += 377 {
		cost, err := Cost(grams, Dimensions{L: 20, W: 15, H: 10}, rate)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, cost, prev, "cost decreased at %d g", grams)
		prev = cost
	}
}

func TestEstimateFindsRate(t *testing.T) {
	quote, err := Estimate(2500, Dimensions{}, "JNE", "YES", nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, quote.BillableWeightKg)
	assert.Equal(t, int64(38000+2*9000), quote.Cost)
	assert.Equal(t, "YES", quote.Rate.Service)
}

func TestEstimateUnknownRate(t *testing.T) {
	_, err := Estimate(1000, Dimensions{}, "JNE", "OKE", nil)
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestEstimateCustomCards(t *testing.T) {
	cards := []RateCard{{Courier: "AnterAja", Service: "SameDay", BaseKg: 1, BasePrice: 30000, AddlKgPrice: 10000}}
	quote, err := Estimate(500, Dimensions{}, "AnterAja", "SameDay", cards)
	assert.NoError(t, err)
	assert.Equal(t, int64(30000), quote.Cost)
}
