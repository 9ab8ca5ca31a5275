// Package shipping quotes courier costs from a static rate card. Everything
// here is pure arithmetic so it can be unit-tested without any I/O.
package shipping

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrRateNotFound  = errors.New("shipping rate not found")
	ErrOverCapacity  = errors.New("billable weight exceeds service capacity")
	ErrInvalidParcel = errors.New("parcel weight must be positive")
)

// Dimensions is the parcel bounding box in centimeters.
type Dimensions struct {
	L float64 `json:"l"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RateCard prices one (courier, service) pair. MaxKg of zero means the
// service accepts any weight.
type RateCard struct {
	Courier     string `json:"courier"`
	Service     string `json:"service"`
	BaseKg      int    `json:"base_kg"`
	BasePrice   int64  `json:"base_price"`
	AddlKgPrice int64  `json:"addl_kg_price"`
	MaxKg       int    `json:"max_kg,omitempty"`
	// LeadTimeDays is the advertised [min, max] delivery window.
	LeadTimeDays [2]int `json:"lead_time_days"`
}

// DefaultRateCards is the static rate table quoted to customers.
var DefaultRateCards = []RateCard{
	{Courier: "JNE", Service: "REG", BaseKg: 1, BasePrice: 20000, AddlKgPrice: 8000, LeadTimeDays: [2]int{2, 4}},
	{Courier: "JNE", Service: "YES", BaseKg: 1, BasePrice: 38000, AddlKgPrice: 9000, LeadTimeDays: [2]int{1, 1}},
	{Courier: "SiCepat", Service: "REG", BaseKg: 1, BasePrice: 22000, AddlKgPrice: 8500, LeadTimeDays: [2]int{2, 3}},
}

// BillableWeightKg returns the greater of actual and volumetric weight,
// rounded up to whole kilograms with a 1 kg floor. The volumetric divisor
// is the industry-standard 6000 cm³/kg.
func BillableWeightKg(weightGram int, dims Dimensions) int {
	actualKg := int(math.Ceil(float64(weightGram) / 1000))
	if actualKg < 1 {
		actualKg = 1
	}
	volumetricKg := int(math.Ceil(dims.L * dims.W * dims.H / 6000))
	if volumetricKg < 1 {
		volumetricKg = 1
	}
	if volumetricKg > actualKg {
		return volumetricKg
	}
	return actualKg
}

// Cost prices a parcel against one rate card.
func Cost(weightGram int, dims Dimensions, rate RateCard) (int64, error) {
	if weightGram < 1 {
		return 0, ErrInvalidParcel
	}
	billableKg := BillableWeightKg(weightGram, dims)
	if rate.MaxKg > 0 && billableKg > rate.MaxKg {
		return 0, fmt.Errorf("%w: %d kg over %s %s limit of %d kg",
			ErrOverCapacity, billableKg, rate.Courier, rate.Service, rate.MaxKg)
	}
	if billableKg <= rate.BaseKg {
		return rate.BasePrice, nil
	}
	return rate.BasePrice + int64(billableKg-rate.BaseKg)*rate.AddlKgPrice, nil
}

// Quote is the result of an estimate: the cost, the weight it was billed at,
// and the rate card that produced it.
type Quote struct {
	Cost             int64    `json:"cost"`
	BillableWeightKg int      `json:"billable_weight_kg"`
	Rate             RateCard `json:"rate"`
}

// Estimate looks up the (courier, service) rate card and prices the parcel.
// Pass nil cards to use DefaultRateCards.
func Estimate(weightGram int, dims Dimensions, courier, service string, cards []RateCard) (Quote, error) {
	if cards == nil {
		cards = DefaultRateCards
	}
	for _, rate := range cards {
		if rate.Courier != courier || rate.Service != service {
			continue
		}
		cost, err := Cost(weightGram, dims, rate)
		if err != nil {
			return Quote{}, err
		}
		return Quote{
			Cost:             cost,
			BillableWeightKg: BillableWeightKg(weightGram, dims),
			Rate:             rate,
		}, nil
	}
	return Quote{}, fmt.Errorf("%w: %s %s", ErrRateNotFound, courier, service)
}
