package store

import "github.com/666amost/mitrabuana/models"

// SeedSampleData loads a small demo catalog when the product table is empty.
// It replaces the per-route mock data the storefront used to carry: the seed
// runs once at the boundary and every read path stays identical.
func (s *Store) SeedSampleData() error {
	var count int64
	if err := s.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	oli := models.Category{Name: "Oli Mesin", Slug: "oli-mesin"}
	sparepart := models.Category{Name: "Sparepart", Slug: "sparepart"}
	if err := s.DB.Create(&oli).Error; err != nil {
		return err
	}
	if err := s.DB.Create(&sparepart).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			ID:          "prod-oil-10w40",
			Name:        "Oli Mesin Sintetik 10W-40 1L",
			Description: "Oli mesin full-sintetik untuk motor harian, kemasan 1 liter.",
			Price:       85000,
			WeightGram:  920,
			LengthCm:    10, WidthCm: 6, HeightCm: 22,
			Stock:      40,
			Images:     models.StringSlice{"/uploads/products/sample-oil-10w40.jpg"},
			Categories: []models.Category{oli},
		},
		{
			ID:          "prod-oil-20w50",
			Name:        "Oli Mesin Mineral 20W-50 4L",
			Description: "Oli mineral untuk mesin tua, kemasan galon 4 liter.",
			Price:       210000,
			WeightGram:  3800,
			LengthCm:    18, WidthCm: 12, HeightCm: 28,
			Stock:      15,
			Images:     models.StringSlice{"/uploads/products/sample-oil-20w50.jpg"},
			Categories: []models.Category{oli},
		},
		{
			ID:          "prod-filter-oil",
			Name:        "Filter Oli Racing",
			Description: "Filter oli aftermarket dengan elemen kertas high-flow.",
			Price:       45000,
			WeightGram:  250,
			LengthCm:    8, WidthCm: 8, HeightCm: 9,
			Stock:      60,
			Images:     models.StringSlice{"/uploads/products/sample-filter.jpg"},
			Categories: []models.Category{sparepart},
		},
		{
			ID:          "prod-brakepad",
			Name:        "Kampas Rem Depan",
			Description: "Kampas rem semi-metalik, satu set roda depan.",
			Price:       95000,
			WeightGram:  400,
			Stock:      25,
			Images:     models.StringSlice{"/uploads/products/sample-brakepad.jpg"},
			Categories: []models.Category{sparepart},
		},
	}

	for i := range products {
		if err := s.DB.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
