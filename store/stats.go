package store

import "github.com/666amost/mitrabuana/models"

// DashboardStats backs the admin landing page.
type DashboardStats struct {
	ProductCount   int64                        `json:"product_count"`
	OrderCount     int64                        `json:"order_count"`
	OrdersByStatus map[models.OrderStatus]int64 `json:"orders_by_status"`
	// Revenue sums the total of orders that have moved past payment.
	Revenue int64 `json:"revenue"`
}

func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{OrdersByStatus: map[models.OrderStatus]int64{}}

	if err := s.DB.Model(&models.Product{}).Count(&stats.ProductCount).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Order{}).Count(&stats.OrderCount).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status models.OrderStatus
		Count  int64
	}
	if err := s.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	var revenue struct{ Total int64 }
	if err := s.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) as total").
		Where("status IN ?", []models.OrderStatus{
			models.OrderStatusPaid,
			models.OrderStatusShipped,
			models.OrderStatusDelivered,
		}).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.Revenue = revenue.Total

	return stats, nil
}
