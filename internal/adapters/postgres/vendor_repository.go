package postgres

import (
	"context"

	"github.com/streamlift/campaign-service/internal/domain"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

func (r *vendorRepository) ListActive(ctx context.Context) ([]domain.Vendor, error) {
	var rows []vendorModel
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Vendor, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainVendor(row))
	}
	return out, nil
}
