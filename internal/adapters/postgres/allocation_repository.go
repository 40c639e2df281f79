package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamlift/campaign-service/internal/ports"
	"gorm.io/gorm"
)

type allocationRepository struct {
	db *gorm.DB
}

func (r *allocationRepository) ReplaceForCampaign(ctx context.Context, params ports.CommitAllocationsParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", params.CampaignID).Delete(&campaignAllocationModel{}).Error; err != nil {
			return err
		}
		rows := make([]campaignAllocationModel, 0, len(params.Items))
		for _, item := range params.Items {
			rows = append(rows, campaignAllocationModel{
				CampaignID:   params.CampaignID,
				PlaylistID:   item.PlaylistID,
				VendorID:     item.VendorID,
				Allocation:   item.Allocation,
				DurationDays: params.DurationDays,
				CommittedAt:  params.CommittedAt,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *allocationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]ports.CommittedAllocation, error) {
	var rows []campaignAllocationModel
	if err := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).Order("allocation desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.CommittedAllocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCommittedAllocation(row))
	}
	return out, nil
}
