package queries

import (
	"context"

	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/domain/entities"
	"github.com/rlopezl29/proyectofinal/contexts/balloting/campaign-service/ports"
)

type CampaignQueryUseCase struct {
	Campaigns ports.CampaignRepository
}

func (uc CampaignQueryUseCase) GetCampaign(ctx context.Context, campaignID int64) (entities.Campaign, error) {
	return uc.Campaigns.GetCampaign(ctx, campaignID)
}

// ListCampaigns returns campaigns in creation order.
func (uc CampaignQueryUseCase) ListCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	return uc.Campaigns.ListCampaigns(ctx)
}
