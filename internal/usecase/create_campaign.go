package usecase

import "context"

// CreateCampaignUseCase repassa o payload do caller pro Smartlead sem
// mexer em nada. Campanha não é persistida localmente.
type CreateCampaignUseCase struct {
	Gateway PlatformGateway
}

func NewCreateCampaignUseCase(gateway PlatformGateway) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{Gateway: gateway}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, campaignData map[string]any) (map[string]any, error) {
	return uc.Gateway.CreateCampaign(ctx, campaignData)
}
