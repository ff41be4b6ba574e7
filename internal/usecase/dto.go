package usecase

import "github.com/xavierca1/smartlead-sync/internal/entity"

type LeadInput struct {
	Email            string         `json:"email"`
	FirstName        string         `json:"first_name,omitempty"`
	LastName         string         `json:"last_name,omitempty"`
	Company          string         `json:"company,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	AdditionalFields map[string]any `json:"additional_fields,omitempty"`
}

// ToMap monta o payload que vai pro Smartlead, no mesmo formato do JSON
// de entrada. Campos vazios ficam de fora.
func (in LeadInput) ToMap() map[string]any {
	m := map[string]any{"email": in.Email}
	if in.FirstName != "" {
		m["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		m["last_name"] = in.LastName
	}
	if in.Company != "" {
		m["company"] = in.Company
	}
	if in.Phone != "" {
		m["phone"] = in.Phone
	}
	if in.AdditionalFields != nil {
		m["additional_fields"] = in.AdditionalFields
	}
	return m
}

func (in LeadInput) ToEntity(campaignID string) *entity.Lead {
	return &entity.Lead{
		CampaignID:       campaignID,
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Company:          in.Company,
		Phone:            in.Phone,
		AdditionalFields: in.AdditionalFields,
	}
}

type CampaignPerformance struct {
	CampaignID         string         `json:"campaign_id"`
	TotalLeads         int            `json:"total_leads"`
	LeadsInLast30Days  int            `json:"leads_in_last_30_days"`
	StatusDistribution map[string]int `json:"status_distribution"`
	ConversionRate     float64        `json:"conversion_rate"`
}
