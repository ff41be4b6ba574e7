package entity

import (
	"context"
	"strings"
	"time"
)

// Lead is the local mirror of a contact pushed into a Smartlead campaign.
// The campaign itself lives in Smartlead; we only carry its ID as an
// opaque foreign reference.
type Lead struct {
	ID               string         `json:"id"`
	CampaignID       string         `json:"campaign_id"`
	Email            string         `json:"email"`
	FirstName        string         `json:"first_name,omitempty"`
	LastName         string         `json:"last_name,omitempty"`
	Company          string         `json:"company,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	AdditionalFields map[string]any `json:"additional_fields,omitempty"`
	SmartleadID      string         `json:"smartlead_id,omitempty"`
	Status           string         `json:"status"` // free text, default "new"
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
}

const StatusNew = "new"

// IsConversionStatus reports whether a status counts as a conversion.
// Every other value is opaque pass-through.
func IsConversionStatus(status string) bool {
	return strings.EqualFold(status, "converted") ||
		strings.EqualFold(status, "closed") ||
		strings.EqualFold(status, "won")
}

type LeadRepositoryInterface interface {
	InsertLead(ctx context.Context, lead *Lead) (*Lead, error)
	GetLeadsForCampaign(ctx context.Context, campaignID string) ([]Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID, status string) (*Lead, error)
}
