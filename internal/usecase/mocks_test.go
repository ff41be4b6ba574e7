package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/smartlead-sync/internal/entity"
	"github.com/xavierca1/smartlead-sync/internal/infra/queue"
)

// MockPlatformGateway
type MockPlatformGateway struct {
	mock.Mock
}

func (m *MockPlatformGateway) CreateCampaign(ctx context.Context, campaignData map[string]any) (map[string]any, error) {
	args := m.Called(ctx, campaignData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockPlatformGateway) AddLeads(ctx context.Context, campaignID string, leads []map[string]any) (map[string]any, error) {
	args := m.Called(ctx, campaignID, leads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) InsertLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	args := m.Called(ctx, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetLeadsForCampaign(ctx context.Context, campaignID string) ([]entity.Lead, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateLeadStatus(ctx context.Context, leadID, status string) (*entity.Lead, error) {
	args := m.Called(ctx, leadID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockEventProducer
type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
