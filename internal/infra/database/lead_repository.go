package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/smartlead-sync/internal/entity"
)

const leadColumns = `id, campaign_id, email, first_name, last_name, company, phone,
	additional_fields, smartlead_id, status, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// InsertLead grava um lead novo. O ID é gerado aqui, no primeiro insert;
// status vazio vira "new".
func (r *LeadRepository) InsertLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	status := lead.Status
	if status == "" {
		status = entity.StatusNew
	}

	fields, err := marshalAdditionalFields(lead.AdditionalFields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode additional_fields: %w", err)
	}

	query := `
		INSERT INTO leads (id, campaign_id, email, first_name, last_name, company, phone,
			additional_fields, smartlead_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + leadColumns

	row := r.DB.QueryRowContext(
		ctx,
		query,
		uuid.New().String(),
		lead.CampaignID,
		lead.Email,
		nullString(lead.FirstName),
		nullString(lead.LastName),
		nullString(lead.Company),
		nullString(lead.Phone),
		fields,
		nullString(lead.SmartleadID),
		status,
		time.Now().UTC(),
	)

	stored, err := scanLead(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}
	return stored, nil
}

// GetLeadsForCampaign retorna todos os leads da campanha, em ordem de criação.
func (r *LeadRepository) GetLeadsForCampaign(ctx context.Context, campaignID string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE campaign_id = $1 ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve leads: %w", err)
		}
		leads = append(leads, *lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to retrieve leads: %w", err)
	}

	return leads, nil
}

// UpdateLeadStatus troca o status e carimba updated_at. Lead inexistente
// devolve nil sem erro.
func (r *LeadRepository) UpdateLeadStatus(ctx context.Context, leadID, status string) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + leadColumns

	row := r.DB.QueryRowContext(ctx, query, leadID, status, time.Now().UTC())

	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}
	return lead, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead        entity.Lead
		firstName   sql.NullString
		lastName    sql.NullString
		company     sql.NullString
		phone       sql.NullString
		fields      []byte
		smartleadID sql.NullString
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&lead.ID,
		&lead.CampaignID,
		&lead.Email,
		&firstName,
		&lastName,
		&company,
		&phone,
		&fields,
		&smartleadID,
		&lead.Status,
		&lead.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.FirstName = firstName.String
	lead.LastName = lastName.String
	lead.Company = company.String
	lead.Phone = phone.String
	lead.SmartleadID = smartleadID.String
	if updatedAt.Valid {
		t := updatedAt.Time
		lead.UpdatedAt = &t
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &lead.AdditionalFields); err != nil {
			return nil, fmt.Errorf("failed to decode additional_fields: %w", err)
		}
	}

	return &lead, nil
}

func marshalAdditionalFields(fields map[string]any) ([]byte, error) {
	if fields == nil {
		return nil, nil
	}
	return json.Marshal(fields)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
