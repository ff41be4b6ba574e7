package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stubRow devolve uma linha fixa, como o driver devolveria.
type stubRow struct {
	values []any
}

func (s *stubRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = s.values[i].(string)
		case *[]byte:
			if s.values[i] != nil {
				*v = s.values[i].([]byte)
			}
		case *time.Time:
			*v = s.values[i].(time.Time)
		default:
			// sql.NullString / sql.NullTime
			if scanner, ok := d.(interface{ Scan(any) error }); ok {
				if err := scanner.Scan(s.values[i]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func TestScanLeadRoundTripsAdditionalFields(t *testing.T) {
	fields, err := marshalAdditionalFields(map[string]any{"source": "website"})
	assert.NoError(t, err)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	row := &stubRow{values: []any{
		"lead-1", "camp-1", "ana@example.com",
		"Ana", nil, nil, nil,
		fields,
		nil, "new", created, nil,
	}}

	lead, err := scanLead(row)

	assert.NoError(t, err)
	assert.Equal(t, "lead-1", lead.ID)
	assert.Equal(t, "camp-1", lead.CampaignID)
	assert.Equal(t, "Ana", lead.FirstName)
	assert.Empty(t, lead.LastName)
	assert.Equal(t, map[string]any{"source": "website"}, lead.AdditionalFields)
	assert.Nil(t, lead.UpdatedAt)
}

func TestScanLeadWithoutAdditionalFields(t *testing.T) {
	updated := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	row := &stubRow{values: []any{
		"lead-2", "camp-1", "bruno@example.com",
		nil, nil, nil, nil,
		nil,
		"sl-99", "replied", time.Now().UTC(), updated,
	}}

	lead, err := scanLead(row)

	assert.NoError(t, err)
	assert.Nil(t, lead.AdditionalFields)
	assert.Equal(t, "sl-99", lead.SmartleadID)
	assert.NotNil(t, lead.UpdatedAt)
	assert.Equal(t, updated, *lead.UpdatedAt)
}

func TestMarshalAdditionalFieldsNilStaysNil(t *testing.T) {
	b, err := marshalAdditionalFields(nil)
	assert.NoError(t, err)
	assert.Nil(t, b)
}
