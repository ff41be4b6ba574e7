package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNotifier struct {
	calls []string
}

func (f *fakeNotifier) SendConversionAlert(to, leadID, leadEmail, campaignID, status string) error {
	f.calls = append(f.calls, leadID+":"+status)
	return nil
}

func TestWorkerNotifiesOnConversion(t *testing.T) {
	notifier := &fakeNotifier{}
	w := NewWorker(nil, notifier, "vendas@example.com")

	err := w.processEvent(NewLeadEvent(EventLeadStatusChanged, "lead-1", "camp-1", "ana@example.com", "Won"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"lead-1:Won"}, notifier.calls)
}

func TestWorkerIgnoresNonConversionStatus(t *testing.T) {
	notifier := &fakeNotifier{}
	w := NewWorker(nil, notifier, "vendas@example.com")

	assert.NoError(t, w.processEvent(NewLeadEvent(EventLeadStatusChanged, "lead-1", "camp-1", "ana@example.com", "replied")))
	assert.NoError(t, w.processEvent(NewLeadEvent(EventLeadCaptured, "lead-2", "camp-1", "bruno@example.com", "new")))
	assert.Empty(t, notifier.calls)
}

func TestWorkerWithoutNotifierConfigured(t *testing.T) {
	w := NewWorker(nil, nil, "")

	assert.NoError(t, w.processEvent(NewLeadEvent(EventLeadStatusChanged, "lead-1", "camp-1", "ana@example.com", "converted")))
}
