package store

import (
	"context"
	"sync"

	"github.com/arunteja30/griya-Ecom-sub001/pkg/models"
)

// MemoryStore is an in-process implementation of TokenStore, OrderStore and
// EventQueue used for tests and credential-less local runs.
type MemoryStore struct {
	sync.Mutex
	tokens map[string]string
	orders map[string]*models.OrderRecord
	events []*models.AssignmentEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]string),
		orders: make(map[string]*models.OrderRecord),
		events: make([]*models.AssignmentEvent, 0, 1024),
	}
}

func (m *MemoryStore) SetToken(riderID, token string) {
	m.Lock()
	defer m.Unlock()
	m.tokens[riderID] = token
}

func (m *MemoryStore) Token(ctx context.Context, riderID string) (string, error) {
	m.Lock()
	defer m.Unlock()
	return m.tokens[riderID], nil
}

func (m *MemoryStore) PutOrder(order *models.OrderRecord) {
	m.Lock()
	defer m.Unlock()
	m.orders[order.ID] = order
}

func (m *MemoryStore) Order(ctx context.Context, orderKey string) (*models.OrderRecord, error) {
	m.Lock()
	defer m.Unlock()
	return m.orders[orderKey], nil
}

func (m *MemoryStore) Enqueue(ctx context.Context, evt *models.AssignmentEvent) error {
	m.Lock()
	defer m.Unlock()
	m.events = append(m.events, evt)
	return nil
}

func (m *MemoryStore) DequeueBatch(ctx context.Context, batchSize int) ([]*models.AssignmentEvent, error) {
	m.Lock()
	defer m.Unlock()
	if len(m.events) == 0 {
		return nil, nil
	}
	if len(m.events) < batchSize {
		batchSize = len(m.events)
	}
	batch := m.events[:batchSize]
	m.events = m.events[batchSize:]
	return batch, nil
}
