package inquiries

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for inquiry storage
type Repository interface {
	Create(ctx context.Context, req *CreateInquiryRequest) (*Inquiry, error)
	GetByID(ctx context.Context, id string) (*Inquiry, error)
}

// InMemoryRepository holds inquiries in memory for the lifetime of the process
type InMemoryRepository struct {
	mu        sync.RWMutex
	inquiries map[string]*Inquiry
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		inquiries: make(map[string]*Inquiry),
	}
}

// Create stores a new inquiry
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateInquiryRequest) (*Inquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inquiry := &Inquiry{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.inquiries[inquiry.ID] = inquiry
	r.mu.Unlock()

	return inquiry, nil
}

// GetByID retrieves an inquiry by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inquiry, ok := r.inquiries[id]
	if !ok {
		return nil, ErrInquiryNotFound
	}

	return inquiry, nil
}
