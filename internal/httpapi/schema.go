package httpapi

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/model"
	"gitlab.com/timkado/api/daisi-supportdesk/internal/storage"
)

// Envelope is the uniform pagination wrapper returned by every list endpoint.
type Envelope[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Skip    int   `json:"skip"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"has_more"`
}

// NewEnvelope wraps one page of items. HasMore holds exactly when rows
// beyond this page match the same filters.
func NewEnvelope[T any](items []T, total int64, page storage.Page) Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return Envelope[T]{
		Items:   items,
		Total:   total,
		Skip:    page.Skip,
		Limit:   page.Limit,
		HasMore: int64(page.Skip+len(items)) < total,
	}
}

// TenantResponse is the full public shape of a tenant.
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantSummary is the minimal tenant shape for embedding.
type TenantSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerResponse is the full public shape of a customer.
type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenant_id"`
	Platform       string    `json:"platform"`
	PlatformUserID string    `json:"platform_user_id"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustomerSummary is the minimal customer shape for embedding in threads.
type CustomerSummary struct {
	ID             uuid.UUID `json:"id"`
	Platform       string    `json:"platform"`
	PlatformUserID string    `json:"platform_user_id"`
}

// ThreadResponse is the full public shape of a thread, embedding the linked
// customer's summary when one is attached.
type ThreadResponse struct {
	ID               uuid.UUID        `json:"id"`
	TenantID         uuid.UUID        `json:"tenant_id"`
	Channel          string           `json:"channel"`
	PlatformThreadID string           `json:"platform_thread_id"`
	CustomerID       *uuid.UUID       `json:"customer_id,omitempty"`
	Status           string           `json:"status"`
	Labels           []string         `json:"labels"`
	Customer         *CustomerSummary `json:"customer,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ThreadSummary is the minimal thread shape for embedding in messages.
type ThreadSummary struct {
	ID               uuid.UUID `json:"id"`
	Channel          string    `json:"channel"`
	PlatformThreadID string    `json:"platform_thread_id"`
	Status           string    `json:"status"`
}

// MessageResponse is the full public shape of a message, embedding the
// parent thread's summary.
type MessageResponse struct {
	ID                uuid.UUID       `json:"id"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	ThreadID          uuid.UUID       `json:"thread_id"`
	PlatformMessageID *string         `json:"platform_message_id,omitempty"`
	Direction         string          `json:"direction"`
	Text              *string         `json:"text,omitempty"`
	Media             json.RawMessage `json:"media,omitempty"`
	Language          *string         `json:"language,omitempty"`
	Thread            *ThreadSummary  `json:"thread,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// EventResponse is the full public shape of an audit event.
type EventResponse struct {
	ID       uuid.UUID       `json:"id"`
	TenantID uuid.UUID       `json:"tenant_id"`
	ThreadID uuid.UUID       `json:"thread_id"`
	Type     string          `json:"type"`
	Meta     json.RawMessage `json:"meta,omitempty"`
	Ts       time.Time       `json:"ts"`
}

// LabelResponse is the full public shape of a label.
type LabelResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTenantResponse(t model.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func newCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		TenantID:       c.TenantID,
		Platform:       c.Platform,
		PlatformUserID: c.PlatformUserID,
		Phone:          c.Phone,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func newCustomerSummary(c *model.Customer) *CustomerSummary {
	if c == nil {
		return nil
	}
	return &CustomerSummary{
		ID:             c.ID,
		Platform:       c.Platform,
		PlatformUserID: c.PlatformUserID,
	}
}

func newThreadResponse(t model.Thread) ThreadResponse {
	return ThreadResponse{
		ID:               t.ID,
		TenantID:         t.TenantID,
		Channel:          t.Channel,
		PlatformThreadID: t.PlatformThreadID,
		CustomerID:       t.CustomerID,
		Status:           t.Status,
		Labels:           decodeLabels(t.Labels),
		Customer:         newCustomerSummary(t.Customer),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func newThreadSummary(t *model.Thread) *ThreadSummary {
	if t == nil {
		return nil
	}
	return &ThreadSummary{
		ID:               t.ID,
		Channel:          t.Channel,
		PlatformThreadID: t.PlatformThreadID,
		Status:           t.Status,
	}
}

func newMessageResponse(m model.Message) MessageResponse {
	return MessageResponse{
		ID:                m.ID,
		TenantID:          m.TenantID,
		ThreadID:          m.ThreadID,
		PlatformMessageID: m.PlatformMessageID,
		Direction:         m.Direction,
		Text:              m.Text,
		Media:             json.RawMessage(m.Media),
		Language:          m.Language,
		Thread:            newThreadSummary(m.Thread),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func newEventResponse(e model.Event) EventResponse {
	return EventResponse{
		ID:       e.ID,
		TenantID: e.TenantID,
		ThreadID: e.ThreadID,
		Type:     e.Type,
		Meta:     json.RawMessage(e.Meta),
		Ts:       e.Ts,
	}
}

func newLabelResponse(l model.Label) LabelResponse {
	return LabelResponse{
		ID:          l.ID,
		TenantID:    l.TenantID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// decodeLabels unpacks the JSONB label array. Unreadable or absent blobs
// render as an empty list rather than failing the response.
func decodeLabels(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil || labels == nil {
		return []string{}
	}
	return labels
}
