package model

import (
	"encoding/json"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gitlab.com/timkado/api/daisi-supportdesk/pkg/utils"
)

// RandomJSONB generates random JSON data for testing.
func RandomJSONB() datatypes.JSON {
	jsonData := map[string]interface{}{
		"key": gofakeit.Word(),
		"num": gofakeit.Number(1, 100),
	}
	bytes, _ := json.Marshal(jsonData)
	return datatypes.JSON(bytes)
}

// JSONBMap builds JSONB from a map for testing.
func JSONBMap(data map[string]interface{}) datatypes.JSON {
	bytes, _ := json.Marshal(data)
	return datatypes.JSON(bytes)
}

// init ensures gofakeit is seeded.
func init() {
	gofakeit.Seed(time.Now().UnixNano())
}

// NewTenant creates a Tenant with fake data, applying any override.
func NewTenant(overrideDefaults ...*Tenant) *Tenant {
	base := &Tenant{
		ID:        uuid.New(),
		Name:      gofakeit.Company(),
		CreatedAt: utils.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Hour),
		UpdatedAt: utils.Now(),
	}
	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != uuid.Nil {
			base.ID = ovr.ID
		}
		if ovr.Name != "" {
			base.Name = ovr.Name
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
		if !ovr.UpdatedAt.IsZero() {
			base.UpdatedAt = ovr.UpdatedAt
		}
	}
	return base
}

// NewCustomer creates a Customer with fake data, applying any override.
func NewCustomer(overrideDefaults ...*Customer) *Customer {
	phone := gofakeit.Phone()
	email := gofakeit.Email()
	base := &Customer{
		ID:             uuid.New(),
		TenantID:       uuid.New(),
		Platform:       gofakeit.RandomString([]string{ChannelWhatsApp, ChannelInstagram, ChannelFacebook}),
		PlatformUserID: gofakeit.UUID(),
		Phone:          &phone,
		Email:          &email,
		CreatedAt:      utils.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Hour),
		UpdatedAt:      utils.Now(),
	}
	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != uuid.Nil {
			base.ID = ovr.ID
		}
		if ovr.TenantID != uuid.Nil {
			base.TenantID = ovr.TenantID
		}
		if ovr.Platform != "" {
			base.Platform = ovr.Platform
		}
		if ovr.PlatformUserID != "" {
			base.PlatformUserID = ovr.PlatformUserID
		}
		if ovr.Phone != nil {
			base.Phone = ovr.Phone
		}
		if ovr.Email != nil {
			base.Email = ovr.Email
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
		if !ovr.UpdatedAt.IsZero() {
			base.UpdatedAt = ovr.UpdatedAt
		}
	}
	return base
}

// NewThread creates a Thread with fake data, applying any override.
func NewThread(overrideDefaults ...*Thread) *Thread {
	customerID := uuid.New()
	base := &Thread{
		ID:               uuid.New(),
		TenantID:         uuid.New(),
		Channel:          gofakeit.RandomString([]string{ChannelWhatsApp, ChannelInstagram, ChannelFacebook}),
		PlatformThreadID: gofakeit.UUID(),
		CustomerID:       &customerID,
		Status:           gofakeit.RandomString([]string{ThreadStatusOpen, ThreadStatusPaused, ThreadStatusClosed}),
		Labels:           datatypes.JSON(utils.MustMarshalJSON([]string{gofakeit.Word()})),
		CreatedAt:        utils.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Hour),
		UpdatedAt:        utils.Now(),
	}
	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != uuid.Nil {
			base.ID = ovr.ID
		}
		if ovr.TenantID != uuid.Nil {
			base.TenantID = ovr.TenantID
		}
		if ovr.Channel != "" {
			base.Channel = ovr.Channel
		}
		if ovr.PlatformThreadID != "" {
			base.PlatformThreadID = ovr.PlatformThreadID
		}
		if ovr.CustomerID != nil {
			base.CustomerID = ovr.CustomerID
		}
		if ovr.Status != "" {
			base.Status = ovr.Status
		}
		if ovr.Labels != nil {
			base.Labels = ovr.Labels
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
		if !ovr.UpdatedAt.IsZero() {
			base.UpdatedAt = ovr.UpdatedAt
		}
	}
	return base
}

// NewMessage creates a Message with fake data, applying any override.
func NewMessage(overrideDefaults ...*Message) *Message {
	platformMessageID := gofakeit.UUID()
	text := gofakeit.Sentence(8)
	language := "en"
	base := &Message{
		ID:                uuid.New(),
		TenantID:          uuid.New(),
		ThreadID:          uuid.New(),
		PlatformMessageID: &platformMessageID,
		Direction:         gofakeit.RandomString([]string{DirectionInbound, DirectionOutbound}),
		Text:              &text,
		Media:             RandomJSONB(),
		Language:          &language,
		CreatedAt:         utils.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Hour),
		UpdatedAt:         utils.Now(),
	}
	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != uuid.Nil {
			base.ID = ovr.ID
		}
		if ovr.TenantID != uuid.Nil {
			base.TenantID = ovr.TenantID
		}
		if ovr.ThreadID != uuid.Nil {
			base.ThreadID = ovr.ThreadID
		}
		if ovr.PlatformMessageID != nil {
			base.PlatformMessageID = ovr.PlatformMessageID
		}
		if ovr.Direction != "" {
			base.Direction = ovr.Direction
		}
		if ovr.Text != nil {
			base.Text = ovr.Text
		}
		if ovr.Media != nil {
			base.Media = ovr.Media
		}
		if ovr.Language != nil {
			base.Language = ovr.Language
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
		if !ovr.UpdatedAt.IsZero() {
			base.UpdatedAt = ovr.UpdatedAt
		}
	}
	return base
}

// NewEvent creates an Event with fake data, applying any override.
func NewEvent(overrideDefaults ...*Event) *Event {
	base := &Event{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		ThreadID: uuid.New(),
		Type: gofakeit.RandomString([]string{
			EventAckSent, EventDebounceStart, EventDebounceEnd,
			EventAnswerSent, EventClarifySent, EventNeedsReviewCreated, EventUrgentFlagged,
		}),
		Meta: RandomJSONB(),
		Ts:   utils.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Minute),
	}
	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != uuid.Nil {
			base.ID = ovr.ID
		}
		if ovr.TenantID != uuid.Nil {
			base.TenantID = ovr.TenantID
		}
		if ovr.ThreadID != uuid.Nil {
			base.ThreadID = ovr.ThreadID
		}
		if ovr.Type != "" {
			base.Type = ovr.Type
		}
		if ovr.Meta != nil {
			base.Meta = ovr.Meta
		}
		if !ovr.Ts.IsZero() {
			base.Ts = ovr.Ts
		}
	}
	return base
}

// NewLabel creates a Label with fake data, applying any override.
func NewLabel(overrideDefaults ...*Label) *Label {
	description := gofakeit.Sentence(4)
	base := &Label{
		ID:          uuid.New(),
		TenantID:    uuid.New(),
		Name:        gofakeit.Word(),
		Description: &description,
		CreatedAt:   utils.Now().Add(-time.Duration(gofakeit.Number(1, 100)) * time.Hour),
		UpdatedAt:   utils.Now(),
	}
	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != uuid.Nil {
			base.ID = ovr.ID
		}
		if ovr.TenantID != uuid.Nil {
			base.TenantID = ovr.TenantID
		}
		if ovr.Name != "" {
			base.Name = ovr.Name
		}
		if ovr.Description != nil {
			base.Description = ovr.Description
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
		if !ovr.UpdatedAt.IsZero() {
			base.UpdatedAt = ovr.UpdatedAt
		}
	}
	return base
}
