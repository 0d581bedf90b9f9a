package notify

import (
	"context"
	"errors"
	"time"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/repository"
	"github.com/teofils1/supply-chain/service/audit"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -rm -out service_mocks.go . IService

// ErrRuleNotFound is returned for rule mutations that matched no rule
// owned by the caller.
var ErrRuleNotFound = errors.New("notify: rule not found")

// ErrNotificationNotFound ...
var ErrNotificationNotFound = errors.New("notify: notification not found")

// ErrAlreadyAcknowledged ...
var ErrAlreadyAcknowledged = errors.New("notify: notification already acknowledged")

// ErrNotificationNotSent is returned when acknowledging a notification
// whose delivery is still pending or has failed.
var ErrNotificationNotSent = errors.New("notify: notification not sent")

// IService is the subscriber-facing side of the pipeline: rule
// preferences and notification acknowledgement.
type IService interface {
	CreateRule(ctx context.Context, input RuleInput) (uint64, error)
	UpdateRule(ctx context.Context, ruleID uint64, input RuleInput) error
	ToggleRule(ctx context.Context, ruleID uint64, ownerID uint64, enabled bool) error
	DeleteRule(ctx context.Context, ruleID uint64, ownerID uint64) error

	AcknowledgeNotification(ctx context.Context, logID uint64, recipientID uint64) error
}

// RuleInput ...
type RuleInput struct {
	OwnerID        uint64
	Name           string
	EventTypes     []string
	SeverityLevels []string
	Channels       []string
	Enabled        bool
}

// Service ...
type Service struct {
	provider  repository.Provider
	ruleRepo  repository.NotificationRule
	logRepo   repository.NotificationLog
	ruleCache *RuleCache

	nowFunc func() time.Time
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	ruleRepo repository.NotificationRule,
	logRepo repository.NotificationLog,
	ruleCache *RuleCache,
) *Service {
	return &Service{
		provider:  provider,
		ruleRepo:  ruleRepo,
		logRepo:   logRepo,
		ruleCache: ruleCache,

		nowFunc: func() time.Time { return time.Now().UTC() },
	}
}

func validateRuleInput(input RuleInput) error {
	if input.OwnerID == 0 {
		return &audit.MissingFieldError{Field: "owner_id"}
	}
	if input.Name == "" {
		return &audit.MissingFieldError{Field: "name"}
	}
	if len(input.Channels) == 0 {
		return &audit.MissingFieldError{Field: "channels"}
	}
	for _, channel := range input.Channels {
		if !model.Channel(channel).Valid() {
			return &audit.InvalidEnumError{Field: "channels", Value: channel}
		}
	}
	for _, eventType := range input.EventTypes {
		if !model.EventType(eventType).Valid() {
			return &audit.InvalidEnumError{Field: "event_types", Value: eventType}
		}
	}
	for _, severity := range input.SeverityLevels {
		if !model.Severity(severity).Valid() {
			return &audit.InvalidEnumError{Field: "severity_levels", Value: severity}
		}
	}
	return nil
}

func ruleFromInput(input RuleInput) model.NotificationRule {
	return model.NotificationRule{
		OwnerID:        input.OwnerID,
		Name:           input.Name,
		EventTypes:     model.JSONStrings(input.EventTypes),
		SeverityLevels: model.JSONStrings(input.SeverityLevels),
		Channels:       model.JSONStrings(input.Channels),
		Enabled:        input.Enabled,
	}
}

// CreateRule ...
func (s *Service) CreateRule(ctx context.Context, input RuleInput) (uint64, error) {
	if err := validateRuleInput(input); err != nil {
		return 0, err
	}

	var id uint64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.ruleRepo.InsertRule(ctx, ruleFromInput(input))
		return err
	})
	if err != nil {
		return 0, err
	}

	s.ruleCache.Invalidate()
	return id, nil
}

// UpdateRule replaces an owner's rule in place.
func (s *Service) UpdateRule(ctx context.Context, ruleID uint64, input RuleInput) error {
	if err := validateRuleInput(input); err != nil {
		return err
	}

	rule := ruleFromInput(input)
	rule.ID = ruleID

	var found bool
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		found, err = s.ruleRepo.UpdateRule(ctx, rule)
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrRuleNotFound
	}

	s.ruleCache.Invalidate()
	return nil
}

// ToggleRule ...
func (s *Service) ToggleRule(ctx context.Context, ruleID uint64, ownerID uint64, enabled bool) error {
	var found bool
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		found, err = s.ruleRepo.SetRuleEnabled(ctx, ruleID, ownerID, enabled)
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrRuleNotFound
	}

	s.ruleCache.Invalidate()
	return nil
}

// DeleteRule ...
func (s *Service) DeleteRule(ctx context.Context, ruleID uint64, ownerID uint64) error {
	var found bool
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		found, err = s.ruleRepo.DeleteRule(ctx, ruleID, ownerID)
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrRuleNotFound
	}

	s.ruleCache.Invalidate()
	return nil
}

// AcknowledgeNotification moves a sent notification to acknowledged
// for its recipient. Acknowledging twice is an error, not a no-op.
func (s *Service) AcknowledgeNotification(ctx context.Context, logID uint64, recipientID uint64) error {
	var done bool
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		done, err = s.logRepo.Acknowledge(ctx, logID, recipientID, s.nowFunc())
		return err
	})
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	// distinguish a missing log from a bad state transition
	readonlyCtx := s.provider.Readonly(ctx)
	nullLog, err := s.logRepo.GetLog(readonlyCtx, logID)
	if err != nil {
		return err
	}
	if !nullLog.Valid || nullLog.Log.RecipientID != recipientID {
		return ErrNotificationNotFound
	}
	if nullLog.Log.Status == model.NotificationStatusAcknowledged {
		return ErrAlreadyAcknowledged
	}
	return ErrNotificationNotSent
}
