package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/repository"
	"github.com/teofils1/supply-chain/service/audit"
)

type serviceTest struct {
	provider *repository.ProviderMock
	ruleRepo *repository.NotificationRuleMock
	logRepo  *repository.NotificationLogMock

	service *Service
}

func newServiceTest() *serviceTest {
	s := &serviceTest{
		provider: newTestProvider(),
		ruleRepo: &repository.NotificationRuleMock{},
		logRepo:  &repository.NotificationLogMock{},
	}

	ruleCache := NewRuleCache(s.provider, s.ruleRepo, 30)
	s.service = NewService(s.provider, s.ruleRepo, s.logRepo, ruleCache)
	return s
}

func validRuleInput() RuleInput {
	return RuleInput{
		OwnerID:        5,
		Name:           "critical incidents",
		EventTypes:     []string{"recalled"},
		SeverityLevels: []string{"critical"},
		Channels:       []string{"email", "sms"},
		Enabled:        true,
	}
}

func TestService_CreateRule(t *testing.T) {
	s := newServiceTest()
	s.ruleRepo.InsertRuleFunc = func(ctx context.Context, rule model.NotificationRule) (uint64, error) {
		return 21, nil
	}

	id, err := s.service.CreateRule(newContext(), validRuleInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, uint64(21), id)

	inserted := s.ruleRepo.InsertRuleCalls()[0].Rule
	assert.Equal(t, uint64(5), inserted.OwnerID)
	assert.Equal(t, model.JSONStrings{"email", "sms"}, inserted.Channels)
	assert.Equal(t, true, inserted.Enabled)
}

func TestService_CreateRule__Validation(t *testing.T) {
	s := newServiceTest()

	input := validRuleInput()
	input.Name = ""
	_, err := s.service.CreateRule(newContext(), input)
	assert.Equal(t, true, audit.IsValidationError(err))

	input = validRuleInput()
	input.Channels = nil
	_, err = s.service.CreateRule(newContext(), input)
	assert.Equal(t, true, audit.IsValidationError(err))

	input = validRuleInput()
	input.Channels = []string{"fax"}
	_, err = s.service.CreateRule(newContext(), input)
	assert.Equal(t, true, audit.IsValidationError(err))

	input = validRuleInput()
	input.EventTypes = []string{"not-a-type"}
	_, err = s.service.CreateRule(newContext(), input)
	assert.Equal(t, true, audit.IsValidationError(err))

	input = validRuleInput()
	input.SeverityLevels = []string{"catastrophic"}
	_, err = s.service.CreateRule(newContext(), input)
	assert.Equal(t, true, audit.IsValidationError(err))

	assert.Equal(t, 0, len(s.ruleRepo.InsertRuleCalls()))
}

func TestService_UpdateRule__Not_Found(t *testing.T) {
	s := newServiceTest()
	s.ruleRepo.UpdateRuleFunc = func(ctx context.Context, rule model.NotificationRule) (bool, error) {
		return false, nil
	}

	err := s.service.UpdateRule(newContext(), 21, validRuleInput())
	assert.Equal(t, ErrRuleNotFound, err)
}

func TestService_ToggleRule(t *testing.T) {
	s := newServiceTest()
	s.ruleRepo.SetRuleEnabledFunc = func(
		ctx context.Context, id uint64, ownerID uint64, enabled bool,
	) (bool, error) {
		return true, nil
	}

	err := s.service.ToggleRule(newContext(), 21, 5, false)
	assert.Equal(t, nil, err)

	calls := s.ruleRepo.SetRuleEnabledCalls()
	assert.Equal(t, uint64(21), calls[0].ID)
	assert.Equal(t, uint64(5), calls[0].OwnerID)
	assert.Equal(t, false, calls[0].Enabled)
}

func TestService_DeleteRule__Owner_Scoped(t *testing.T) {
	s := newServiceTest()
	s.ruleRepo.DeleteRuleFunc = func(ctx context.Context, id uint64, ownerID uint64) (bool, error) {
		return false, nil
	}

	err := s.service.DeleteRule(newContext(), 21, 6)
	assert.Equal(t, ErrRuleNotFound, err)
}

func TestService_AcknowledgeNotification(t *testing.T) {
	s := newServiceTest()
	s.logRepo.AcknowledgeFunc = func(
		ctx context.Context, id uint64, recipientID uint64, at time.Time,
	) (bool, error) {
		return true, nil
	}

	err := s.service.AcknowledgeNotification(newContext(), 11, 5)
	assert.Equal(t, nil, err)

	calls := s.logRepo.AcknowledgeCalls()
	assert.Equal(t, uint64(11), calls[0].ID)
	assert.Equal(t, uint64(5), calls[0].RecipientID)
}

func TestService_AcknowledgeNotification__Already_Acknowledged(t *testing.T) {
	s := newServiceTest()
	s.logRepo.AcknowledgeFunc = func(
		ctx context.Context, id uint64, recipientID uint64, at time.Time,
	) (bool, error) {
		return false, nil
	}
	s.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{
			Valid: true,
			Log: model.NotificationLog{
				ID:          id,
				RecipientID: 5,
				Status:      model.NotificationStatusAcknowledged,
			},
		}, nil
	}

	err := s.service.AcknowledgeNotification(newContext(), 11, 5)
	assert.Equal(t, ErrAlreadyAcknowledged, err)
}

func TestService_AcknowledgeNotification__Not_Yet_Sent(t *testing.T) {
	s := newServiceTest()
	s.logRepo.AcknowledgeFunc = func(
		ctx context.Context, id uint64, recipientID uint64, at time.Time,
	) (bool, error) {
		return false, nil
	}

	for _, status := range []model.NotificationStatus{
		model.NotificationStatusPending,
		model.NotificationStatusFailed,
	} {
		s.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
			return model.NullNotificationLog{
				Valid: true,
				Log: model.NotificationLog{
					ID:          id,
					RecipientID: 5,
					Status:      status,
				},
			}, nil
		}

		err := s.service.AcknowledgeNotification(newContext(), 11, 5)
		assert.Equal(t, ErrNotificationNotSent, err)
	}
}

func TestService_AcknowledgeNotification__Not_Found(t *testing.T) {
	s := newServiceTest()
	s.logRepo.AcknowledgeFunc = func(
		ctx context.Context, id uint64, recipientID uint64, at time.Time,
	) (bool, error) {
		return false, nil
	}
	s.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{}, nil
	}

	err := s.service.AcknowledgeNotification(newContext(), 11, 5)
	assert.Equal(t, ErrNotificationNotFound, err)
}

func TestService_AcknowledgeNotification__Wrong_Recipient(t *testing.T) {
	s := newServiceTest()
	s.logRepo.AcknowledgeFunc = func(
		ctx context.Context, id uint64, recipientID uint64, at time.Time,
	) (bool, error) {
		return false, nil
	}
	s.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{
			Valid: true,
			Log: model.NotificationLog{
				ID:          id,
				RecipientID: 9,
				Status:      model.NotificationStatusSent,
			},
		}, nil
	}

	err := s.service.AcknowledgeNotification(newContext(), 11, 5)
	assert.Equal(t, ErrNotificationNotFound, err)
}
