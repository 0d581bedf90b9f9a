package main

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"github.com/teofils1/supply-chain/config"
	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/pkg/ledger"
	"github.com/teofils1/supply-chain/repository"
	"github.com/teofils1/supply-chain/service/audit"
)

type noIntake struct{}

func (noIntake) Enqueue(uint64) bool { return true }

func main() {
	conf := config.Load()
	db := conf.MySQL.MustConnect()

	provider := repository.NewProvider(db)
	subscriberRepo := repository.NewSubscriber()
	ruleRepo := repository.NewNotificationRule()

	ctx := context.Background()

	subscribers := []model.Subscriber{
		{Email: "admin@pharma.example", Phone: "+40700000001", Role: model.SubscriberRoleAdmin, Active: true},
		{Email: "ops@pharma.example", Phone: "+40700000002", Role: model.SubscriberRoleOperator, Active: true},
		{Email: "audit@pharma.example", Phone: "+40700000003", Role: model.SubscriberRoleAuditor, Active: true},
	}

	var subscriberIDs []uint64
	err := provider.Transact(ctx, func(ctx context.Context) error {
		for _, subscriber := range subscribers {
			id, err := subscriberRepo.InsertSubscriber(ctx, subscriber)
			if err != nil {
				return err
			}
			subscriberIDs = append(subscriberIDs, id)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}

	rules := []model.NotificationRule{
		{
			OwnerID:  subscriberIDs[1],
			Name:     "cold chain breaches",
			Channels: model.JSONStrings{"email", "sms"},
			EventTypes: model.JSONStrings{
				string(model.EventTypeTemperatureAlert),
			},
			Enabled: true,
		},
		{
			OwnerID:        subscriberIDs[2],
			Name:           "critical incidents",
			Channels:       model.JSONStrings{"email"},
			SeverityLevels: model.JSONStrings{"critical"},
			Enabled:        true,
		},
	}

	err = provider.Transact(ctx, func(ctx context.Context) error {
		for _, rule := range rules {
			if _, err := ruleRepo.InsertRule(ctx, rule); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}

	ledgerClient := ledger.NewMock(conf.Anchoring.Network)
	auditService := audit.NewService(provider, repository.NewEvent(), ledgerClient, noIntake{})

	coldChainTemp := decimal.NewFromFloat(10.4)
	actorID := subscriberIDs[1]

	events := []audit.RecordEventInput{
		{
			EventType:   model.EventTypeCreated,
			EntityType:  model.EntityTypeBatch,
			EntityID:    1001,
			Description: "Batch PB-2024-0001 created",
			Location:    "Cluj manufacturing site",
			ActorID:     &actorID,
		},
		{
			EventType:   model.EventTypeTemperatureAlert,
			EntityType:  model.EntityTypeShipment,
			EntityID:    2001,
			Description: "Cold chain excursion above 8C",
			Severity:    model.SeverityHigh,
			Location:    "Transit hub Bucharest",
			Metadata: model.JSONMap{
				"temperature": coldChainTemp.String(),
				"threshold":   "8.0",
			},
		},
		{
			EventType:   model.EventTypeRecalled,
			EntityType:  model.EntityTypeBatch,
			EntityID:    1001,
			Description: "Batch PB-2024-0001 recalled",
			Severity:    model.SeverityCritical,
			Metadata: model.JSONMap{
				"reason": "contamination suspicion",
			},
		},
	}

	for _, input := range events {
		output, err := auditService.RecordEvent(ctx, input)
		if err != nil {
			panic(err)
		}
		fmt.Printf("event %d recorded, hash=%s\n", output.ID, output.IntegrityHash)
	}

	fmt.Println("seed data inserted")
}
