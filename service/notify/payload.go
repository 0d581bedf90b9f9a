package notify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teofils1/supply-chain/model"
)

func subjectPrefix(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical:
		return "CRITICAL"
	case model.SeverityHigh:
		return "ALERT"
	default:
		return "Notification"
	}
}

// RenderPayload builds the channel message for an event. SMS bodies
// carry only the subject line; email and push get the full detail
// block.
func RenderPayload(
	event model.Event, log model.NotificationLog, recipient model.Subscriber,
) Payload {
	subject := fmt.Sprintf("%s: %s", subjectPrefix(event.Severity), event.Description)

	var body string
	if log.Channel == model.ChannelSMS {
		body = subject
	} else {
		body = renderBody(event)
	}

	return Payload{
		TaskID:    uuid.NewString(),
		EventID:   event.ID,
		LogID:     log.ID,
		Channel:   log.Channel,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}
}

func renderBody(event model.Event) string {
	var b strings.Builder

	b.WriteString("Supply Chain Alert\n\n")
	fmt.Fprintf(&b, "Type: %s\n", event.EventType)
	fmt.Fprintf(&b, "Severity: %s\n", strings.ToUpper(string(event.Severity)))
	fmt.Fprintf(&b, "Entity: %s#%d\n", event.EntityType, event.EntityID)
	fmt.Fprintf(&b, "Description: %s\n", event.Description)
	fmt.Fprintf(&b, "Time: %s\n", event.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
	if event.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", event.Location)
	}

	if event.EventType == model.EventTypeTemperatureAlert {
		if reading, ok := temperatureReading(event.Metadata); ok {
			fmt.Fprintf(&b, "Temperature: %s°C\n", reading.StringFixed(1))
		}
	}

	if len(event.Metadata) > 0 {
		b.WriteString("\nDetails:\n")
		keys := make([]string, 0, len(event.Metadata))
		for key := range event.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s: %v\n", key, event.Metadata[key])
		}
	}

	b.WriteString("\n---\nThis is an automated notification from the Supply Chain Tracking System.")
	return b.String()
}

func temperatureReading(metadata model.JSONMap) (decimal.Decimal, bool) {
	raw, ok := metadata["temperature"]
	if !ok {
		return decimal.Decimal{}, false
	}
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Decimal{}, false
	}
}
