package notify

import (
	"github.com/teofils1/supply-chain/model"
)

// RuleMatches decides whether a rule applies to an event. Pure and
// safe to call concurrently: the dispatcher evaluates it against every
// enabled rule for every eligible event.
//
// An empty event type or severity allow-list matches everything.
func RuleMatches(rule model.NotificationRule, event model.Event) bool {
	if !rule.Enabled {
		return false
	}
	if len(rule.EventTypes) > 0 && !rule.EventTypes.Contains(string(event.EventType)) {
		return false
	}
	if len(rule.SeverityLevels) > 0 && !rule.SeverityLevels.Contains(string(event.Severity)) {
		return false
	}
	return true
}
