package notify

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/repository"
)

const ruleCacheSize = 4 * 1024 * 1024

var enabledRulesKey = []byte("rules:enabled")

// RuleCache keeps the enabled rule set in process so the dispatcher
// does not scan MySQL for every event. Entries expire after a short
// TTL and are dropped eagerly on rule mutations.
type RuleCache struct {
	provider repository.Provider
	ruleRepo repository.NotificationRule

	cache         *freecache.Cache
	expireSeconds int
}

// NewRuleCache ...
func NewRuleCache(
	provider repository.Provider, ruleRepo repository.NotificationRule,
	expireSeconds int,
) *RuleCache {
	return &RuleCache{
		provider: provider,
		ruleRepo: ruleRepo,

		cache:         freecache.NewCache(ruleCacheSize),
		expireSeconds: expireSeconds,
	}
}

// GetEnabledRules ...
func (c *RuleCache) GetEnabledRules(ctx context.Context) ([]model.NotificationRule, error) {
	data, err := c.cache.Get(enabledRulesKey)
	if err == nil {
		var rules []model.NotificationRule
		if err := json.Unmarshal(data, &rules); err == nil {
			return rules, nil
		}
	}

	readonlyCtx := c.provider.Readonly(ctx)
	rules, err := c.ruleRepo.ListEnabledRules(readonlyCtx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rules); err == nil {
		_ = c.cache.Set(enabledRulesKey, data, c.expireSeconds)
	}
	return rules, nil
}

// Invalidate ...
func (c *RuleCache) Invalidate() {
	c.cache.Del(enabledRulesKey)
}
