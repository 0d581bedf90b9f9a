package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teofils1/supply-chain/pkg/integration"
)

func newContext() context.Context {
	return context.Background()
}

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}
