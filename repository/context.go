package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// GetTx returns the Transaction opened by Provider.Transact. Panics
// outside of a transaction.
func GetTx(ctx context.Context) Transaction {
	value, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if !ok {
		panic("not found transaction")
	}
	return value.tx
}

// GetReadonly returns the Readonly connection placed in the context by
// Provider.Readonly. Inside a transaction it returns the transaction
// instead, so reads observe the transaction's own writes.
func GetReadonly(ctx context.Context) Readonly {
	if value, ok := ctx.Value(ctxTxKey).(ctxTxValue); ok {
		return value.tx
	}
	value, ok := ctx.Value(ctxReadonlyKey).(ctxReadonlyValue)
	if !ok {
		panic("not found readonly repository")
	}
	return value.db
}

type ctxTxKeyType struct {
}

type ctxReadonlyKeyType struct {
}

var ctxTxKey = ctxTxKeyType{}
var ctxReadonlyKey = ctxReadonlyKeyType{}

type ctxTxValue struct {
	tx *sqlx.Tx
}

type ctxReadonlyValue struct {
	db *sqlx.DB
}
