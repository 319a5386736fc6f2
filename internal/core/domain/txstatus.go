package domain

// TxStatus represents the lifecycle state of a transaction context.
// At most one active transaction exists per execution context; nested
// transaction requests observe and reuse it rather than opening a second.
type TxStatus string

const (
	TxStatusActive     TxStatus = "ACTIVE"
	TxStatusCommitted  TxStatus = "COMMITTED"
	TxStatusRolledBack TxStatus = "ROLLED_BACK"
)
