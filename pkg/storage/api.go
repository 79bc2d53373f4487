package storage

// ApiStore defines the complete set of operations needed by the API.
// It composes the per-resource interfaces; handlers depend on the narrow ones.
type ApiStore interface {
	AccountStore
	TransactionStore
	PaymentStore
	LoanStore
	AirtimeStore
	KycStore
	LimitStore
}
