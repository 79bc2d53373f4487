// Package mapping converts between API request and response types and domain models.
package mapping

import (
	"regexp"
	"strings"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// DefaultCurrency is used when neither the request nor the account names one.
const DefaultCurrency = "USD"

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidCurrency reports whether code is a three-letter upper-case currency code.
func ValidCurrency(code string) bool {
	return currencyCode.MatchString(code)
}

// ToDomainNewAccount converts an API NewAccount to a domain Account, applying defaults.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	account := &models.Account{
		CustomerId: strings.TrimSpace(newAccount.CustomerId),
		Type:       models.AccountSavings,
		Currency:   DefaultCurrency,
	}
	if newAccount.Type != nil {
		account.Type = models.AccountType(*newAccount.Type)
	}
	if newAccount.Currency != nil {
		account.Currency = strings.ToUpper(strings.TrimSpace(*newAccount.Currency))
	}
	if newAccount.Balance != nil {
		account.Balance = *newAccount.Balance
	}
	return account
}

func ToAccountFilter(params api.ListAccountsParams) storage.AccountFilter {
	return storage.AccountFilter{
		CustomerId: value(params.CustomerId),
		Status:     models.AccountStatus(value(params.Status)),
		Type:       models.AccountType(value(params.Type)),
		Currency:   value(params.Currency),
	}
}

// ToApiAccountBalance converts a domain Account to its balance view.
func ToApiAccountBalance(account *models.Account) *api.AccountBalance {
	return &api.AccountBalance{
		AccountId:     account.Id,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		Currency:      account.Currency,
		Status:        account.Status,
	}
}

// ToDomainNewTransaction converts an API NewTransaction to a domain Transaction.
// An empty currency is filled in from the account by the caller.
func ToDomainNewTransaction(newTx *api.NewTransaction) *models.Transaction {
	return &models.Transaction{
		AccountId:    strings.TrimSpace(newTx.AccountId),
		Type:         models.TransactionType(newTx.Type),
		Amount:       newTx.Amount,
		Currency:     strings.ToUpper(value(newTx.Currency)),
		Counterparty: value(newTx.Counterparty),
		Reference:    value(newTx.Reference),
		Description:  value(newTx.Description),
	}
}

func ToTransactionFilter(params api.ListTransactionsParams) storage.TransactionFilter {
	return storage.TransactionFilter{
		AccountId: value(params.AccountId),
		Type:      models.TransactionType(value(params.Type)),
		Status:    models.TransactionStatus(value(params.Status)),
		StartDate: value(params.StartDate),
		EndDate:   value(params.EndDate),
	}
}

// ToDomainNewPayment converts an API NewPayment to a domain Payment.
// Readiness flags are left for the caller to derive unless the request sets them.
func ToDomainNewPayment(newPayment *api.NewPayment) *models.Payment {
	payment := &models.Payment{
		AccountId:          strings.TrimSpace(newPayment.AccountId),
		BeneficiaryName:    strings.TrimSpace(newPayment.BeneficiaryName),
		BeneficiaryAccount: value(newPayment.BeneficiaryAccount),
		Amount:             newPayment.Amount,
		Currency:           strings.ToUpper(value(newPayment.Currency)),
		Method:             models.BankTransfer,
		Narration:          value(newPayment.Narration),
	}
	if newPayment.Method != nil {
		payment.Method = models.PaymentMethod(*newPayment.Method)
	}
	return payment
}

func ToPaymentFilter(params api.ListPaymentsParams) storage.PaymentFilter {
	return storage.PaymentFilter{
		AccountId: value(params.AccountId),
		Status:    models.PaymentStatus(value(params.Status)),
		Method:    models.PaymentMethod(value(params.Method)),
	}
}

// ToDomainNewLoan converts an API LoanApplication to a domain Loan without pricing.
func ToDomainNewLoan(application *api.LoanApplication) *models.Loan {
	return &models.Loan{
		CustomerId: strings.TrimSpace(application.CustomerId),
		AccountId:  strings.TrimSpace(application.AccountId),
		Amount:     application.Amount,
		Tenure:     application.Tenure,
		Purpose:    value(application.Purpose),
	}
}

func ToLoanFilter(params api.ListLoansParams) storage.LoanFilter {
	return storage.LoanFilter{
		CustomerId: value(params.CustomerId),
		AccountId:  value(params.AccountId),
		Status:     models.LoanStatus(value(params.Status)),
	}
}

func ToLoanPatch(update *api.LoanStatusUpdate) models.LoanPatch {
	status := models.LoanStatus(update.Status)
	return models.LoanPatch{Status: &status, RejectionReason: update.RejectionReason}
}

func ToDomainNewAirtimePurchase(newPurchase *api.NewAirtimePurchase) *models.AirtimePurchase {
	return &models.AirtimePurchase{
		AccountId:   strings.TrimSpace(newPurchase.AccountId),
		PhoneNumber: strings.TrimSpace(newPurchase.PhoneNumber),
		Amount:      newPurchase.Amount,
		Currency:    strings.ToUpper(value(newPurchase.Currency)),
		Provider:    strings.TrimSpace(newPurchase.Provider),
	}
}

func ToAirtimeFilter(params api.ListAirtimePurchasesParams) storage.AirtimeFilter {
	return storage.AirtimeFilter{
		AccountId:   value(params.AccountId),
		Status:      models.AirtimeStatus(value(params.Status)),
		Provider:    value(params.Provider),
		PhoneNumber: value(params.PhoneNumber),
	}
}

func ToKycFilter(params api.ListKycRecordsParams) storage.KycFilter {
	return storage.KycFilter{
		Status: models.KycStatus(value(params.Status)),
		Level:  value(params.Level),
	}
}

// ToKycPatch converts a KYC status update to a patch. An empty risk rating is left unchanged.
func ToKycPatch(update *api.KycStatusUpdate) models.KycPatch {
	status := models.KycStatus(update.Status)
	patch := models.KycPatch{
		Status:          &status,
		Level:           update.Level,
		RejectionReason: update.RejectionReason,
	}
	if update.RiskRating != nil {
		rating := models.RiskRating(*update.RiskRating)
		patch.RiskRating = &rating
	}
	return patch
}

func ToLimitPatch(update *api.LimitUpdate) models.LimitPatch {
	patch := models.LimitPatch{
		DailyLimit:   update.DailyLimit,
		MonthlyLimit: update.MonthlyLimit,
		DailyUsed:    update.DailyUsed,
		MonthlyUsed:  update.MonthlyUsed,
	}
	if update.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*update.Currency))
		patch.Currency = &currency
	}
	return patch
}

// ToApiLimitView converts a domain AccountLimit to its view with derived availability.
func ToApiLimitView(limit *models.AccountLimit) *api.LimitView {
	daily := limit.Remaining(models.Daily)
	monthly := limit.Remaining(models.Monthly)
	return &api.LimitView{
		AccountLimit:     *limit,
		DailyRemaining:   daily,
		MonthlyRemaining: monthly,
		DailyAvailable:   daily > 0,
		MonthlyAvailable: monthly > 0,
	}
}

// ToLimitQuery merges query parameters over an optional body; query values win.
func ToLimitQuery(params api.CheckLimitAvailableParams, body *api.LimitCheck) checker.LimitQuery {
	var q checker.LimitQuery
	if body != nil {
		q.Amount = string(body.Amount)
		q.Period = value(body.Period)
	}
	if params.Amount != nil {
		q.Amount = *params.Amount
	}
	if params.Period != nil {
		q.Period = *params.Period
	}
	return q
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
