// Package seed loads a small sample dataset so every checker can be probed right after start.
package seed

import (
	"context"
	"fmt"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/scoring"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// CreditScore is the score given to the sample loan, above the eligibility minimum.
const CreditScore = 720

var accounts = []models.Account{
	{CustomerId: "cust-001", Type: models.AccountSavings, Currency: "USD", Balance: 5000},
	{CustomerId: "cust-002", Type: models.AccountCurrent, Currency: "NGN", Balance: 250000},
	{CustomerId: "cust-003", Type: models.AccountWallet, Currency: "KES", Balance: 100, Status: models.AccountSuspended},
}

// Load populates an empty store. Ids follow creation order, so the first account is acc-001.
func Load(ctx context.Context, store storage.ApiStore) error {
	var created []*models.Account
	for i := range accounts {
		a, err := store.CreateAccount(ctx, &accounts[i])
		if err != nil {
			return fmt.Errorf("failed to seed account for %s: %w", accounts[i].CustomerId, err)
		}
		created = append(created, a)
	}
	primary, secondary := created[0], created[1]

	if err := loadKyc(ctx, store); err != nil {
		return err
	}

	transactions := []models.Transaction{
		{AccountId: primary.Id, Type: models.Credit, Amount: 1500, Currency: primary.Currency, Counterparty: "Acme Payroll", Description: "Salary", Status: models.TransactionCleared},
		{AccountId: primary.Id, Type: models.Debit, Amount: 120.5, Currency: primary.Currency, Counterparty: "City Power", Description: "Electricity bill"},
		{AccountId: secondary.Id, Type: models.Credit, Amount: 50000, Currency: secondary.Currency, Counterparty: "Transfer from savings"},
	}
	for i := range transactions {
		if _, err := store.CreateTransaction(ctx, &transactions[i]); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	_, err := store.CreatePayment(ctx, &models.Payment{
		AccountId:          primary.Id,
		BeneficiaryName:    "Jane Doe",
		BeneficiaryAccount: "0123456789",
		Amount:             250,
		Currency:           primary.Currency,
		Method:             models.BankTransfer,
		Narration:          "Rent share",
		KycComplete:        true,
		SufficientBalance:  primary.Balance >= 250,
	})
	if err != nil {
		return fmt.Errorf("failed to seed payment: %w", err)
	}

	quote := scoring.NewPricer(scoring.FixedScorer(CreditScore)).Quote(primary.CustomerId, 10000, 12)
	_, err = store.CreateLoan(ctx, &models.Loan{
		CustomerId:     primary.CustomerId,
		AccountId:      primary.Id,
		Amount:         10000,
		Tenure:         12,
		Purpose:        "Home improvement",
		InterestRate:   quote.InterestRate,
		MonthlyPayment: quote.MonthlyPayment,
		CreditScore:    quote.CreditScore,
		Eligible:       quote.Eligible,
	})
	if err != nil {
		return fmt.Errorf("failed to seed loan: %w", err)
	}

	purchase, err := store.CreateAirtimePurchase(ctx, &models.AirtimePurchase{
		AccountId:   secondary.Id,
		PhoneNumber: "+2348012345678",
		Amount:      1000,
		Currency:    secondary.Currency,
		Provider:    "MTN",
	})
	if err != nil {
		return fmt.Errorf("failed to seed airtime purchase: %w", err)
	}
	if _, _, err := store.CompletePendingAirtime(ctx, purchase.Id); err != nil {
		return fmt.Errorf("failed to complete seeded airtime purchase: %w", err)
	}

	dailyUsed, monthlyUsed := 1200.0, 8000.0
	if _, err := store.UpsertLimit(ctx, primary.Id, models.LimitPatch{DailyUsed: &dailyUsed, MonthlyUsed: &monthlyUsed}); err != nil {
		return fmt.Errorf("failed to seed limits: %w", err)
	}
	dailyLimit, exhausted := 100000.0, 100000.0
	if _, err := store.UpsertLimit(ctx, secondary.Id, models.LimitPatch{DailyLimit: &dailyLimit, DailyUsed: &exhausted}); err != nil {
		return fmt.Errorf("failed to seed limits: %w", err)
	}

	return nil
}

func loadKyc(ctx context.Context, store storage.KycStore) error {
	approved, pending, rejected := models.KycApproved, models.KycPending, models.KycRejected
	low, medium, high := models.RiskLow, models.RiskMedium, models.RiskHigh
	enhanced, reason := "enhanced", "Identity document expired"

	records := map[string]models.KycPatch{
		"cust-001": {Status: &approved, Level: &enhanced, RiskRating: &low, Documents: []string{"passport", "utility_bill"}, PendingItems: []string{}},
		"cust-002": {Status: &pending, RiskRating: &medium, Documents: []string{"national_id"}, PendingItems: []string{"proof_of_address"}},
		"cust-003": {Status: &rejected, RiskRating: &high, RejectionReason: &reason},
	}
	for _, customerID := range []string{"cust-001", "cust-002", "cust-003"} {
		if _, err := store.UpsertKyc(ctx, customerID, records[customerID]); err != nil {
			return fmt.Errorf("failed to seed kyc for %s: %w", customerID, err)
		}
	}
	return nil
}
