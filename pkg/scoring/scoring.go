// Package scoring prices loan applications and assigns credit scores.
package scoring

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// MinimumCreditScore is the lowest score considered eligible for a loan.
const MinimumCreditScore = 650

// Random scores fall in [minRandomScore, maxRandomScore).
const (
	minRandomScore = 500
	maxRandomScore = 700
)

// Scorer assigns a credit score to a customer at application time.
type Scorer interface {
	Score(customerID string) int
}

// RandomScorer draws a uniformly random score. It is a placeholder, not a risk model.
type RandomScorer struct{}

func (RandomScorer) Score(string) int {
	return minRandomScore + rand.Intn(maxRandomScore-minRandomScore)
}

// FixedScorer always returns the same score.
type FixedScorer int

func (f FixedScorer) Score(string) int {
	return int(f)
}

// Eligible reports whether a score meets the minimum.
func Eligible(score int) bool {
	return score >= MinimumCreditScore
}

// InterestRate returns the flat annual percentage for a principal.
func InterestRate(amount float64) float64 {
	switch {
	case amount > 10000:
		return 7.5
	case amount > 5000:
		return 8.5
	default:
		return 10.0
	}
}

// MonthlyPayment spreads principal plus flat interest over the tenure in months,
// rounded to cents.
func MonthlyPayment(amount, rate float64, tenure int) float64 {
	if tenure <= 0 {
		return 0
	}
	total := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100))))
	return total.Div(decimal.NewFromInt(int64(tenure))).Round(2).InexactFloat64()
}

// Quote is the pricing of a loan application.
type Quote struct {
	InterestRate   float64
	MonthlyPayment float64
	CreditScore    int
	Eligible       bool
}

// Pricer prices applications with a pluggable Scorer.
type Pricer struct {
	Scorer Scorer
}

// NewPricer creates a Pricer. A nil scorer falls back to RandomScorer.
func NewPricer(scorer Scorer) *Pricer {
	if scorer == nil {
		scorer = RandomScorer{}
	}
	return &Pricer{Scorer: scorer}
}

// Quote prices a loan of amount over tenure months for a customer.
func (p *Pricer) Quote(customerID string, amount float64, tenure int) Quote {
	rate := InterestRate(amount)
	score := p.Scorer.Score(customerID)
	return Quote{
		InterestRate:   rate,
		MonthlyPayment: MonthlyPayment(amount, rate, tenure),
		CreditScore:    score,
		Eligible:       Eligible(score),
	}
}
