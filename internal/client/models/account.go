package models

import "github.com/shopspring/decimal"

// Account is the account detail snapshot. Monetary values are decimals in
// the account currency.
type Account struct {
	AccountID       int64           `json:"accountId"`
	AccountName     string          `json:"accountName"`
	AccountCurrency string          `json:"accountCurrency"`
	Balance         decimal.Decimal `json:"balance"`
	UnrealizedPl    decimal.Decimal `json:"unrealizedPl"`
	RealizedPl      decimal.Decimal `json:"realizedPl"`
	MarginRate      decimal.Decimal `json:"marginRate"`
	MarginUsed      decimal.Decimal `json:"marginUsed"`
	MarginAvail     decimal.Decimal `json:"marginAvail"`
	OpenOrders      int             `json:"openOrders"`
	OpenTrades      int             `json:"openTrades"`
}

var hundred = decimal.NewFromInt(100)

// NetAssetValue is the balance plus unrealized profit and loss.
func (a *Account) NetAssetValue() decimal.Decimal {
	return a.Balance.Add(a.UnrealizedPl)
}

// UnrealizedPlPercent is the unrealized P&L relative to the balance, in
// percent. ok is false for a zero balance.
func (a *Account) UnrealizedPlPercent() (pct decimal.Decimal, ok bool) {
	if a.Balance.IsZero() {
		return decimal.Zero, false
	}
	return a.UnrealizedPl.Mul(hundred).Div(a.Balance), true
}

// Leverage is 1/marginRate truncated to an integer. ok is false when the
// margin rate is not positive.
func (a *Account) Leverage() (leverage int64, ok bool) {
	if !a.MarginRate.IsPositive() {
		return 0, false
	}
	return decimal.NewFromInt(1).Div(a.MarginRate).IntPart(), true
}
