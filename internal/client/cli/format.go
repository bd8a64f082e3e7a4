package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/shopspring/decimal"
)

const valueWidth = 25

var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

// palette renders output for one writer. Colours are dropped automatically
// when the writer is not a colour terminal.
type palette struct {
	positive lipgloss.Style
	negative lipgloss.Style
	bold     lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		positive: r.NewStyle().Foreground(lipgloss.Color("2")),
		negative: r.NewStyle().Foreground(lipgloss.Color("1")),
		bold:     r.NewStyle().Bold(true),
	}
}

// formatAmount renders d with two decimals and thousands separators.
func formatAmount(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return d.StringFixed(2)
	}
	return amountFormatter.Format(cents.IntPart())
}

// balance colours an amount by its sign: green above zero, red below.
func (p palette) balance(d decimal.Decimal) string {
	s := formatAmount(d)
	switch d.Sign() {
	case 1:
		return p.positive.Render(s)
	case -1:
		return p.negative.Render(s)
	default:
		return s
	}
}

func (p palette) count(n int, noun string) string {
	switch n {
	case 0:
		return "no " + noun + "s"
	case 1:
		return p.positive.Render("1") + " " + noun
	default:
		return p.positive.Render(fmt.Sprint(n)) + " " + noun + "s"
	}
}

func (p palette) accountShort(a *models.Account) string {
	return fmt.Sprintf("%s (#%d): %s %s (%s)",
		a.AccountName, a.AccountID, a.AccountCurrency, a.Balance.StringFixed(2), p.balance(a.UnrealizedPl))
}

func (p palette) accountLong(a *models.Account) string {
	var b strings.Builder

	row := func(label, value string) {
		pad := valueWidth - lipgloss.Width(value)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(&b, "\t%-20s%s%s\n", label, strings.Repeat(".", pad), value)
	}

	pct := "NaN"
	if v, ok := a.UnrealizedPlPercent(); ok {
		pct = p.balance(v)
	}

	leverage := "n/a"
	if v, ok := a.Leverage(); ok {
		leverage = fmt.Sprintf("%d:1", v)
	}

	b.WriteString(p.accountShort(a))
	b.WriteString("\n")
	row("Balance", p.balance(a.Balance))
	row("Unrealized P&L", p.balance(a.UnrealizedPl))
	row("Unrealized P&L [%]", pct)
	row("Net Asset Value", p.balance(a.NetAssetValue()))
	row("Realized P&L", p.balance(a.RealizedPl))
	row("Margin Used", p.balance(a.MarginUsed))
	row("Margin Available", p.balance(a.MarginAvail))
	b.WriteString("\t------\n")
	fmt.Fprintf(&b, "\tLeverage is %s. %s, and %s.\n",
		leverage, capitalize(p.count(a.OpenOrders, "open order")), p.count(a.OpenTrades, "open trade"))

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
