package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/contactkeval/vanilla-option/internal/pricing"
)

// Quote is the priced option as it is reported.
type Quote struct {
	Strike     float64         `json:"strike"`
	Rate       float64         `json:"rate"`
	Maturity   float64         `json:"maturity"`
	Spot       float64         `json:"spot"`
	Volatility float64         `json:"volatility"`
	Call       decimal.Decimal `json:"call"`
	Put        decimal.Decimal `json:"put"`
	Parity     decimal.Decimal `json:"parity"` // call - put
	Places     int32           `json:"-"`
}

// NewQuote prices both legs of o and rounds them to places decimals.
// A NaN or infinite price is an error.
func NewQuote(o pricing.VanillaOption, places int32) (Quote, error) {
	call, put := pricing.CallPrice(o), pricing.PutPrice(o)
	for _, p := range []struct {
		kind  pricing.Kind
		price float64
	}{{pricing.Call, call}, {pricing.Put, put}} {
		if math.IsNaN(p.price) || math.IsInf(p.price, 0) {
			return Quote{}, errors.Errorf("%s price is not finite (%v); check strike, maturity, spot and volatility", p.kind, p.price)
		}
	}

	return Quote{
		Strike:     o.K(),
		Rate:       o.R(),
		Maturity:   o.T(),
		Spot:       o.S(),
		Volatility: o.Sigma(),
		Call:       decimal.NewFromFloat(call).Round(places),
		Put:        decimal.NewFromFloat(put).Round(places),
		Parity:     decimal.NewFromFloat(call - put).Round(places),
		Places:     places,
	}, nil
}

// ForwardGap is S - K*exp(-rT), the value put-call parity pins Parity to.
func (q Quote) ForwardGap() decimal.Decimal {
	gap := q.Spot - q.Strike*math.Exp(-q.Rate*q.Maturity)
	return decimal.NewFromFloat(gap).Round(q.Places)
}

func WriteJSON(w io.Writer, q Quote) error {
	b, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func WriteText(w io.Writer, q Quote) error {
	fmt.Fprintf(w, "K=%v r=%v T=%v S=%v sigma=%v\n", q.Strike, q.Rate, q.Maturity, q.Spot, q.Volatility)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Quantity", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{"Call", q.Call.StringFixed(q.Places)})
	table.Append([]string{"Put", q.Put.StringFixed(q.Places)})
	table.Append([]string{"Parity (C-P)", q.Parity.StringFixed(q.Places)})
	table.Append([]string{"Forward gap (S-Ke^-rT)", q.ForwardGap().StringFixed(q.Places)})
	table.Render()
	return nil
}

// Write renders q in the named format ("text" or "json").
func Write(w io.Writer, q Quote, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, q)
	case "text":
		return WriteText(w, q)
	default:
		return errors.Errorf("unknown report format %q", format)
	}
}
