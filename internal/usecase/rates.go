package usecase

import (
	"context"
	"log"
	"strings"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"
)

// Reason codes written to a line item when rate resolution fails.
const (
	ReasonMissingCPT           = "missing_cpt"
	ReasonMissingNetworkStatus = "missing_network_status"
	ReasonMissingTIN           = "missing_tin"
	ReasonInvalidNetworkStatus = "invalid_network_status"
	ReasonNoRateFound          = "no_rate_found"
)

// RateResolver looks up the allowed rate for a bill line item from the
// in-network (ppo) or out-of-network (ota) source depending on the
// provider's network status. Absence of a rate is a reportable outcome,
// never an invented number.

type RateResolver struct {
	rates interfaces.IRateSource
}

func NewRateResolver(rates interfaces.IRateSource) *RateResolver {
	return &RateResolver{rates: rates}
}

// LineRate holds one line's resolution outcome. Rate is nil exactly when
// Reason is non-empty.

type LineRate struct {
	LineID  string
	CPTCode string
	Rate    *float64
	Reason  string
}

// Resolved reports whether a payable rate was found.
func (lr LineRate) Resolved() bool {
	return lr.Rate != nil
}

// ResolveLine resolves one line item. Ancillary codes resolve to a $0 rate
// rather than "no rate found".
func (r *RateResolver) ResolveLine(
	ctx context.Context,
	bill entities.Bill,
	orderID string,
	item entities.BillLineItem,
	ancillary map[string]struct{},
) (LineRate, error) {
	out := LineRate{LineID: item.ID, CPTCode: item.NormalizedCPT()}
	if out.CPTCode == "" {
		out.Reason = ReasonMissingCPT
		return out, nil
	}
	if _, anc := ancillary[out.CPTCode]; anc {
		zero := 0.0
		out.Rate = &zero
		return out, nil
	}

	network := strings.TrimSpace(bill.Network)
	modifier := effectiveModifier(item.Modifier)
	switch entities.NetworkStatus(network) {
	case entities.NetworkIn:
		tin := cleanTIN(bill.ProviderTIN)
		if tin == "" {
			out.Reason = ReasonMissingTIN
			return out, nil
		}
		rate, err := r.rates.InNetworkRate(ctx, tin, out.CPTCode, modifier)
		if err != nil {
			return out, err
		}
		out.Rate = rate
	case entities.NetworkOut:
		rate, err := r.rates.OutOfNetworkRate(ctx, orderID, out.CPTCode, modifier)
		if err != nil {
			return out, err
		}
		out.Rate = rate
	default:
		if network == "" {
			out.Reason = ReasonMissingNetworkStatus
		} else {
			out.Reason = ReasonInvalidNetworkStatus
		}
		return out, nil
	}

	if out.Rate == nil {
		out.Reason = ReasonNoRateFound
		log.Printf("[rates][usecase] no rate on file cpt=%s network=%q order_id=%s", out.CPTCode, network, orderID)
	}
	return out, nil
}

// effectiveModifier keeps only the modifiers that change the payable rate
// (professional/technical component splits). Everything else resolves as
// no-modifier.
func effectiveModifier(modifier string) string {
	m := strings.ToUpper(strings.TrimSpace(modifier))
	if m == "TC" || m == "26" {
		return m
	}
	return ""
}

// cleanTIN strips dashes and spaces so lookup matches however the tax id
// was keyed.
func cleanTIN(tin string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(tin))
}
