package entities

import "testing"

func TestOrderIsArthrogram(t *testing.T) {
	if !(Order{BundleType: " ARTHROGRAM "}).IsArthrogram() {
		t.Fatal("bundle type match must be case and whitespace insensitive")
	}
	if (Order{BundleType: "MRI"}).IsArthrogram() {
		t.Fatal("non-arthrogram bundle must not match")
	}
	if (Order{}).IsArthrogram() {
		t.Fatal("empty bundle type must not match")
	}
}

func TestHasArthrogramCPT(t *testing.T) {
	for code := range ArthrogramCPTs {
		items := []OrderLineItem{{CPTCode: "73221"}, {CPTCode: code}}
		if !HasArthrogramCPT(items) {
			t.Fatalf("expected %s to mark the order as arthrogram", code)
		}
	}
	if HasArthrogramCPT([]OrderLineItem{{CPTCode: "73221"}, {CPTCode: "99213"}}) {
		t.Fatal("plain imaging order must not match")
	}
}

func TestExportRowReleased(t *testing.T) {
	if !(ExportRow{ReleasePayment: FlagYes}).Released() {
		t.Fatal("Y must release payment")
	}
	if (ExportRow{ReleasePayment: FlagNo}).Released() {
		t.Fatal("N must withhold payment")
	}
}
