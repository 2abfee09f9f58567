package entities

import "testing"

func TestDispositionFor(t *testing.T) {
	cases := []struct {
		input  DispositionInput
		status BillStatus
		action BillAction
	}{
		{InputFullMatch, BillStatusReviewed, ActionApplyRate},
		{InputBilledSubset, BillStatusReviewed, ActionApplyRate},
		{InputBilledExcess, BillStatusReviewFlag, ActionAddressMismatch},
		{InputNoOverlap, BillStatusReviewFlag, ActionCompleteMismatch},
		{InputProviderIncomplete, BillStatusReviewFlag, ActionUpdateProvInfo},
		{InputRateFailure, BillStatusReviewFlag, ActionReviewRates},
		{InputArthrogram, BillStatusArthrogram, ActionToReview},
	}
	for _, c := range cases {
		d, ok := DispositionFor(c.input)
		if !ok {
			t.Fatalf("no disposition for %s", c.input)
		}
		if d.Status != c.status || d.Action != c.action {
			t.Fatalf("disposition for %s = (%s, %s), want (%s, %s)", c.input, d.Status, d.Action, c.status, c.action)
		}
	}

	if _, ok := DispositionFor("bogus"); ok {
		t.Fatal("unknown classification must not resolve")
	}
}

func TestCanReset(t *testing.T) {
	if CanReset(BillStatusCompleted) {
		t.Fatal("COMPLETED must never be resettable")
	}
	for _, s := range []BillStatus{BillStatusDenied, BillStatusGarbage, BillStatusReviewFlag, BillStatusEscalate} {
		if !CanReset(s) {
			t.Fatalf("expected %s to be resettable", s)
		}
	}
}

func TestCanManualTransition(t *testing.T) {
	if !CanManualTransition(BillStatusReviewFlag, BillStatusEscalate) {
		t.Fatal("flagged bill must be escalatable")
	}
	if !CanManualTransition(BillStatusMapped, BillStatusGarbage) {
		t.Fatal("mapped bill must be markable as garbage")
	}
	if CanManualTransition(BillStatusCompleted, BillStatusDenied) {
		t.Fatal("terminal bill must be immutable")
	}
	if CanManualTransition(BillStatusReviewFlag, BillStatusReviewed) {
		t.Fatal("REVIEWED is not a manual target")
	}
}
