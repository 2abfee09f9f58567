package entities

// DispositionInput classifies the outcome of comparing a bill against its
// order. It is the sole input to the automatic transition table; manual
// review states (ESCALATE, DENIED, GARBAGE) are not reachable from here.

type DispositionInput string

const (
	// InputFullMatch: every billed code is satisfied and nothing ordered is
	// missing (category matches count as satisfied).
	InputFullMatch DispositionInput = "full_match"
	// InputBilledSubset: the bill covers strictly fewer distinct codes than
	// the order, all of them satisfied.
	InputBilledSubset DispositionInput = "billed_subset"
	// InputBilledExcess: the bill carries non-ancillary codes the order
	// does not, after matching.
	InputBilledExcess DispositionInput = "billed_excess"
	// InputNoOverlap: zero overlap between billed and ordered code sets.
	InputNoOverlap DispositionInput = "no_overlap"
	// InputProviderIncomplete: the billing-provider record is missing
	// fields required before rates can be resolved.
	InputProviderIncomplete DispositionInput = "provider_incomplete"
	// InputRateFailure: matching succeeded but at least one line could not
	// resolve a payable rate.
	InputRateFailure DispositionInput = "rate_failure"
	// InputArthrogram: the order is an arthrogram bundle and leaves the
	// automatic pipeline.
	InputArthrogram DispositionInput = "arthrogram"
)

// Disposition is a (status, action) pair produced by the transition table.

type Disposition struct {
	Status BillStatus
	Action BillAction
}

// dispositionTable is the full automatic state machine for bills entering at
// MAPPED. Keeping it as data makes an unmapped classification a lookup
// failure rather than a silent fall-through.
var dispositionTable = map[DispositionInput]Disposition{
	InputFullMatch:          {BillStatusReviewed, ActionApplyRate},
	InputBilledSubset:       {BillStatusReviewed, ActionApplyRate},
	InputBilledExcess:       {BillStatusReviewFlag, ActionAddressMismatch},
	InputNoOverlap:          {BillStatusReviewFlag, ActionCompleteMismatch},
	InputProviderIncomplete: {BillStatusReviewFlag, ActionUpdateProvInfo},
	InputRateFailure:        {BillStatusReviewFlag, ActionReviewRates},
	InputArthrogram:         {BillStatusArthrogram, ActionToReview},
}

// DispositionFor resolves the transition for a classification. ok is false
// for classifications the table does not know, in which case the caller
// must leave the bill in MAPPED with an error recorded.
func DispositionFor(input DispositionInput) (Disposition, bool) {
	d, ok := dispositionTable[input]
	return d, ok
}

// CanReset reports whether a bill may be returned to MAPPED for
// reprocessing. COMPLETED is the one state reset never touches.
func CanReset(s BillStatus) bool {
	return s != BillStatusCompleted
}

// manualTargets lists the statuses a human reviewer may drive a bill into,
// keyed by target. Automatic processing never produces these transitions.
var manualTargets = map[BillStatus]struct{}{
	BillStatusEscalate: {},
	BillStatusDenied:   {},
	BillStatusGarbage:  {},
}

// CanManualTransition reports whether a reviewer may move a bill from its
// current status into target. Terminal bills are immutable.
func CanManualTransition(from, target BillStatus) bool {
	if from.Terminal() {
		return false
	}
	_, ok := manualTargets[target]
	return ok
}
