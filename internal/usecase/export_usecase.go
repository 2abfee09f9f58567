package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var (
	ErrLedgerMissing    = errors.New("export ledger not configured")
	ErrMissingOrderID   = errors.New("bill has no order identifier for duplicate key")
	ErrMissingLegacyID  = errors.New("order has no legacy record identifier for EOBR numbering")
	ErrNoProcedureCodes = errors.New("bill has no procedure codes for duplicate key")
)

// Payment terms stamped on every export row; the due date is derived from
// the same horizon.
const (
	exportTerms         = "Net 45"
	dueDateBusinessDays = 45
)

// BuildDuplicateKey constructs the composite duplicate-detection key:
// order identifier, a pipe, then the bill's distinct procedure codes sorted
// ascending and comma-joined. Permuting line items never changes the key.
func BuildDuplicateKey(orderID string, items []entities.BillLineItem) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", ErrMissingOrderID
	}
	seen := map[string]struct{}{}
	var cpts []string
	for _, li := range items {
		cpt := li.NormalizedCPT()
		if cpt == "" {
			continue
		}
		if _, ok := seen[cpt]; !ok {
			seen[cpt] = struct{}{}
			cpts = append(cpts, cpt)
		}
	}
	if len(cpts) == 0 {
		return "", ErrNoProcedureCodes
	}
	sort.Strings(cpts)
	return orderID + "|" + strings.Join(cpts, ","), nil
}

// exportState is the shared duplicate/numbering state for one export run:
// the historical ledger pre-loaded into memory plus everything allocated in
// the current batch. All access goes through the mutex so
// "check key -> allocate number -> commit key" is atomic per bill.

type exportState struct {
	mu               sync.Mutex
	historicalKeys   map[string]struct{}
	historicalOrders map[string]struct{}
	batchKeys        map[string]struct{}
	maxSeq           map[string]int
}

func newExportState(rows []entities.ExportRow) *exportState {
	s := &exportState{
		historicalKeys:   map[string]struct{}{},
		historicalOrders: map[string]struct{}{},
		batchKeys:        map[string]struct{}{},
		maxSeq:           map[string]int{},
	}
	for _, row := range rows {
		if row.DuplicateKey != "" {
			s.historicalKeys[row.DuplicateKey] = struct{}{}
		}
		if row.OrderID != "" {
			s.historicalOrders[row.OrderID] = struct{}{}
		}
		legacyID, seq, ok := splitEOBRNumber(row.EOBRNumber)
		if !ok {
			if row.EOBRNumber != "" {
				log.Printf("[export][usecase] warning: unparseable EOBR number in ledger eobr=%q", row.EOBRNumber)
			}
			continue
		}
		if seq > s.maxSeq[legacyID] {
			s.maxSeq[legacyID] = seq
		}
	}
	return s
}

// classifyAndAllocate performs the per-bill critical section: duplicate
// classification against history and the in-progress batch, then EOBR
// sequence allocation scoped to the legacy record id. The new key is
// committed before the lock is released so two bills with the same key in
// one batch can never both pass as "none".
func (s *exportState) classifyAndAllocate(key, orderID, legacyID string) (entities.DuplicateClass, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := entities.DuplicateNone
	if _, ok := s.historicalKeys[key]; ok {
		class = entities.DuplicateExact
	} else if _, ok := s.batchKeys[key]; ok {
		class = entities.DuplicateExact
	} else {
		if _, ok := s.historicalOrders[orderID]; ok {
			class = entities.DuplicateSameOrder
		}
		s.batchKeys[key] = struct{}{}
	}

	seq := s.maxSeq[legacyID] + 1
	s.maxSeq[legacyID] = seq
	return class, fmt.Sprintf("%s-%d", legacyID, seq)
}

// splitEOBRNumber parses "{legacy_id}-{n}"; legacy ids may themselves
// contain dashes, so the split is on the last one.
func splitEOBRNumber(eobr string) (legacyID string, seq int, ok bool) {
	i := strings.LastIndex(eobr, "-")
	if i <= 0 || i == len(eobr)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(eobr[i+1:])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return eobr[:i], n, true
}

// IExportUseCase turns REVIEWED, unpaid bills into payment-export rows with
// duplicate detection and EOBR numbering, appending each row to the ledger.

type IExportUseCase interface {
	RunExport(ctx context.Context, limit int) (ExportSummary, error)
}

type ExportUseCase struct {
	bills  interfaces.IBillRepository
	orders interfaces.IOrderRepository
	ledger interfaces.IExportLedger
	now    func() time.Time
	cal    *cal.BusinessCalendar
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(bills interfaces.IBillRepository, orders interfaces.IOrderRepository, ledger interfaces.IExportLedger) *ExportUseCase {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)
	return &ExportUseCase{bills: bills, orders: orders, ledger: ledger, now: time.Now, cal: c}
}

// ExportSummary aggregates one export run.

type ExportSummary struct {
	Total           int                  `json:"total"`
	NewRecords      int                  `json:"new_records"`
	ExactDuplicates int                  `json:"exact_duplicates"`
	YellowWarnings  int                  `json:"yellow_warnings"`
	Rejected        int                  `json:"rejected"`
	TotalAmount     float64              `json:"total_amount"`
	ReleaseAmount   float64              `json:"release_amount"`
	Rows            []entities.ExportRow `json:"rows"`
}

// RunExport processes every REVIEWED unpaid bill. Bills failing the
// key-construction preconditions are pushed back to MAPPED with the error
// recorded and the run continues; nothing aborts the batch.
func (u *ExportUseCase) RunExport(ctx context.Context, limit int) (ExportSummary, error) {
	if u.bills == nil {
		return ExportSummary{}, ErrRepoNotAttached
	}
	if u.orders == nil {
		return ExportSummary{}, ErrOrderRepoMissing
	}
	if u.ledger == nil {
		return ExportSummary{}, ErrLedgerMissing
	}

	history, err := u.ledger.All(ctx)
	if err != nil {
		return ExportSummary{}, err
	}
	state := newExportState(history)

	bills, err := u.bills.ListByStatus(ctx, entities.BillStatusReviewed, limit)
	if err != nil {
		return ExportSummary{}, err
	}
	log.Printf("[export][usecase] run start bills=%d history_rows=%d", len(bills), len(history))

	summary := ExportSummary{}
	for _, bill := range bills {
		if bill.Paid {
			continue
		}
		summary.Total++
		row, err := u.exportBill(ctx, bill, state)
		if err != nil {
			summary.Rejected++
			log.Printf("[export][usecase] bill rejected bill_id=%s err=%v", bill.ID, err)
			if holdErr := u.bills.UpdateDisposition(ctx, bill.ID, entities.BillStatusMapped, bill.Action, err.Error()); holdErr != nil {
				return ExportSummary{}, holdErr
			}
			continue
		}
		summary.Rows = append(summary.Rows, row)
		summary.TotalAmount += row.Amount
		switch row.DuplicateCheck {
		case entities.FlagYes:
			summary.ExactDuplicates++
		case entities.FlagYellow:
			summary.YellowWarnings++
			summary.NewRecords++
		default:
			summary.NewRecords++
		}
		if row.Released() {
			summary.ReleaseAmount += row.Amount
			if err := u.bills.MarkPaid(ctx, bill.ID); err != nil {
				return ExportSummary{}, err
			}
		}
	}
	log.Printf("[export][usecase] run done total=%d new=%d duplicates=%d yellow=%d rejected=%d release_amount=%.2f",
		summary.Total, summary.NewRecords, summary.ExactDuplicates, summary.YellowWarnings, summary.Rejected, summary.ReleaseAmount)
	return summary, nil
}

func (u *ExportUseCase) exportBill(ctx context.Context, bill entities.Bill, state *exportState) (entities.ExportRow, error) {
	items, err := u.bills.ListLineItems(ctx, bill.ID)
	if err != nil {
		return entities.ExportRow{}, err
	}
	order, err := u.orders.GetByID(ctx, bill.OrderID)
	if err != nil {
		return entities.ExportRow{}, err
	}
	if order.OrderID == "" {
		return entities.ExportRow{}, ErrOrderNotFound
	}

	// Both identifiers are required, each for a different arm: the order id
	// scopes the duplicate key, the legacy id scopes numbering. Neither may
	// silently default to empty.
	key, err := BuildDuplicateKey(order.OrderID, items)
	if err != nil {
		return entities.ExportRow{}, err
	}
	legacyID := strings.TrimSpace(order.LegacyRecordID)
	if legacyID == "" {
		return entities.ExportRow{}, ErrMissingLegacyID
	}

	class, eobr := state.classifyAndAllocate(key, order.OrderID, legacyID)

	billDate := u.earliestServiceDate(items)
	row := entities.ExportRow{
		BillID:         bill.ID,
		OrderID:        order.OrderID,
		DuplicateKey:   key,
		EOBRNumber:     eobr,
		Vendor:         strings.TrimSpace(bill.ProviderName),
		MailingAddress: bill.ProviderAddr.Format(),
		Terms:          exportTerms,
		BillDate:       billDate.Format("2006-01-02"),
		DueDate:        u.cal.WorkdaysFrom(billDate, dueDateBusinessDays).Format("2006-01-02"),
		Description:    u.formatDescription(bill, order, items, billDate),
		Memo:           billDate.Format("2006-01-02") + ", " + strings.TrimSpace(bill.PatientName),
		Amount:         roundCents(totalAllowed(items)),
		CreatedAt:      u.now().UTC(),
	}
	switch class {
	case entities.DuplicateExact:
		row.ReleasePayment = entities.FlagNo
		row.DuplicateCheck = entities.FlagYes
	case entities.DuplicateSameOrder:
		row.ReleasePayment = entities.FlagYes
		row.DuplicateCheck = entities.FlagYellow
	default:
		row.ReleasePayment = entities.FlagYes
		row.DuplicateCheck = entities.FlagNo
	}

	if err := u.ledger.Append(ctx, row); err != nil {
		return entities.ExportRow{}, err
	}
	log.Printf("[export][usecase] row appended bill_id=%s eobr=%s duplicate=%s release=%s amount=%.2f",
		bill.ID, row.EOBRNumber, class, row.ReleasePayment, row.Amount)
	return row, nil
}

// earliestServiceDate picks the bill date: the earliest parseable date of
// service, falling back to today when none parse.
func (u *ExportUseCase) earliestServiceDate(items []entities.BillLineItem) time.Time {
	var earliest time.Time
	for _, li := range items {
		dos, err := ParseServiceDate(li.DateOfService)
		if err != nil {
			log.Printf("[export][usecase] warning: unparseable date of service dos=%q line_id=%s", li.DateOfService, li.ID)
			continue
		}
		if earliest.IsZero() || dos.Before(earliest) {
			earliest = dos
		}
	}
	if earliest.IsZero() {
		return u.now()
	}
	return earliest
}

func (u *ExportUseCase) formatDescription(bill entities.Bill, order entities.Order, items []entities.BillLineItem, billDate time.Time) string {
	seen := map[string]struct{}{}
	var cpts []string
	for _, li := range items {
		cpt := li.NormalizedCPT()
		if cpt == "" {
			continue
		}
		if _, ok := seen[cpt]; !ok {
			seen[cpt] = struct{}{}
			cpts = append(cpts, cpt)
		}
	}
	sort.Strings(cpts)
	parts := []string{billDate.Format("2006-01-02")}
	if len(cpts) > 0 {
		parts = append(parts, strings.Join(cpts, ", "))
	}
	if name := strings.TrimSpace(bill.PatientName); name != "" {
		parts = append(parts, name)
	}
	parts = append(parts, order.OrderID)
	return strings.Join(parts, ", ")
}

func totalAllowed(items []entities.BillLineItem) float64 {
	total := 0.0
	for _, li := range items {
		if li.AllowedAmount != nil {
			total += *li.AllowedAmount
		}
	}
	return total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
