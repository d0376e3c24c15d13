package sqlitecache

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// The cache documents keep the shape the legacy client persisted: lowercase
// hyphenated statuses and string-encoded dates/amounts. The adapters below
// translate between that shape and the domain in both directions and reject
// values that drifted, so mismatches surface at the boundary instead of
// deep inside a service.

const (
	dateLayout = "2006-01-02"
)

var crewStatusToDoc = map[domain.CrewStatus]string{
	domain.StatusOnBoard:      "on-board",
	domain.StatusAtHome:       "at-home",
	domain.StatusUnassigned:   "unassigned",
	domain.StatusOutOfService: "out-of-service",
	domain.StatusSick:         "sick",
}

var crewStatusFromDoc = invert(crewStatusToDoc)

var standBackStatusToDoc = map[domain.StandBackStatus]string{
	domain.StandBackOpen:               "open",
	domain.StandBackCompleted:          "completed",
	domain.StandBackArchivedTerminated: "archived-terminated",
}

var standBackStatusFromDoc = invert(standBackStatusToDoc)

var loanStatusToDoc = map[domain.LoanStatus]string{
	domain.LoanOpen:      "open",
	domain.LoanCompleted: "completed",
}

var loanStatusFromDoc = invert(loanStatusToDoc)

func invert[K comparable, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

type auditDoc struct {
	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

func toAuditDoc(a domain.AuditFields) auditDoc {
	return auditDoc{
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		CreatedBy: a.CreatedBy,
		UpdatedAt: a.LastUpdatedAt.Format(time.RFC3339),
		UpdatedBy: a.LastUpdatedBy,
	}
}

func fromAuditDoc(d auditDoc) (domain.AuditFields, error) {
	var out domain.AuditFields
	if d.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, d.CreatedAt)
		if err != nil {
			return out, fmt.Errorf("bad createdAt %q: %w", d.CreatedAt, err)
		}
		out.CreatedAt = t
	}
	if d.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339, d.UpdatedAt)
		if err != nil {
			return out, fmt.Errorf("bad updatedAt %q: %w", d.UpdatedAt, err)
		}
		out.LastUpdatedAt = t
	}
	out.CreatedBy = d.CreatedBy
	out.LastUpdatedBy = d.UpdatedBy
	return out, nil
}

type personDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	Regime    string `json:"regime,omitempty"`
	Status    string `json:"status"`
	ShipID    string `json:"shipId,omitempty"`
	auditDoc
}

func encodePerson(p domain.Person) (personDoc, error) {
	status, ok := crewStatusToDoc[p.Status]
	if !ok {
		return personDoc{}, fmt.Errorf("unknown crew status %q", p.Status)
	}
	doc := personDoc{
		ID:       p.PersonID,
		Name:     p.Name,
		Position: p.Position,
		Regime:   string(p.Regime),
		Status:   status,
		auditDoc: toAuditDoc(p.AuditFields),
	}
	if p.StartDate != nil {
		doc.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.ShipID != nil {
		doc.ShipID = *p.ShipID
	}
	return doc, nil
}

func decodePerson(doc personDoc) (domain.Person, error) {
	status, ok := crewStatusFromDoc[doc.Status]
	if !ok {
		return domain.Person{}, fmt.Errorf("unknown cached crew status %q", doc.Status)
	}
	audit, err := fromAuditDoc(doc.auditDoc)
	if err != nil {
		return domain.Person{}, err
	}
	p := domain.Person{
		PersonID:    doc.ID,
		Name:        doc.Name,
		Position:    doc.Position,
		Regime:      domain.Regime(doc.Regime),
		Status:      status,
		AuditFields: audit,
	}
	if doc.StartDate != "" {
		t, err := time.ParseInLocation(dateLayout, doc.StartDate, time.Local)
		if err != nil {
			return domain.Person{}, fmt.Errorf("bad cached startDate %q: %w", doc.StartDate, err)
		}
		p.StartDate = &t
	}
	if doc.ShipID != "" {
		shipID := doc.ShipID
		p.ShipID = &shipID
	}
	return p, nil
}

type shipDoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	auditDoc
}

func encodeShip(s domain.Ship) (shipDoc, error) {
	return shipDoc{
		ID:       s.ShipID,
		Name:     s.Name,
		Capacity: s.Capacity,
		auditDoc: toAuditDoc(s.AuditFields),
	}, nil
}

func decodeShip(doc shipDoc) (domain.Ship, error) {
	audit, err := fromAuditDoc(doc.auditDoc)
	if err != nil {
		return domain.Ship{}, err
	}
	return domain.Ship{
		ShipID:      doc.ID,
		Name:        doc.Name,
		Capacity:    doc.Capacity,
		AuditFields: audit,
	}, nil
}

type repaymentEventDoc struct {
	Date string `json:"date"`
	Days int    `json:"days"`
	Note string `json:"note,omitempty"`
}

type standBackDoc struct {
	ID        string              `json:"id"`
	PersonID  string              `json:"personId"`
	Required  int                 `json:"requiredDays"`
	Completed int                 `json:"completedDays"`
	Remaining int                 `json:"remainingDays"`
	Status    string              `json:"status"`
	History   []repaymentEventDoc `json:"history,omitempty"`
	auditDoc
}

func encodeStandBack(r domain.StandBackRecord) (standBackDoc, error) {
	status, ok := standBackStatusToDoc[r.Status]
	if !ok {
		return standBackDoc{}, fmt.Errorf("unknown stand-back status %q", r.Status)
	}
	doc := standBackDoc{
		ID:        r.RecordID,
		PersonID:  r.PersonID,
		Required:  r.RequiredDays,
		Completed: r.CompletedDays,
		Remaining: r.RemainingDays,
		Status:    status,
		auditDoc:  toAuditDoc(r.AuditFields),
	}
	for _, ev := range r.History {
		doc.History = append(doc.History, repaymentEventDoc{
			Date: ev.Date.Format(dateLayout),
			Days: ev.DaysRepaid,
			Note: ev.Note,
		})
	}
	return doc, nil
}

func decodeStandBack(doc standBackDoc) (domain.StandBackRecord, error) {
	status, ok := standBackStatusFromDoc[doc.Status]
	if !ok {
		return domain.StandBackRecord{}, fmt.Errorf("unknown cached stand-back status %q", doc.Status)
	}
	audit, err := fromAuditDoc(doc.auditDoc)
	if err != nil {
		return domain.StandBackRecord{}, err
	}
	rec := domain.StandBackRecord{
		RecordID:      doc.ID,
		PersonID:      doc.PersonID,
		RequiredDays:  doc.Required,
		CompletedDays: doc.Completed,
		RemainingDays: doc.Remaining,
		Status:        status,
		AuditFields:   audit,
	}
	for _, ev := range doc.History {
		t, err := time.ParseInLocation(dateLayout, ev.Date, time.Local)
		if err != nil {
			return domain.StandBackRecord{}, fmt.Errorf("bad cached repayment date %q: %w", ev.Date, err)
		}
		rec.History = append(rec.History, domain.RepaymentEvent{
			Date:       t,
			DaysRepaid: ev.Days,
			Note:       ev.Note,
		})
	}
	return rec, nil
}

type paymentEventDoc struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type loanDoc struct {
	ID        string            `json:"id"`
	PersonID  string            `json:"personId"`
	Amount    string            `json:"amount"`
	Paid      string            `json:"amountPaid"`
	Remaining string            `json:"amountRemaining"`
	Status    string            `json:"status"`
	History   []paymentEventDoc `json:"paymentHistory,omitempty"`
	auditDoc
}

func encodeLoan(l domain.Loan) (loanDoc, error) {
	status, ok := loanStatusToDoc[l.Status]
	if !ok {
		return loanDoc{}, fmt.Errorf("unknown loan status %q", l.Status)
	}
	doc := loanDoc{
		ID:        l.LoanID,
		PersonID:  l.PersonID,
		Amount:    l.Amount.String(),
		Paid:      l.AmountPaid.String(),
		Remaining: l.AmountRemaining.String(),
		Status:    status,
		auditDoc:  toAuditDoc(l.AuditFields),
	}
	for _, ev := range l.PaymentHistory {
		doc.History = append(doc.History, paymentEventDoc{
			Date:   ev.Date.Format(dateLayout),
			Amount: ev.Amount.String(),
			Note:   ev.Note,
		})
	}
	return doc, nil
}

func decodeLoan(doc loanDoc) (domain.Loan, error) {
	status, ok := loanStatusFromDoc[doc.Status]
	if !ok {
		return domain.Loan{}, fmt.Errorf("unknown cached loan status %q", doc.Status)
	}
	audit, err := fromAuditDoc(doc.auditDoc)
	if err != nil {
		return domain.Loan{}, err
	}
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("bad cached loan amount %q: %w", doc.Amount, err)
	}
	paid, err := decimal.NewFromString(doc.Paid)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("bad cached loan amountPaid %q: %w", doc.Paid, err)
	}
	remaining, err := decimal.NewFromString(doc.Remaining)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("bad cached loan amountRemaining %q: %w", doc.Remaining, err)
	}
	loan := domain.Loan{
		LoanID:          doc.ID,
		PersonID:        doc.PersonID,
		Amount:          amount,
		AmountPaid:      paid,
		AmountRemaining: remaining,
		Status:          status,
		AuditFields:     audit,
	}
	for _, ev := range doc.History {
		t, err := time.ParseInLocation(dateLayout, ev.Date, time.Local)
		if err != nil {
			return domain.Loan{}, fmt.Errorf("bad cached payment date %q: %w", ev.Date, err)
		}
		amt, err := decimal.NewFromString(ev.Amount)
		if err != nil {
			return domain.Loan{}, fmt.Errorf("bad cached payment amount %q: %w", ev.Amount, err)
		}
		loan.PaymentHistory = append(loan.PaymentHistory, domain.PaymentEvent{
			Date:   t,
			Amount: amt,
			Note:   ev.Note,
		})
	}
	return loan, nil
}
