package entities

// Entry is a decoded record together with its row index in the store
// (the header is row 0, so the first record has RowIndex 1).
type Entry struct {
	RowIndex int
	Registration
}

// Ledger is the decoded, ordered content of the row store minus its header.
type Ledger []Entry

// NewLedger decodes raw rows as returned by a row store read.
func NewLedger(rows [][]string) Ledger {
	if len(rows) <= 1 {
		return Ledger{}
	}
	l := make(Ledger, 0, len(rows)-1)
	for i, row := range rows[1:] {
		l = append(l, Entry{RowIndex: i + 1, Registration: RegistrationFromRow(row)})
	}
	return l
}

// ActiveFor returns the first Registered entry of participantID in store order.
func (l Ledger) ActiveFor(participantID string) (*Entry, bool) {
	for i := range l {
		if l[i].ParticipantID == participantID && l[i].IsActive() {
			return &l[i], true
		}
	}
	return nil, false
}

func (l Ledger) CountActive(slot string) int {
	n := 0
	for i := range l {
		if l[i].Slot == slot && l[i].IsActive() {
			n++
		}
	}
	return n
}

// Active returns the Registered entries in store order.
func (l Ledger) Active() []Entry {
	out := make([]Entry, 0, len(l))
	for _, e := range l {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	return out
}
