package entities

import "strconv"

// Column positions of the row store schema.
const (
	ColSeq = iota
	ColParticipantID
	ColDisplayName
	ColPower
	ColSlot
	ColCreatedAt
	ColStatus
	ColNote

	ColumnCount
)

// Header is row 0 of the ledger table.
var Header = []string{"No", "User ID", "Nickname", "Power", "Time", "Registered At", "Status", "Note"}

// Row serializes r in column order.
func (r *Registration) Row() []string {
	row := make([]string, ColumnCount)
	row[ColSeq] = strconv.Itoa(r.Seq)
	row[ColParticipantID] = r.ParticipantID
	row[ColDisplayName] = r.DisplayName
	row[ColPower] = r.Power
	row[ColSlot] = r.Slot
	row[ColCreatedAt] = r.CreatedAt
	row[ColStatus] = string(r.Status)
	row[ColNote] = r.Note
	return row
}

// RegistrationFromRow decodes a stored row. Missing trailing cells read as
// empty; an unparseable seq decodes as 0.
func RegistrationFromRow(row []string) Registration {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	seq, _ := strconv.Atoi(cell(ColSeq))
	return Registration{
		Seq:           seq,
		ParticipantID: cell(ColParticipantID),
		DisplayName:   cell(ColDisplayName),
		Power:         cell(ColPower),
		Slot:          cell(ColSlot),
		CreatedAt:     cell(ColCreatedAt),
		Status:        Status(cell(ColStatus)),
		Note:          cell(ColNote),
	}
}
