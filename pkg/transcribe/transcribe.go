// Package transcribe is the transcription panel component: a JSON endpoint
// listing the transcriptions tied to an archival record, a client-side
// loader that fetches the list once per panel expansion, and a pager that
// shows exactly one transcription text at a time.
package transcribe

import (
	"sort"
	"strconv"
)

// Transcription is one transcription page of an archival record.
type Transcription struct {
	PK    int64
	Order int
	Text  string
}

// record is the wire shape of one list element:
// {"pk": N, "fields": {"order": "N", "transcription": "..."}}.
// Order travels as a stringified integer.
type record struct {
	PK     int64        `json:"pk"`
	Fields recordFields `json:"fields"`
}

type recordFields struct {
	Order         string `json:"order"`
	Transcription string `json:"transcription"`
}

func toWire(items []Transcription) []record {
	out := make([]record, len(items))
	for i, item := range items {
		out[i] = record{
			PK: item.PK,
			Fields: recordFields{
				Order:         strconv.Itoa(item.Order),
				Transcription: item.Text,
			},
		}
	}
	return out
}

func fromWire(records []record) []Transcription {
	out := make([]Transcription, len(records))
	for i, rec := range records {
		// A malformed order sorts as zero rather than dropping the record.
		order, _ := strconv.Atoi(rec.Fields.Order)
		out[i] = Transcription{
			PK:    rec.PK,
			Order: order,
			Text:  rec.Fields.Transcription,
		}
	}
	return out
}

// sortByOrder sorts ascending by the explicit order field; ties keep the
// original response order.
func sortByOrder(items []Transcription) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
}
