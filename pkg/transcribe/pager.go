package transcribe

import (
	"errors"

	"github.com/archivekit/formset/pkg/formtree"
)

// TranscriptionField pairs a transcription's identifier with the editor
// field rendered for it.
type TranscriptionField struct {
	PK    int64
	Field *formtree.Field
}

// Pager exposes exactly one transcription field at a time. Every page
// change hides the rest and re-binds the rich-text editor to the field that
// became visible.
type Pager struct {
	fields  []*TranscriptionField
	current int
	rebind  RebindFunc
}

// NewPager builds a pager over the fields, showing the first one. An empty
// field list yields an empty pager.
func NewPager(fields []*TranscriptionField, rebind RebindFunc) *Pager {
	p := &Pager{fields: fields, rebind: rebind}
	if len(fields) > 0 {
		p.apply(0)
	}
	return p
}

// Len reports the number of transcriptions.
func (p *Pager) Len() int {
	if p == nil {
		return 0
	}
	return len(p.fields)
}

// Current returns the visible transcription field.
func (p *Pager) Current() (*TranscriptionField, bool) {
	if p == nil || len(p.fields) == 0 {
		return nil, false
	}
	return p.fields[p.current], true
}

// Fields returns all transcription fields in display order.
func (p *Pager) Fields() []*TranscriptionField {
	if p == nil {
		return nil
	}
	return p.fields
}

// Goto makes page i the visible one.
func (p *Pager) Goto(i int) error {
	if p == nil || i < 0 || i >= len(p.fields) {
		return errors.New("transcribe: page out of range")
	}
	p.apply(i)
	return nil
}

// Next advances one page; it reports whether the page changed.
func (p *Pager) Next() bool {
	if p == nil || p.current+1 >= len(p.fields) {
		return false
	}
	p.apply(p.current + 1)
	return true
}

// Prev steps back one page; it reports whether the page changed.
func (p *Pager) Prev() bool {
	if p == nil || p.current == 0 || len(p.fields) == 0 {
		return false
	}
	p.apply(p.current - 1)
	return true
}

func (p *Pager) apply(i int) {
	p.current = i
	for idx, entry := range p.fields {
		entry.Field.Hidden = idx != i
	}
	if p.rebind != nil {
		p.rebind(p.fields[i].Field.ID)
	}
}
