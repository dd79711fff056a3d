package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/archivekit/formset/pkg/formtree"
)

// Loader fetches a record's transcription list and builds the pager backing
// the transcription panel. One fetch per panel expansion; a failed fetch is
// logged and yields an empty pager, never a user-facing error.
type Loader struct {
	base    string
	client  *http.Client
	logger  *zap.Logger
	policy  *bluemonday.Policy
	rebind  RebindFunc
	prefix  string
}

// RebindFunc re-attaches the rich-text editor to the field that just became
// visible. Invoked with the field's element identifier on every page change.
type RebindFunc func(fieldID string)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the HTTP client used for the fetch.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithLogger sets the diagnostic logger. Defaults to a nop logger.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSanitizer overrides the HTML sanitisation policy applied to
// transcription text before it reaches an editor field.
func WithSanitizer(policy *bluemonday.Policy) LoaderOption {
	return func(l *Loader) {
		if policy != nil {
			l.policy = policy
		}
	}
}

// WithRebind sets the editor rebind hook invoked on every page change.
func WithRebind(rebind RebindFunc) LoaderOption {
	return func(l *Loader) {
		l.rebind = rebind
	}
}

// WithFieldPrefix overrides the group prefix used for the generated
// transcription fields.
func WithFieldPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		if prefix != "" {
			l.prefix = prefix
		}
	}
}

// NewLoader constructs a loader for the record base URL (the transcription
// list lives at `<base>/<recordID>/transcriptions`).
func NewLoader(base string, options ...LoaderOption) *Loader {
	l := &Loader{
		base:   base,
		client: http.DefaultClient,
		logger: zap.NewNop(),
		policy: bluemonday.UGCPolicy(),
		prefix: "transcriptions",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches the record's transcriptions, sorts them ascending by order
// (stable for ties), sanitises the text, and returns a pager showing the
// first transcription. On fetch failure the error is logged and an empty
// pager is returned; the panel simply shows no transcriptions.
func (l *Loader) Load(ctx context.Context, recordID int64) *Pager {
	items, err := l.fetch(ctx, recordID)
	if err != nil {
		l.logger.Warn("transcription fetch failed",
			zap.Int64("record_id", recordID), zap.Error(err))
		return NewPager(nil, l.rebind)
	}

	sortByOrder(items)

	fields := make([]*TranscriptionField, len(items))
	for i, item := range items {
		name := l.prefix + "-" + strconv.Itoa(i) + "-transcription"
		fields[i] = &TranscriptionField{
			PK: item.PK,
			Field: &formtree.Field{
				Name:  name,
				ID:    formtree.FieldID(name),
				Kind:  formtree.KindRichText,
				Value: l.policy.Sanitize(item.Text),
			},
		}
	}
	return NewPager(fields, l.rebind)
}

func (l *Loader) fetch(ctx context.Context, recordID int64) ([]Transcription, error) {
	url := fmt.Sprintf("%s/%d/transcriptions", l.base, recordID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("transcribe: build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcribe: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcribe: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("transcribe: decode response: %w", err)
	}
	return fromWire(records), nil
}
