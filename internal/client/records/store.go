package records

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/iudanet/qrninja/internal/client/storage"
	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/payload"
	"github.com/iudanet/qrninja/internal/validation"
)

// Ensure, that Store does implement Service.
var _ Service = (*Store)(nil)

// Store holds the record sequence in memory and writes it through to a
// single storage slot on every mutation.
type Store struct {
	storage  storage.KeyValueStorage
	now      func() time.Time
	newID    func() string
	logger   *slog.Logger
	location *time.Location
	key      string
	records  []*models.Record
	mu       sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger used for recovered load failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithKey sets the storage slot key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLocation sets the location for zone-less event dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewStore creates an empty store over kv. Call Load to read persisted records.
func NewStore(kv storage.KeyValueStorage, opts ...Option) *Store {
	s := &Store{
		storage:  kv,
		key:      storage.DefaultKey,
		now:      time.Now,
		newID:    newRecordID,
		logger:   slog.Default(),
		location: time.Local,
		records:  []*models.Record{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load reads the persisted sequence. A missing, unreadable or corrupted slot
// yields an empty store; the failure is only logged.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []*models.Record{}

	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotNotFound) {
			s.logger.Warn("failed to read records, starting empty", "key", s.key, "error", err)
		}
		return
	}

	var loaded []*models.Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("stored records are corrupted, starting empty", "key", s.key, "error", err)
		return
	}

	assigned := 0
	for _, rec := range loaded {
		if rec == nil {
			continue
		}
		// старые записи без идентификатора получают его при загрузке
		if rec.ID == "" {
			rec.ID = s.newID()
			assigned++
		}
		s.records = append(s.records, rec)
	}

	slices.SortStableFunc(s.records, newestFirst)

	if assigned > 0 {
		// сохраняем сразу, иначе ID будут другими при следующем запуске
		if err := s.write(ctx, s.records); err != nil {
			s.logger.Warn("failed to persist assigned record ids", "count", assigned, "error", err)
			return
		}
		s.logger.Debug("assigned ids to legacy records", "count", assigned)
	}
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Append validates the draft, stamps it and inserts it at the front.
func (s *Store) Append(ctx context.Context, d Draft) (*models.Record, error) {
	rec, err := s.newRecord(d, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*models.Record, 0, len(s.records)+1)
	next = append(next, rec)
	next = append(next, s.records...)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// Generate builds the payload from the form and appends a new record with
// the form fields kept as its source.
func (s *Store) Generate(ctx context.Context, form models.Form, c models.Customization) (*models.Record, error) {
	text, err := payload.BuildIn(form, s.location)
	if err != nil {
		return nil, err
	}

	return s.Append(ctx, Draft{
		Type:          form.Type(),
		Payload:       text,
		Source:        payload.Fields(form),
		Customization: c,
	})
}

// AppendBatch creates one record per non-blank line of raw, at most
// models.MaxBatchItems, in a single write. All records share the same
// timestamp and customization; the newest-first view keeps input order.
// The second result is the number of lines cut off by the limit.
func (s *Store) AppendBatch(ctx context.Context, raw string, c models.Customization) ([]*models.Record, int, error) {
	items, dropped, err := validation.SplitBatch(raw)
	if err != nil {
		return nil, 0, err
	}

	custom, err := validation.NormalizeCustomization(c)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	batch := make([]*models.Record, 0, len(items))
	for _, item := range items {
		rec, err := s.newRecord(Draft{
			Type:          models.TypeBatch,
			Payload:       item,
			Source:        models.URLForm{URL: item}.Fields(),
			Customization: custom,
		}, now)
		if err != nil {
			return nil, 0, err
		}
		batch = append(batch, rec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*models.Record, 0, len(batch)+len(s.records))
	next = append(next, batch...)
	next = append(next, s.records...)

	if err := s.commit(ctx, next); err != nil {
		return nil, 0, err
	}

	return cloneAll(batch), dropped, nil
}

// Sorted returns a copy of all records in the given order.
func (s *Store) Sorted(order SortOrder) []*models.Record {
	s.mu.RLock()
	out := cloneAll(s.records)
	s.mu.RUnlock()

	switch order {
	case SortOldest:
		slices.SortStableFunc(out, func(a, b *models.Record) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortModified:
		slices.SortStableFunc(out, func(a, b *models.Record) int {
			return b.LastModifiedAt.Compare(a.LastModifiedAt)
		})
	case SortType:
		slices.SortStableFunc(out, func(a, b *models.Record) int {
			return cmp.Compare(a.Type, b.Type)
		})
	default:
		// последовательность уже хранится от новых к старым
	}

	return out
}

// Search returns copies of records whose payload contains query, or whose
// type tag or label does, ignoring case. An empty query matches everything.
func (s *Store) Search(query string) []*models.Record {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Record{}
	for _, rec := range s.records {
		if q == "" ||
			strings.Contains(fold.String(rec.Payload), q) ||
			strings.Contains(fold.String(string(rec.Type)), q) ||
			strings.Contains(fold.String(rec.Type.Label()), q) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Get resolves ref as a full ID or a unique ID prefix.
func (s *Store) Get(ref string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	return s.records[i].Clone(), nil
}

// Update merges the edit into the record, re-stamps lastModifiedAt and
// replaces the record in place.
func (s *Store) Update(ctx context.Context, ref string, edit Edit) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	updated := s.records[i].Clone()

	if edit.Form != nil {
		text, err := payload.BuildIn(edit.Form, s.location)
		if err != nil {
			return nil, err
		}
		updated.Payload = text
		updated.Source = payload.Fields(edit.Form)
		// элемент пакета остается пакетным при редактировании текста
		if !(updated.Type == models.TypeBatch && edit.Form.Type() == models.TypeURL) {
			updated.Type = edit.Form.Type()
		}
	}

	if edit.Customization != nil {
		custom, err := validation.NormalizeCustomization(*edit.Customization)
		if err != nil {
			return nil, err
		}
		updated.Style = custom.Style
		updated.Logo = custom.Logo
		updated.Frame = custom.Frame
	}

	now := s.now()
	if now.After(updated.LastModifiedAt) {
		updated.LastModifiedAt = now
	}

	next := slices.Clone(s.records)
	next[i] = updated

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

// Delete removes the record resolved by ref and returns it.
func (s *Store) Delete(ctx context.Context, ref string) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	removed := s.records[i]
	next := slices.Delete(slices.Clone(s.records), i, i+1)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return removed.Clone(), nil
}

// DeleteAll removes every record. It refuses to run unless confirmed.
func (s *Store) DeleteAll(ctx context.Context, confirmed bool) (int, error) {
	if !confirmed {
		return 0, ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records)
	if err := s.commit(ctx, []*models.Record{}); err != nil {
		return 0, err
	}
	return n, nil
}

// resolve must be called with the lock held.
func (s *Store) resolve(ref string) (int, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return -1, ErrRecordNotFound
	}

	found := -1
	for i, rec := range s.records {
		id := strings.ToLower(rec.ID)
		if id == ref {
			return i, nil
		}
		if strings.HasPrefix(id, ref) {
			if found >= 0 {
				return -1, fmt.Errorf("%w: %q matches more than one record", ErrAmbiguousRef, ref)
			}
			found = i
		}
	}

	if found < 0 {
		return -1, fmt.Errorf("%w: %q", ErrRecordNotFound, ref)
	}
	return found, nil
}

func (s *Store) newRecord(d Draft, now time.Time) (*models.Record, error) {
	if strings.TrimSpace(d.Payload) == "" {
		return nil, ErrEmptyPayload
	}
	if !d.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown record type %q", validation.ErrInvalidInput, d.Type)
	}

	custom, err := validation.NormalizeCustomization(d.Customization)
	if err != nil {
		return nil, err
	}

	rec := &models.Record{
		ID:             s.newID(),
		Type:           d.Type,
		Payload:        d.Payload,
		Source:         d.Source,
		CreatedAt:      now,
		LastModifiedAt: now,
		Style:          custom.Style,
		Logo:           custom.Logo,
		Frame:          custom.Frame,
	}
	// клон отвязывает запись от указателей и карты вызывающего
	return rec.Clone(), nil
}

// commit writes next and swaps it in only when the write succeeded.
// Must be called with the lock held.
func (s *Store) commit(ctx context.Context, next []*models.Record) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *Store) write(ctx context.Context, recs []*models.Record) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := s.storage.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

func newestFirst(a, b *models.Record) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

func cloneAll(recs []*models.Record) []*models.Record {
	out := make([]*models.Record, len(recs))
	for i, rec := range recs {
		out[i] = rec.Clone()
	}
	return out
}
