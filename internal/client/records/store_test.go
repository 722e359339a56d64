package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrninja/internal/client/storage"
	"github.com/iudanet/qrninja/internal/client/storage/memory"
	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/validation"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}
}

func newTestStore(t *testing.T, kv storage.KeyValueStorage) (*Store, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(kv,
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs()),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithLocation(time.UTC),
	)
	s.Load(context.Background())
	return s, clock
}

func payloads(recs []*models.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Payload
	}
	return out
}

func TestLoad_MissingSlot(t *testing.T) {
	s, _ := newTestStore(t, memory.New())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Sorted(SortNewest))
}

func TestLoad_CorruptedBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Put(ctx, storage.DefaultKey, []byte(`{not json`)))

	var logs bytes.Buffer
	s := NewStore(kv, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	assert.NotPanics(t, func() { s.Load(ctx) })
	assert.Equal(t, 0, s.Len())
	assert.Contains(t, logs.String(), "corrupted")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestLoad_ReadErrorStartsEmpty(t *testing.T) {
	kv := &storage.KeyValueStorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("disk on fire")
		},
	}

	s, _ := newTestStore(t, kv)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_LegacyRecordsGetPersistentIDs(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	legacy := fmt.Sprintf(`[
		{"type":"url","payload":"old","createdAt":%q,"style":{}},
		{"type":"url","payload":"new","createdAt":%q,"style":{}}
	]`, older.Format(time.RFC3339), newer.Format(time.RFC3339))
	require.NoError(t, kv.Put(ctx, storage.DefaultKey, []byte(legacy)))

	s, _ := newTestStore(t, kv)

	recs := s.Sorted(SortNewest)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"new", "old"}, payloads(recs))
	for _, r := range recs {
		assert.NotEmpty(t, r.ID)
	}

	// ID записаны обратно в хранилище
	data, err := kv.Get(ctx, storage.DefaultKey)
	require.NoError(t, err)
	var stored []*models.Record
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, recs[0].ID, stored[0].ID)
	assert.Equal(t, recs[1].ID, stored[1].ID)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s, clock := newTestStore(t, kv)

	rec, err := s.Generate(ctx, models.WiFiForm{SSID: "Home", Password: "pw"}, models.DefaultCustomization())
	require.NoError(t, err)

	assert.Equal(t, "id-01", rec.ID)
	assert.Equal(t, models.TypeWiFi, rec.Type)
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:pw;H:false;;", rec.Payload)
	assert.Equal(t, clock.Now(), rec.CreatedAt)
	assert.Equal(t, rec.CreatedAt, rec.LastModifiedAt)
	assert.Equal(t, "Home", rec.Source["ssid"])
	assert.Equal(t, models.DefaultStyle(), rec.Style)

	clock.Advance(time.Minute)
	second, err := s.Generate(ctx, models.URLForm{URL: "https://example.com"}, models.Customization{})
	require.NoError(t, err)

	// новая запись всегда первая
	assert.Equal(t, []string{second.Payload, rec.Payload}, payloads(s.Sorted(SortNewest)))

	// последовательность сохранена целиком
	reloaded, _ := newTestStore(t, kv)
	assert.Equal(t, 2, reloaded.Len())
}

func TestGenerate_ValidationErrorWritesNothing(t *testing.T) {
	kv := &storage.KeyValueStorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, storage.ErrSlotNotFound
		},
	}
	s, _ := newTestStore(t, kv)

	_, err := s.Generate(context.Background(), models.WiFiForm{}, models.Customization{})
	assert.ErrorIs(t, err, validation.ErrInvalidInput)

	_, err = s.Generate(context.Background(), models.URLForm{URL: "x"}, models.Customization{
		Style: models.Style{ForegroundColor: "red"},
	})
	assert.ErrorIs(t, err, validation.ErrInvalidInput)

	assert.Empty(t, kv.PutCalls())
	assert.Equal(t, 0, s.Len())
}

func TestAppend_ClampsAndRejectsEmptyPayload(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, memory.New())

	_, err := s.Append(ctx, Draft{Type: models.TypeURL, Payload: "  "})
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = s.Append(ctx, Draft{Type: "barcode", Payload: "x"})
	assert.ErrorIs(t, err, validation.ErrInvalidInput)

	rec, err := s.Append(ctx, Draft{
		Type:    models.TypeURL,
		Payload: "x",
		Customization: models.Customization{
			Style: models.Style{Dimensions: 5000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaxDimensions, rec.Style.Dimensions)

	rec, err = s.Append(ctx, Draft{
		Type:          models.TypeURL,
		Payload:       "y",
		Customization: models.Customization{Style: models.Style{Dimensions: -10}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.MinDimensions, rec.Style.Dimensions)
}

func TestAppendBatch_TruncatesToLimitInOneWrite(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	kv := &storage.KeyValueStorageMock{
		GetFunc: mem.Get,
		PutFunc: mem.Put,
	}
	s, _ := newTestStore(t, kv)

	lines := make([]string, 60)
	for i := range lines {
		lines[i] = fmt.Sprintf("https://example.com/%d", i)
	}

	created, dropped, err := s.AppendBatch(ctx, strings.Join(lines, "\n"), models.Customization{
		Style: models.Style{ForegroundColor: "#0077B6"},
	})
	require.NoError(t, err)

	assert.Len(t, created, 50)
	assert.Equal(t, 10, dropped)
	assert.Equal(t, 50, s.Len())
	assert.Len(t, kv.PutCalls(), 1)

	recs := s.Sorted(SortNewest)
	assert.Equal(t, lines[:50], payloads(recs))
	for _, r := range recs {
		assert.Equal(t, models.TypeBatch, r.Type)
		assert.Equal(t, "#0077B6", r.Style.ForegroundColor)
		assert.Equal(t, recs[0].CreatedAt, r.CreatedAt)
	}
}

func TestAppendBatch_BlankLinesAndEmptyBatch(t *testing.T) {
	ctx := context.Background()
	kv := &storage.KeyValueStorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, storage.ErrSlotNotFound
		},
	}
	s, _ := newTestStore(t, kv)

	_, _, err := s.AppendBatch(ctx, "\n  \n\r\n", models.Customization{})
	assert.ErrorIs(t, err, validation.ErrEmptyBatch)
	assert.Empty(t, kv.PutCalls())

	kv.PutFunc = func(ctx context.Context, key string, value []byte) error { return nil }
	created, dropped, err := s.AppendBatch(ctx, "a\n\nb\r\n", models.Customization{})
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, []string{"a", "b"}, payloads(created))
}

func TestDelete_ByIdentityFromFilteredView(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t, memory.New())

	// полный список: betamax, alpha, beta; отфильтрованный: betamax, beta
	for _, u := range []string{"beta", "alpha", "betamax"} {
		_, err := s.Generate(ctx, models.URLForm{URL: u}, models.Customization{})
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	view := s.Search("BETA")
	require.Len(t, view, 2)
	assert.Equal(t, []string{"betamax", "beta"}, payloads(view))

	// второй элемент представления; по позиции в полном списке это был бы "alpha"
	target := view[1]
	removed, err := s.Delete(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "beta", removed.Payload)
	assert.Equal(t, []string{"betamax", "alpha"}, payloads(s.Sorted(SortNewest)))
}

func TestDelete_DuplicatesStayDistinct(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, memory.New())

	first, err := s.Generate(ctx, models.URLForm{URL: "same"}, models.Customization{})
	require.NoError(t, err)
	second, err := s.Generate(ctx, models.URLForm{URL: "same"}, models.Customization{})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	_, err = s.Delete(ctx, first.ID)
	require.NoError(t, err)

	left := s.Sorted(SortNewest)
	require.Len(t, left, 1)
	assert.Equal(t, second.ID, left[0].ID)
}

func TestGet_ResolvesPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), WithLogger(slog.New(slog.DiscardHandler)), WithIDGenerator(func() func() string {
		ids := []string{"0190aaaa-1", "0190aaab-2", "0190bbbb-3"}
		i := -1
		return func() string { i++; return ids[i] }
	}()))

	for i := 0; i < 3; i++ {
		_, err := s.Append(ctx, Draft{Type: models.TypeURL, Payload: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	rec, err := s.Get("0190BBBB")
	require.NoError(t, err)
	assert.Equal(t, "2", rec.Payload)

	rec, err = s.Get("0190aaaa-1")
	require.NoError(t, err)
	assert.Equal(t, "0", rec.Payload)

	_, err = s.Get("0190aaa")
	assert.ErrorIs(t, err, ErrAmbiguousRef)

	_, err = s.Get("ffff")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.Get("")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpdate_RestampsAndReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t, memory.New())

	a, err := s.Generate(ctx, models.URLForm{URL: "a"}, models.Customization{})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	b, err := s.Generate(ctx, models.URLForm{URL: "b"}, models.Customization{})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	custom := models.Customization{
		Style: models.Style{BackgroundColor: "#0D0D0D", ForegroundColor: "#39FF14", ErrorCorrection: "H"},
		Frame: &models.Frame{Style: models.FrameRounded, CaptionText: "Scan"},
	}
	updated, err := s.Update(ctx, a.ID, Edit{
		Customization: &custom,
		Form:          models.PhoneForm{Phone: "+1 555"},
	})
	require.NoError(t, err)

	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clock.Now(), updated.LastModifiedAt)
	assert.Equal(t, models.TypePhone, updated.Type)
	assert.Equal(t, "tel:+1555", updated.Payload)
	assert.Equal(t, "#39FF14", updated.Style.ForegroundColor)
	require.NotNil(t, updated.Frame)
	assert.Equal(t, models.CaptionBottom, updated.Frame.CaptionPosition)

	// позиция в последовательности не меняется
	assert.Equal(t, []string{b.ID, a.ID}, []string{s.Sorted(SortNewest)[0].ID, s.Sorted(SortNewest)[1].ID})

	// SortModified поднимает отредактированную запись
	assert.Equal(t, a.ID, s.Sorted(SortModified)[0].ID)
}

func TestUpdate_LastModifiedNeverDecreases(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t, memory.New())

	rec, err := s.Generate(ctx, models.URLForm{URL: "a"}, models.Customization{})
	require.NoError(t, err)

	clock.Advance(-time.Hour)
	updated, err := s.Update(ctx, rec.ID, Edit{})
	require.NoError(t, err)
	assert.Equal(t, rec.LastModifiedAt, updated.LastModifiedAt)
}

func TestUpdate_BatchItemStaysBatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, memory.New())

	created, _, err := s.AppendBatch(ctx, "one\ntwo", models.Customization{})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created[0].ID, Edit{Form: models.URLForm{URL: "uno"}})
	require.NoError(t, err)
	assert.Equal(t, models.TypeBatch, updated.Type)
	assert.Equal(t, "uno", updated.Payload)
}

func TestUpdate_InvalidEditLeavesRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, memory.New())

	rec, err := s.Generate(ctx, models.URLForm{URL: "a"}, models.Customization{})
	require.NoError(t, err)

	_, err = s.Update(ctx, rec.ID, Edit{Form: models.EmailForm{}})
	assert.ErrorIs(t, err, validation.ErrInvalidInput)

	_, err = s.Update(ctx, "missing", Edit{})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestWriteFailure_LeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	failing := false
	kv := &storage.KeyValueStorageMock{
		GetFunc: mem.Get,
		PutFunc: func(ctx context.Context, key string, value []byte) error {
			if failing {
				return errors.New("quota exceeded")
			}
			return mem.Put(ctx, key, value)
		},
	}
	s, _ := newTestStore(t, kv)

	rec, err := s.Generate(ctx, models.URLForm{URL: "keep"}, models.Customization{})
	require.NoError(t, err)
	before := s.Sorted(SortNewest)

	failing = true

	_, err = s.Generate(ctx, models.URLForm{URL: "new"}, models.Customization{})
	assert.ErrorContains(t, err, "quota exceeded")

	_, _, err = s.AppendBatch(ctx, "a\nb", models.Customization{})
	assert.Error(t, err)

	_, err = s.Update(ctx, rec.ID, Edit{Form: models.URLForm{URL: "changed"}})
	assert.Error(t, err)

	_, err = s.Delete(ctx, rec.ID)
	assert.Error(t, err)

	_, err = s.DeleteAll(ctx, true)
	assert.Error(t, err)

	assert.Equal(t, before, s.Sorted(SortNewest))
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	s, _ := newTestStore(t, kv)

	_, _, err := s.AppendBatch(ctx, "a\nb\nc", models.Customization{})
	require.NoError(t, err)

	_, err = s.DeleteAll(ctx, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Equal(t, 3, s.Len())

	n, err := s.DeleteAll(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, s.Len())

	data, err := kv.Get(ctx, storage.DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t, memory.New())

	forms := []models.Form{
		models.URLForm{URL: "https://ÉCOLE.example"},
		models.VCardForm{FirstName: "Jane"},
		models.WiFiForm{SSID: "Office"},
	}
	for _, f := range forms {
		_, err := s.Generate(ctx, f, models.Customization{})
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	tests := []struct {
		query string
		want  []models.QRType
	}{
		{query: "école", want: []models.QRType{models.TypeURL}},
		{query: "contact", want: []models.QRType{models.TypeVCard}},
		{query: "WIFI", want: []models.QRType{models.TypeWiFi}},
		{query: "jane", want: []models.QRType{models.TypeVCard}},
		{query: "", want: []models.QRType{models.TypeWiFi, models.TypeVCard, models.TypeURL}},
		{query: "nothing-here", want: []models.QRType{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := s.Search(tt.query)
			types := make([]models.QRType, len(got))
			for i, r := range got {
				types[i] = r.Type
			}
			assert.Equal(t, tt.want, types)
		})
	}

	// результат поиска не меняет хранилище
	s.Search("jane")[0].Payload = "mutated"
	assert.NotContains(t, payloads(s.Sorted(SortNewest)), "mutated")
}

func TestSorted(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t, memory.New())

	_, err := s.Generate(ctx, models.WiFiForm{SSID: "w"}, models.Customization{})
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = s.Generate(ctx, models.URLForm{URL: "u"}, models.Customization{})
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = s.Generate(ctx, models.EmailForm{Email: "e@x"}, models.Customization{})
	require.NoError(t, err)

	types := func(recs []*models.Record) []models.QRType {
		out := make([]models.QRType, len(recs))
		for i, r := range recs {
			out[i] = r.Type
		}
		return out
	}

	assert.Equal(t, []models.QRType{"email", "url", "wifi"}, types(s.Sorted(SortNewest)))
	assert.Equal(t, []models.QRType{"wifi", "url", "email"}, types(s.Sorted(SortOldest)))
	assert.Equal(t, []models.QRType{"email", "url", "wifi"}, types(s.Sorted(SortType)))
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, o)

	o, err = ParseSortOrder("Modified")
	require.NoError(t, err)
	assert.Equal(t, SortModified, o)

	_, err = ParseSortOrder("random")
	assert.Error(t, err)
}
