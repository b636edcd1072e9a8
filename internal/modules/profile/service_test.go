package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/kv"
)

func validProfile() Profile {
	return Profile{Name: "Nour Adel", Phone: "01001234567", Address: "12 Corniche St, Alexandria"}
}

func TestStateStartsUngated(t *testing.T) {
	svc := NewService(NewKVRepository(kv.NewMemory()))

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Ungated, state)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveGatesAndTrims(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := NewService(NewKVRepository(store))

	in := validProfile()
	in.Name = "  Nour Adel "
	in.AltPhone = " 0122 "
	saved, err := svc.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Nour Adel", saved.Name)
	assert.Equal(t, "0122", saved.AltPhone)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, Gated, state)

	raw, ok, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Nour Adel","phone":"01001234567","address":"12 Corniche St, Alexandria","altPhone":"0122"}`, raw)

	// A fresh service over the same store sees the gate already passed.
	state, err = NewService(NewKVRepository(store)).State(ctx)
	require.NoError(t, err)
	assert.Equal(t, Gated, state)
}

func TestSaveValidationOrder(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Profile)
		field string
	}{
		{"empty name", func(p *Profile) { p.Name = "" }, "name"},
		{"blank name", func(p *Profile) { p.Name = "   " }, "name"},
		{"empty phone", func(p *Profile) { p.Phone = "" }, "phone"},
		{"empty address", func(p *Profile) { p.Address = "\t" }, "address"},
		{"everything empty", func(p *Profile) { *p = Profile{} }, "name"},
		{"phone and address empty", func(p *Profile) { p.Phone, p.Address = "", "" }, "phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := kv.NewMemory()
			svc := NewService(NewKVRepository(store))

			p := validProfile()
			tc.edit(&p)
			_, err := svc.Save(ctx, p)
			ve, ok := errs.AsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tc.field, ve.Field)

			_, present, err := store.Get(ctx, StorageKey)
			require.NoError(t, err)
			assert.False(t, present)

			state, err := svc.State(ctx)
			require.NoError(t, err)
			assert.Equal(t, Ungated, state)
		})
	}
}

func TestAltPhoneIsOptional(t *testing.T) {
	saved, err := NewService(NewKVRepository(kv.NewMemory())).Save(context.Background(), validProfile())
	require.NoError(t, err)
	assert.Empty(t, saved.AltPhone)
}

func TestCorruptProfileReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, StorageKey, "{not json"))

	svc := NewService(NewKVRepository(store))
	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, Ungated, state)
}

func TestClearReturnsToUngated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewKVRepository(kv.NewMemory()))
	_, err := svc.Save(ctx, validProfile())
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))
	state, err := svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, Ungated, state)
}

type failingRepo struct{ Repository }

func (failingRepo) Get(context.Context) (*Profile, error) { return nil, nil }
func (failingRepo) Put(context.Context, *Profile) error   { return errors.New("disk full") }

func TestSaveSurfacesWriteFailure(t *testing.T) {
	_, err := NewService(failingRepo{}).Save(context.Background(), validProfile())
	require.Error(t, err)
	_, isValidation := errs.AsValidation(err)
	assert.False(t, isValidation)
}

func TestCreateRefusesOnceGated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewKVRepository(kv.NewMemory()))

	_, err := svc.Create(ctx, validProfile())
	require.NoError(t, err)

	second := validProfile()
	second.Name = "Someone Else"
	_, err = svc.Create(ctx, second)
	assert.ErrorIs(t, err, errs.ErrProfileExists)

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nour Adel", p.Name)
}

func TestConcurrentCreateGatesOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewKVRepository(kv.NewMemory()))

	const callers = 16
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, validProfile())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrProfileExists)
	}
	assert.Equal(t, 1, created)
}
