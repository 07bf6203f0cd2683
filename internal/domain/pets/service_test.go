package pets

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"petcare-registry/internal/adapters/storage/memory"
	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/events"
	"petcare-registry/internal/ports/kv"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const device = "dev-1"

// recordingPublisher guarda lo publicado para verificarlo.
type recordingPublisher struct {
	mu   sync.Mutex
	subs []string
	err  error
}

func (p *recordingPublisher) Publish(ctx context.Context, subject string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, subject)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func sequentialIDs() func() (string, error) {
	var mu sync.Mutex
	n := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("pet-%d", n), nil
	}
}

func newTestService(t *testing.T, opts ...Option) (*Service, kv.Store) {
	t.Helper()
	store := memory.NewKVStore()
	ids := sequentialIDs()
	repo := NewRepository(store, logger.NewNop(), ids)
	return NewService(repo, append([]Option{WithIDFunc(ids)}, opts...)...), store
}

func bella() PetInput {
	return PetInput{PetName: "Bella", Breed: "Labrador", Age: 3}
}

func TestService_Scenario_CreateEditRemove(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Submit(ctx, device, bella(), "")
	require.NoError(t, err)
	require.True(t, created.Created)
	require.Len(t, created.Pets, 1)
	assert.Equal(t, Pet{ID: created.AffectedID, PetName: "Bella", Breed: "Labrador", Age: 3, History: ""}, created.Pets[0])

	edit := bella()
	edit.PetName = "Bella Jr."
	edited, err := svc.Submit(ctx, device, edit, created.AffectedID)
	require.NoError(t, err)
	assert.False(t, edited.Created)
	assert.Equal(t, created.AffectedID, edited.AffectedID)
	require.Len(t, edited.Pets, 1)
	assert.Equal(t, "Bella Jr.", edited.Pets[0].PetName)
	assert.Equal(t, created.AffectedID, edited.Pets[0].ID)

	left, err := svc.Remove(ctx, device, created.AffectedID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestService_Submit_CreateAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	names := []string{"Bella", "Milo", "Luna"}
	for i, name := range names {
		in := bella()
		in.PetName = name
		res, err := svc.Submit(ctx, device, in, "")
		require.NoError(t, err)
		assert.Len(t, res.Pets, i+1, "create must grow the collection by exactly one")
		assert.Equal(t, name, res.Pets[i].PetName)
	}

	list, err := svc.List(ctx, device)
	require.NoError(t, err)
	for i, name := range names {
		assert.Equal(t, name, list[i].PetName)
	}
}

func TestService_Submit_EditKeepsLengthAndID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	a, err := svc.Submit(ctx, device, bella(), "")
	require.NoError(t, err)
	b, err := svc.Submit(ctx, device, PetInput{PetName: "Milo", Breed: "Beagle", Age: 1}, "")
	require.NoError(t, err)

	res, err := svc.Submit(ctx, device, PetInput{PetName: "Bella", Breed: "Mixed", Age: 4.5, History: "allergic"}, a.AffectedID)
	require.NoError(t, err)
	require.Len(t, res.Pets, 2)
	assert.Equal(t, Pet{ID: a.AffectedID, PetName: "Bella", Breed: "Mixed", Age: 4.5, History: "allergic"}, res.Pets[0])
	assert.Equal(t, b.AffectedID, res.Pets[1].ID)
}

func TestService_Submit_StaleEditFailsAndKeepsState(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, _ := newTestService(t, WithPublisher(pub))

	_, err := svc.Submit(ctx, device, bella(), "")
	require.NoError(t, err)
	before, err := svc.List(ctx, device)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, device, PetInput{PetName: "Ghost", Breed: "None"}, "does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)

	after, err := svc.List(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{events.SubjectPetSaved}, pub.subs)
}

func TestService_Submit_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), device, PetInput{Breed: "Labrador"}, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(context.Background(), "", bella(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, _ := newTestService(t, WithPublisher(pub))

	a, err := svc.Submit(ctx, device, bella(), "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, device, PetInput{PetName: "Milo", Breed: "Beagle"}, "")
	require.NoError(t, err)

	// inexistente: no-op
	items, err := svc.Remove(ctx, device, "nope")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = svc.Remove(ctx, device, a.AffectedID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milo", items[0].PetName)

	assert.Equal(t, []string{events.SubjectPetSaved, events.SubjectPetSaved, events.SubjectPetRemoved}, pub.subs)
}

func TestService_PublishFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, WithPublisher(&recordingPublisher{err: errors.New("nats down")}))

	res, err := svc.Submit(ctx, device, bella(), "")
	require.NoError(t, err)
	assert.Len(t, res.Pets, 1)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.Submit(ctx, device, bella(), "")
	require.NoError(t, err)

	p, err := svc.GetByID(ctx, device, res.AffectedID)
	require.NoError(t, err)
	assert.Equal(t, "Bella", p.PetName)

	_, err = svc.GetByID(ctx, device, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DevicesAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Submit(ctx, "dev-a", bella(), "")
	require.NoError(t, err)

	items, err := svc.List(ctx, "dev-b")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_MigratesLegacyProfile(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	require.NoError(t, store.Set(ctx, device, LegacyProfileKey,
		[]byte(`{"petName":"Rex","breed":"Boxer","age":"6","history":"hip surgery"}`)))

	items, err := svc.List(ctx, device)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, Pet{ID: "pet-1", PetName: "Rex", Breed: "Boxer", Age: 6, History: "hip surgery"}, items[0])

	_, err = store.Get(ctx, device, LegacyProfileKey)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// el registro migrado se edita como cualquier otro
	res, err := svc.Submit(ctx, device, PetInput{PetName: "Rex", Breed: "Boxer", Age: 7}, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, float64(7), res.Pets[0].Age)
}

func TestService_InvalidLegacyProfileIsNotMigrated(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	require.NoError(t, store.Set(ctx, device, LegacyProfileKey, []byte(`{"petName":"","breed":"Boxer","age":1}`)))

	items, err := svc.List(ctx, device)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_SubmitDelayHonorsCancellation(t *testing.T) {
	svc, _ := newTestService(t, WithSubmitDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Submit(ctx, device, bella(), "")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	items, err := svc.List(context.Background(), device)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_ConcurrentSubmitsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, WithSubmitDelay(time.Millisecond))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, device, bella(), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := svc.List(ctx, device)
	require.NoError(t, err)
	assert.Len(t, items, n)
	assert.NoError(t, CheckCollection(items))
}
