package boxer

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, n NewBoxer) (Boxer, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(Boxer), args.Error(1)
}

func (m *mockStore) GetByID(ctx context.Context, id int64) (Boxer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Boxer), args.Error(1)
}

func (m *mockStore) GetByName(ctx context.Context, name string) (Boxer, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(Boxer), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestServiceCreate(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, zerolog.Nop())

	in := NewBoxer{Name: "Ace", Weight: 170, Height: 70, Reach: 71, Age: 30}
	expect := Boxer{ID: 1, Name: "Ace", Weight: 170, Height: 70, Reach: 71, Age: 30, WeightClass: "MIDDLEWEIGHT"}

	store.On("Create", mock.Anything, in).Return(expect, nil)

	got, err := svc.Create(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestServiceCreateRejectsInvalidBoxer(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, zerolog.Nop())

	_, err := svc.Create(context.Background(), NewBoxer{Name: "Ace", Weight: 100, Height: 70, Reach: 71, Age: 30})

	assert.Error(t, err)
	store.AssertNotCalled(t, "Create")
}

func TestServiceCreateDuplicate(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, zerolog.Nop())

	in := NewBoxer{Name: "Ace", Weight: 170, Height: 70, Reach: 71, Age: 30}
	store.On("Create", mock.Anything, in).Return(Boxer{}, ErrAlreadyExists)

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestServiceGetByName(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, zerolog.Nop())

	expect := Boxer{ID: 7, Name: "Ace"}
	store.On("GetByName", mock.Anything, "Ace").Return(expect, nil)

	got, err := svc.GetByName(context.Background(), "Ace")

	assert.NoError(t, err)
	assert.Equal(t, expect, got)
}

func TestServiceDeleteMissing(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store, zerolog.Nop())

	store.On("Delete", mock.Anything, int64(99)).Return(ErrNotFound)

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}
