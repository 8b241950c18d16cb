package food

import (
	"context"
	"sync"

	"github.com/google/uuid"

	foodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/food"
	"github.com/whiskerlog/catcare-backend/internal/domain"
)

var _ foodRepo = &foodRepoMock{}

type foodRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID, productID uuid.UUID) (*domain.FoodProduct, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID, filter foodrepo.Filter) ([]*domain.FoodProduct, error)
	CreateFunc      func(ctx context.Context, p *domain.FoodProduct) (*domain.FoodProduct, error)
	UpdateFunc      func(ctx context.Context, userID uuid.UUID, p *domain.FoodProduct) (*domain.FoodProduct, error)
	DeleteFunc      func(ctx context.Context, userID, productID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProductID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter foodrepo.Filter
		}
		Create []struct {
			Ctx context.Context
			P   *domain.FoodProduct
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			P      *domain.FoodProduct
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProductID uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockCountByUser sync.RWMutex
	lockList        sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *foodRepoMock) GetByID(ctx context.Context, userID, productID uuid.UUID) (*domain.FoodProduct, error) {
	if mock.GetByIDFunc == nil {
		panic("foodRepoMock.GetByIDFunc: method is nil but foodRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProductID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProductID: productID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, productID)
}

func (mock *foodRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("foodRepoMock.CountByUserFunc: method is nil but foodRepo.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *foodRepoMock) List(ctx context.Context, userID uuid.UUID, filter foodrepo.Filter) ([]*domain.FoodProduct, error) {
	if mock.ListFunc == nil {
		panic("foodRepoMock.ListFunc: method is nil but foodRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter foodrepo.Filter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *foodRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter foodrepo.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *foodRepoMock) Create(ctx context.Context, p *domain.FoodProduct) (*domain.FoodProduct, error) {
	if mock.CreateFunc == nil {
		panic("foodRepoMock.CreateFunc: method is nil but foodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.FoodProduct
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *foodRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.FoodProduct
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *foodRepoMock) Update(ctx context.Context, userID uuid.UUID, p *domain.FoodProduct) (*domain.FoodProduct, error) {
	if mock.UpdateFunc == nil {
		panic("foodRepoMock.UpdateFunc: method is nil but foodRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		P      *domain.FoodProduct
	}{Ctx: ctx, UserID: userID, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, p)
}

func (mock *foodRepoMock) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("foodRepoMock.DeleteFunc: method is nil but foodRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProductID uuid.UUID
	}{Ctx: ctx, UserID: userID, ProductID: productID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, productID)
}

func (mock *foodRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProductID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
