package cat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

var _ catRepo = &catRepoMock{}

type catRepoMock struct {
	GetByIDFunc     func(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]*domain.Cat, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc      func(ctx context.Context, c *domain.Cat) (*domain.Cat, error)
	UpdateFunc      func(ctx context.Context, userID uuid.UUID, c *domain.Cat) (*domain.Cat, error)
	DeleteFunc      func(ctx context.Context, userID, catID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Cat
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			C      *domain.Cat
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockListByUser  sync.RWMutex
	lockCountByUser sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *catRepoMock) GetByID(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error) {
	if mock.GetByIDFunc == nil {
		panic("catRepoMock.GetByIDFunc: method is nil but catRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
	}{Ctx: ctx, UserID: userID, CatID: catID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, catID)
}

func (mock *catRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Cat, error) {
	if mock.ListByUserFunc == nil {
		panic("catRepoMock.ListByUserFunc: method is nil but catRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *catRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("catRepoMock.CountByUserFunc: method is nil but catRepo.CountByUser was just called")
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

func (mock *catRepoMock) Create(ctx context.Context, c *domain.Cat) (*domain.Cat, error) {
	if mock.CreateFunc == nil {
		panic("catRepoMock.CreateFunc: method is nil but catRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Cat
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *catRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Cat
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *catRepoMock) Update(ctx context.Context, userID uuid.UUID, c *domain.Cat) (*domain.Cat, error) {
	if mock.UpdateFunc == nil {
		panic("catRepoMock.UpdateFunc: method is nil but catRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		C      *domain.Cat
	}{Ctx: ctx, UserID: userID, C: c}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, c)
}

func (mock *catRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	C      *domain.Cat
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *catRepoMock) Delete(ctx context.Context, userID, catID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("catRepoMock.DeleteFunc: method is nil but catRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
	}{Ctx: ctx, UserID: userID, CatID: catID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, catID)
}

func (mock *catRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CatID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
