package nutrition

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

var _ catRepo = &catRepoMock{}

type catRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, catID uuid.UUID) (*domain.Cat, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

func (mock *catRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CatID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
