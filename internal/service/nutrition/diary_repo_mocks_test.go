package nutrition

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

var _ feedingRepo = &feedingRepoMock{}

type feedingRepoMock struct {
	ListByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.FeedingRecord, error)

	calls struct {
		ListByCatDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
			Date   time.Time
		}
	}
	lockListByCatDate sync.RWMutex
}

func (mock *feedingRepoMock) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.FeedingRecord, error) {
	if mock.ListByCatDateFunc == nil {
		panic("feedingRepoMock.ListByCatDateFunc: method is nil but feedingRepo.ListByCatDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, CatID: catID, Date: date}
	mock.lockListByCatDate.Lock()
	mock.calls.ListByCatDate = append(mock.calls.ListByCatDate, callInfo)
	mock.lockListByCatDate.Unlock()
	return mock.ListByCatDateFunc(ctx, userID, catID, date)
}

func (mock *feedingRepoMock) ListByCatDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CatID  uuid.UUID
	Date   time.Time
} {
	mock.lockListByCatDate.RLock()
	calls := mock.calls.ListByCatDate
	mock.lockListByCatDate.RUnlock()
	return calls
}

var _ waterRepo = &waterRepoMock{}

type waterRepoMock struct {
	ListByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error)

	calls struct {
		ListByCatDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
			Date   time.Time
		}
	}
	lockListByCatDate sync.RWMutex
}

func (mock *waterRepoMock) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error) {
	if mock.ListByCatDateFunc == nil {
		panic("waterRepoMock.ListByCatDateFunc: method is nil but waterRepo.ListByCatDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, CatID: catID, Date: date}
	mock.lockListByCatDate.Lock()
	mock.calls.ListByCatDate = append(mock.calls.ListByCatDate, callInfo)
	mock.lockListByCatDate.Unlock()
	return mock.ListByCatDateFunc(ctx, userID, catID, date)
}

var _ careRepo = &careRepoMock{}

type careRepoMock struct {
	ListByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error)

	calls struct {
		ListByCatDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
			Date   time.Time
		}
	}
	lockListByCatDate sync.RWMutex
}

func (mock *careRepoMock) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error) {
	if mock.ListByCatDateFunc == nil {
		panic("careRepoMock.ListByCatDateFunc: method is nil but careRepo.ListByCatDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, CatID: catID, Date: date}
	mock.lockListByCatDate.Lock()
	mock.calls.ListByCatDate = append(mock.calls.ListByCatDate, callInfo)
	mock.lockListByCatDate.Unlock()
	return mock.ListByCatDateFunc(ctx, userID, catID, date)
}
