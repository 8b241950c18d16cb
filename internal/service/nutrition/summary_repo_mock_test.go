package nutrition

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	UpsertFunc          func(ctx context.Context, s *domain.DailySummary) (*domain.DailySummary, error)
	ListRangeFunc       func(ctx context.Context, userID, catID uuid.UUID, from, to time.Time) ([]*domain.DailySummary, error)
	DeleteByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) error

	calls struct {
		Upsert []struct {
			Ctx context.Context
			S   *domain.DailySummary
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
			From   time.Time
			To     time.Time
		}
		DeleteByCatDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
			Date   time.Time
		}
	}
	lockUpsert          sync.RWMutex
	lockListRange       sync.RWMutex
	lockDeleteByCatDate sync.RWMutex
}

func (mock *summaryRepoMock) Upsert(ctx context.Context, s *domain.DailySummary) (*domain.DailySummary, error) {
	if mock.UpsertFunc == nil {
		panic("summaryRepoMock.UpsertFunc: method is nil but summaryRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.DailySummary
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *summaryRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.DailySummary
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *summaryRepoMock) ListRange(ctx context.Context, userID, catID uuid.UUID, from, to time.Time) ([]*domain.DailySummary, error) {
	if mock.ListRangeFunc == nil {
		panic("summaryRepoMock.ListRangeFunc: method is nil but summaryRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, CatID: catID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, catID, from, to)
}

func (mock *summaryRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CatID  uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

func (mock *summaryRepoMock) DeleteByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) error {
	if mock.DeleteByCatDateFunc == nil {
		panic("summaryRepoMock.DeleteByCatDateFunc: method is nil but summaryRepo.DeleteByCatDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, CatID: catID, Date: date}
	mock.lockDeleteByCatDate.Lock()
	mock.calls.DeleteByCatDate = append(mock.calls.DeleteByCatDate, callInfo)
	mock.lockDeleteByCatDate.Unlock()
	return mock.DeleteByCatDateFunc(ctx, userID, catID, date)
}

func (mock *summaryRepoMock) DeleteByCatDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CatID  uuid.UUID
	Date   time.Time
} {
	mock.lockDeleteByCatDate.RLock()
	calls := mock.calls.DeleteByCatDate
	mock.lockDeleteByCatDate.RUnlock()
	return calls
}
