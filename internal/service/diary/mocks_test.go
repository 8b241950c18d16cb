package diary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
	"github.com/whiskerlog/catcare-backend/internal/service/nutrition"
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

var _ feedingRepo = &feedingRepoMock{}

type feedingRepoMock struct {
	GetByIDFunc        func(ctx context.Context, userID, recordID uuid.UUID) (*domain.FeedingRecord, error)
	CountByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) (int, error)
	ListRangeFunc      func(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.FeedingRecord, error)
	CreateFunc         func(ctx context.Context, rec *domain.FeedingRecord) (*domain.FeedingRecord, error)
	UpdateFunc         func(ctx context.Context, userID uuid.UUID, rec *domain.FeedingRecord) (*domain.FeedingRecord, error)
	DeleteFunc         func(ctx context.Context, userID, recordID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.FeedingRecord
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CatID  uuid.UUID
			Filter domain.DiaryFilter
		}
		Delete []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecordID uuid.UUID
		}
	}
	lockCreate    sync.RWMutex
	lockListRange sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *feedingRepoMock) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.FeedingRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("feedingRepoMock.GetByIDFunc: method is nil but feedingRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, recordID)
}

func (mock *feedingRepoMock) CountByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) (int, error) {
	if mock.CountByCatDateFunc == nil {
		panic("feedingRepoMock.CountByCatDateFunc: method is nil but feedingRepo.CountByCatDate was just called")
	}
	return mock.CountByCatDateFunc(ctx, userID, catID, date)
}

func (mock *feedingRepoMock) ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.FeedingRecord, error) {
	if mock.ListRangeFunc == nil {
		panic("feedingRepoMock.ListRangeFunc: method is nil but feedingRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CatID  uuid.UUID
		Filter domain.DiaryFilter
	}{Ctx: ctx, UserID: userID, CatID: catID, Filter: filter}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, catID, filter)
}

func (mock *feedingRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CatID  uuid.UUID
	Filter domain.DiaryFilter
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

func (mock *feedingRepoMock) Create(ctx context.Context, rec *domain.FeedingRecord) (*domain.FeedingRecord, error) {
	if mock.CreateFunc == nil {
		panic("feedingRepoMock.CreateFunc: method is nil but feedingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.FeedingRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *feedingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.FeedingRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedingRepoMock) Update(ctx context.Context, userID uuid.UUID, rec *domain.FeedingRecord) (*domain.FeedingRecord, error) {
	if mock.UpdateFunc == nil {
		panic("feedingRepoMock.UpdateFunc: method is nil but feedingRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, rec)
}

func (mock *feedingRepoMock) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("feedingRepoMock.DeleteFunc: method is nil but feedingRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecordID uuid.UUID
	}{Ctx: ctx, UserID: userID, RecordID: recordID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, recordID)
}

func (mock *feedingRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	RecordID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ waterRepo = &waterRepoMock{}

type waterRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID, recordID uuid.UUID) (*domain.WaterRecord, error)
	ListByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error)
	ListRangeFunc     func(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.WaterRecord, error)
	CreateFunc        func(ctx context.Context, rec *domain.WaterRecord) (*domain.WaterRecord, error)
	UpdateFunc        func(ctx context.Context, userID uuid.UUID, rec *domain.WaterRecord) (*domain.WaterRecord, error)
	DeleteFunc        func(ctx context.Context, userID, recordID uuid.UUID) error
}

func (mock *waterRepoMock) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.WaterRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("waterRepoMock.GetByIDFunc: method is nil but waterRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, recordID)
}

func (mock *waterRepoMock) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.WaterRecord, error) {
	if mock.ListByCatDateFunc == nil {
		panic("waterRepoMock.ListByCatDateFunc: method is nil but waterRepo.ListByCatDate was just called")
	}
	return mock.ListByCatDateFunc(ctx, userID, catID, date)
}

func (mock *waterRepoMock) ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.WaterRecord, error) {
	if mock.ListRangeFunc == nil {
		panic("waterRepoMock.ListRangeFunc: method is nil but waterRepo.ListRange was just called")
	}
	return mock.ListRangeFunc(ctx, userID, catID, filter)
}

func (mock *waterRepoMock) Create(ctx context.Context, rec *domain.WaterRecord) (*domain.WaterRecord, error) {
	if mock.CreateFunc == nil {
		panic("waterRepoMock.CreateFunc: method is nil but waterRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, rec)
}

func (mock *waterRepoMock) Update(ctx context.Context, userID uuid.UUID, rec *domain.WaterRecord) (*domain.WaterRecord, error) {
	if mock.UpdateFunc == nil {
		panic("waterRepoMock.UpdateFunc: method is nil but waterRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, rec)
}

func (mock *waterRepoMock) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("waterRepoMock.DeleteFunc: method is nil but waterRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, recordID)
}

var _ careRepo = &careRepoMock{}

type careRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID, recordID uuid.UUID) (*domain.CareRecord, error)
	ListByCatDateFunc func(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error)
	ListRangeFunc     func(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.CareRecord, error)
	CreateFunc        func(ctx context.Context, rec *domain.CareRecord) (*domain.CareRecord, error)
	UpdateFunc        func(ctx context.Context, userID uuid.UUID, rec *domain.CareRecord) (*domain.CareRecord, error)
	DeleteFunc        func(ctx context.Context, userID, recordID uuid.UUID) error
}

func (mock *careRepoMock) GetByID(ctx context.Context, userID, recordID uuid.UUID) (*domain.CareRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("careRepoMock.GetByIDFunc: method is nil but careRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, recordID)
}

func (mock *careRepoMock) ListByCatDate(ctx context.Context, userID, catID uuid.UUID, date time.Time) ([]*domain.CareRecord, error) {
	if mock.ListByCatDateFunc == nil {
		panic("careRepoMock.ListByCatDateFunc: method is nil but careRepo.ListByCatDate was just called")
	}
	return mock.ListByCatDateFunc(ctx, userID, catID, date)
}

func (mock *careRepoMock) ListRange(ctx context.Context, userID, catID uuid.UUID, filter domain.DiaryFilter) ([]*domain.CareRecord, error) {
	if mock.ListRangeFunc == nil {
		panic("careRepoMock.ListRangeFunc: method is nil but careRepo.ListRange was just called")
	}
	return mock.ListRangeFunc(ctx, userID, catID, filter)
}

func (mock *careRepoMock) Create(ctx context.Context, rec *domain.CareRecord) (*domain.CareRecord, error) {
	if mock.CreateFunc == nil {
		panic("careRepoMock.CreateFunc: method is nil but careRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, rec)
}

func (mock *careRepoMock) Update(ctx context.Context, userID uuid.UUID, rec *domain.CareRecord) (*domain.CareRecord, error) {
	if mock.UpdateFunc == nil {
		panic("careRepoMock.UpdateFunc: method is nil but careRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, rec)
}

func (mock *careRepoMock) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("careRepoMock.DeleteFunc: method is nil but careRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, recordID)
}

var _ summaryService = &summaryServiceMock{}

type summaryServiceMock struct {
	RecomputeDailySummaryFunc func(ctx context.Context, input nutrition.DailySummaryInput) (*domain.DailySummary, error)

	calls struct {
		RecomputeDailySummary []struct {
			Ctx   context.Context
			Input nutrition.DailySummaryInput
		}
	}
	lockRecomputeDailySummary sync.RWMutex
}

func (mock *summaryServiceMock) RecomputeDailySummary(ctx context.Context, input nutrition.DailySummaryInput) (*domain.DailySummary, error) {
	if mock.RecomputeDailySummaryFunc == nil {
		panic("summaryServiceMock.RecomputeDailySummaryFunc: method is nil but summaryService.RecomputeDailySummary was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input nutrition.DailySummaryInput
	}{Ctx: ctx, Input: input}
	mock.lockRecomputeDailySummary.Lock()
	mock.calls.RecomputeDailySummary = append(mock.calls.RecomputeDailySummary, callInfo)
	mock.lockRecomputeDailySummary.Unlock()
	return mock.RecomputeDailySummaryFunc(ctx, input)
}

func (mock *summaryServiceMock) RecomputeDailySummaryCalls() []struct {
	Ctx   context.Context
	Input nutrition.DailySummaryInput
} {
	mock.lockRecomputeDailySummary.RLock()
	calls := mock.calls.RecomputeDailySummary
	mock.lockRecomputeDailySummary.RUnlock()
	return calls
}
