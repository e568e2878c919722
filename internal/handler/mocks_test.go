package handler

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/citywatch/storage-service/internal/cache"
	"github.com/citywatch/storage-service/internal/domain"
)

var (
	_ RemarkRepository    = &remarkRepoMock{}
	_ UserRepository      = &userRepoMock{}
	_ OperationRepository = &operationRepoMock{}
	_ RemarkServiceClient = &remarkClientMock{}
	_ UserServiceClient   = &userClientMock{}
	_ RemarkCache         = &remarkCacheMock{}
	_ UserCache           = &userCacheMock{}
	_ AccountState        = &accountStateMock{}
)

type remarkRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Remark, error)
	AddFunc     func(ctx context.Context, remark *domain.Remark) error
	UpdateFunc  func(ctx context.Context, remark *domain.Remark) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		GetByID []uuid.UUID
		Add     []*domain.Remark
		Update  []*domain.Remark
		Delete  []uuid.UUID
	}
}

func (m *remarkRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Remark, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	if m.GetByIDFunc == nil {
		panic("remarkRepoMock.GetByIDFunc: method is nil but RemarkRepository.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *remarkRepoMock) Add(ctx context.Context, remark *domain.Remark) error {
	m.mu.Lock()
	m.calls.Add = append(m.calls.Add, remark)
	m.mu.Unlock()
	if m.AddFunc == nil {
		panic("remarkRepoMock.AddFunc: method is nil but RemarkRepository.Add was just called")
	}
	return m.AddFunc(ctx, remark)
}

func (m *remarkRepoMock) Update(ctx context.Context, remark *domain.Remark) error {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, remark)
	m.mu.Unlock()
	if m.UpdateFunc == nil {
		panic("remarkRepoMock.UpdateFunc: method is nil but RemarkRepository.Update was just called")
	}
	return m.UpdateFunc(ctx, remark)
}

func (m *remarkRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		panic("remarkRepoMock.DeleteFunc: method is nil but RemarkRepository.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *remarkRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *remarkRepoMock) AddCalls() []*domain.Remark {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Add
}

func (m *remarkRepoMock) UpdateCalls() []*domain.Remark {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *remarkRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID string) (*domain.User, error)
	AddFunc     func(ctx context.Context, user *domain.User) error
	EditFunc    func(ctx context.Context, user *domain.User) error

	mu    sync.Mutex
	calls struct {
		GetByID []string
		Add     []*domain.User
		Edit    []*domain.User
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, userID)
	m.mu.Unlock()
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but UserRepository.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID)
}

func (m *userRepoMock) Add(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.calls.Add = append(m.calls.Add, user)
	m.mu.Unlock()
	if m.AddFunc == nil {
		panic("userRepoMock.AddFunc: method is nil but UserRepository.Add was just called")
	}
	return m.AddFunc(ctx, user)
}

func (m *userRepoMock) Edit(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.calls.Edit = append(m.calls.Edit, user)
	m.mu.Unlock()
	if m.EditFunc == nil {
		panic("userRepoMock.EditFunc: method is nil but UserRepository.Edit was just called")
	}
	return m.EditFunc(ctx, user)
}

func (m *userRepoMock) GetByIDCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *userRepoMock) AddCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Add
}

func (m *userRepoMock) EditCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Edit
}

type operationRepoMock struct {
	GetByRequestIDFunc func(ctx context.Context, requestID uuid.UUID) (*domain.Operation, error)
	AddFunc            func(ctx context.Context, op *domain.Operation) error
	UpdateFunc         func(ctx context.Context, op *domain.Operation) error

	mu    sync.Mutex
	calls struct {
		GetByRequestID []uuid.UUID
		Add            []*domain.Operation
		Update         []*domain.Operation
	}
}

func (m *operationRepoMock) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*domain.Operation, error) {
	m.mu.Lock()
	m.calls.GetByRequestID = append(m.calls.GetByRequestID, requestID)
	m.mu.Unlock()
	if m.GetByRequestIDFunc == nil {
		panic("operationRepoMock.GetByRequestIDFunc: method is nil but OperationRepository.GetByRequestID was just called")
	}
	return m.GetByRequestIDFunc(ctx, requestID)
}

func (m *operationRepoMock) Add(ctx context.Context, op *domain.Operation) error {
	m.mu.Lock()
	m.calls.Add = append(m.calls.Add, op)
	m.mu.Unlock()
	if m.AddFunc == nil {
		panic("operationRepoMock.AddFunc: method is nil but OperationRepository.Add was just called")
	}
	return m.AddFunc(ctx, op)
}

func (m *operationRepoMock) Update(ctx context.Context, op *domain.Operation) error {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, op)
	m.mu.Unlock()
	if m.UpdateFunc == nil {
		panic("operationRepoMock.UpdateFunc: method is nil but OperationRepository.Update was just called")
	}
	return m.UpdateFunc(ctx, op)
}

func (m *operationRepoMock) GetByRequestIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByRequestID
}

func (m *operationRepoMock) AddCalls() []*domain.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Add
}

func (m *operationRepoMock) UpdateCalls() []*domain.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

type remarkClientMock struct {
	GetRemarkFunc func(ctx context.Context, id uuid.UUID) (*domain.Remark, error)

	mu    sync.Mutex
	calls struct {
		GetRemark []uuid.UUID
	}
}

func (m *remarkClientMock) GetRemark(ctx context.Context, id uuid.UUID) (*domain.Remark, error) {
	m.mu.Lock()
	m.calls.GetRemark = append(m.calls.GetRemark, id)
	m.mu.Unlock()
	if m.GetRemarkFunc == nil {
		panic("remarkClientMock.GetRemarkFunc: method is nil but RemarkServiceClient.GetRemark was just called")
	}
	return m.GetRemarkFunc(ctx, id)
}

func (m *remarkClientMock) GetRemarkCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetRemark
}

type userClientMock struct {
	GetUserFunc func(ctx context.Context, userID string) (*domain.User, error)

	mu    sync.Mutex
	calls struct {
		GetUser []string
	}
}

func (m *userClientMock) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	m.calls.GetUser = append(m.calls.GetUser, userID)
	m.mu.Unlock()
	if m.GetUserFunc == nil {
		panic("userClientMock.GetUserFunc: method is nil but UserServiceClient.GetUser was just called")
	}
	return m.GetUserFunc(ctx, userID)
}

func (m *userClientMock) GetUserCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetUser
}

type remarkCacheAddCall struct {
	Remark *domain.Remark
	Opts   cache.AddOptions
}

type remarkCacheMock struct {
	AddFunc    func(ctx context.Context, remark *domain.Remark, opts cache.AddOptions) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Add    []remarkCacheAddCall
		Delete []uuid.UUID
	}
}

func (m *remarkCacheMock) Add(ctx context.Context, remark *domain.Remark, opts cache.AddOptions) error {
	m.mu.Lock()
	m.calls.Add = append(m.calls.Add, remarkCacheAddCall{Remark: remark, Opts: opts})
	m.mu.Unlock()
	if m.AddFunc == nil {
		return nil
	}
	return m.AddFunc(ctx, remark, opts)
}

func (m *remarkCacheMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id)
}

func (m *remarkCacheMock) AddCalls() []remarkCacheAddCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Add
}

func (m *remarkCacheMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type userCacheRemarkCall struct {
	UserID   string
	RemarkID uuid.UUID
}

type userCacheMock struct {
	AddFunc          func(ctx context.Context, user *domain.User) error
	AddRemarkFunc    func(ctx context.Context, userID string, remarkID uuid.UUID) error
	RemoveRemarkFunc func(ctx context.Context, userID string, remarkID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Add          []*domain.User
		AddRemark    []userCacheRemarkCall
		RemoveRemark []userCacheRemarkCall
	}
}

func (m *userCacheMock) Add(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.calls.Add = append(m.calls.Add, user)
	m.mu.Unlock()
	if m.AddFunc == nil {
		return nil
	}
	return m.AddFunc(ctx, user)
}

func (m *userCacheMock) AddRemark(ctx context.Context, userID string, remarkID uuid.UUID) error {
	m.mu.Lock()
	m.calls.AddRemark = append(m.calls.AddRemark, userCacheRemarkCall{UserID: userID, RemarkID: remarkID})
	m.mu.Unlock()
	if m.AddRemarkFunc == nil {
		return nil
	}
	return m.AddRemarkFunc(ctx, userID, remarkID)
}

func (m *userCacheMock) RemoveRemark(ctx context.Context, userID string, remarkID uuid.UUID) error {
	m.mu.Lock()
	m.calls.RemoveRemark = append(m.calls.RemoveRemark, userCacheRemarkCall{UserID: userID, RemarkID: remarkID})
	m.mu.Unlock()
	if m.RemoveRemarkFunc == nil {
		return nil
	}
	return m.RemoveRemarkFunc(ctx, userID, remarkID)
}

func (m *userCacheMock) AddCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Add
}

func (m *userCacheMock) AddRemarkCalls() []userCacheRemarkCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddRemark
}

func (m *userCacheMock) RemoveRemarkCalls() []userCacheRemarkCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemoveRemark
}

type accountStateCall struct {
	UserID string
	State  string
}

type accountStateMock struct {
	SetFunc    func(ctx context.Context, userID, state string) error
	DeleteFunc func(ctx context.Context, userID string) error

	mu    sync.Mutex
	calls struct {
		Set    []accountStateCall
		Delete []string
	}
}

func (m *accountStateMock) Set(ctx context.Context, userID, state string) error {
	m.mu.Lock()
	m.calls.Set = append(m.calls.Set, accountStateCall{UserID: userID, State: state})
	m.mu.Unlock()
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(ctx, userID, state)
}

func (m *accountStateMock) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, userID)
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, userID)
}

func (m *accountStateMock) SetCalls() []accountStateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Set
}

func (m *accountStateMock) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

// reporterMock records every failure the envelope drains.
type reporterMock struct {
	mu    sync.Mutex
	calls []reporterCall
}

type reporterCall struct {
	Err     error
	Keyvals []any
}

func (m *reporterMock) Handle(err error, keyvals ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, reporterCall{Err: err, Keyvals: keyvals})
}

func (m *reporterMock) HandleCalls() []reporterCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
