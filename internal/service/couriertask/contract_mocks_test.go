// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=couriertask_test
//

// Package couriertask_test is a generated GoMock package.
package couriertask_test

import (
	context "context"
	entities "kuryecini/internal/entities"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// AssignCAS mocks base method.
func (m *MockRepository) AssignCAS(ctx context.Context, taskID, courierID string) (*entities.CourierTask, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignCAS", ctx, taskID, courierID)
	ret0, _ := ret[0].(*entities.CourierTask)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AssignCAS indicates an expected call of AssignCAS.
func (mr *MockRepositoryMockRecorder) AssignCAS(ctx, taskID, courierID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignCAS", reflect.TypeOf((*MockRepository)(nil).AssignCAS), ctx, taskID, courierID)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, taskID string) (*entities.CourierTask, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, taskID)
	ret0, _ := ret[0].(*entities.CourierTask)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, taskID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, taskID)
}

// ListWaiting mocks base method.
func (m *MockRepository) ListWaiting(ctx context.Context) ([]entities.CourierTask, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWaiting", ctx)
	ret0, _ := ret[0].([]entities.CourierTask)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWaiting indicates an expected call of ListWaiting.
func (mr *MockRepositoryMockRecorder) ListWaiting(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWaiting", reflect.TypeOf((*MockRepository)(nil).ListWaiting), ctx)
}

// ListWaitingOlderThan mocks base method.
func (m *MockRepository) ListWaitingOlderThan(ctx context.Context, age time.Duration) ([]entities.CourierTask, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWaitingOlderThan", ctx, age)
	ret0, _ := ret[0].([]entities.CourierTask)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWaitingOlderThan indicates an expected call of ListWaitingOlderThan.
func (mr *MockRepositoryMockRecorder) ListWaitingOlderThan(ctx, age any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWaitingOlderThan", reflect.TypeOf((*MockRepository)(nil).ListWaitingOlderThan), ctx, age)
}

// MockOrderService is a mock of OrderService interface.
type MockOrderService struct {
	ctrl     *gomock.Controller
	recorder *MockOrderServiceMockRecorder
	isgomock struct{}
}

// MockOrderServiceMockRecorder is the mock recorder for MockOrderService.
type MockOrderServiceMockRecorder struct {
	mock *MockOrderService
}

// NewMockOrderService creates a new mock instance.
func NewMockOrderService(ctrl *gomock.Controller) *MockOrderService {
	mock := &MockOrderService{ctrl: ctrl}
	mock.recorder = &MockOrderServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrderService) EXPECT() *MockOrderServiceMockRecorder {
	return m.recorder
}

// Apply mocks base method.
func (m *MockOrderService) Apply(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", ctx, transition)
	ret0, _ := ret[0].(*entities.Order)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Apply indicates an expected call of Apply.
func (mr *MockOrderServiceMockRecorder) Apply(ctx, transition any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockOrderService)(nil).Apply), ctx, transition)
}

// PublishStatusChanged mocks base method.
func (m *MockOrderService) PublishStatusChanged(order *entities.Order, from entities.OrderStatusType) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PublishStatusChanged", order, from)
}

// PublishStatusChanged indicates an expected call of PublishStatusChanged.
func (mr *MockOrderServiceMockRecorder) PublishStatusChanged(order, from any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishStatusChanged", reflect.TypeOf((*MockOrderService)(nil).PublishStatusChanged), order, from)
}

// MockPublisher is a mock of Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
	isgomock struct{}
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// Publish mocks base method.
func (m *MockPublisher) Publish(topic string, event entities.Event) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Publish", topic, event)
}

// Publish indicates an expected call of Publish.
func (mr *MockPublisherMockRecorder) Publish(topic, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockPublisher)(nil).Publish), topic, event)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
