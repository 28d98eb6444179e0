package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/model"
	"campus-connect/internal/repository"
	"campus-connect/internal/seed"
	"campus-connect/pkg/mailer"
)

// ── 测试辅助：基于演示数据的真实会话 ──

func newTestRepo() *repository.Repository {
	return repository.NewRepository(repository.NewSession(seed.Default()))
}

func newEmptyTestRepo() *repository.Repository {
	data := seed.Default()
	data.Announcements = nil
	data.Bookings = nil
	data.Courses = nil
	return repository.NewRepository(repository.NewSession(data))
}

func testBookingConfig() *config.BookingConfig {
	return &config.BookingConfig{UpcomingLimit: 2, QRCodeSize: 128}
}

// ── Mock mailer.Sender ──

type mockSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
	done chan struct{}
}

func newMockSender() *mockSender {
	return &mockSender{done: make(chan struct{}, 16)}
}

func (m *mockSender) Send(msg mailer.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.err
}

// wait 等待 n 封异步邮件发送完成
func (m *mockSender) wait(n int) bool {
	for i := 0; i < n; i++ {
		select {
		case <-m.done:
		case <-time.After(time.Second):
			return false
		}
	}
	return true
}

func (m *mockSender) messages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.sent...)
}

// blockingSender 在 release 关闭前阻塞 Send
type blockingSender struct {
	release chan struct{}
	sent    atomic.Int32
}

func (m *blockingSender) Send(mailer.Message) error {
	<-m.release
	m.sent.Add(1)
	return nil
}

// ── Mock BookingRepository：所有操作返回固定错误 ──

var errMockStore = errors.New("mock store failure")

type failingBookingRepo struct{}

func (failingBookingRepo) Create(context.Context, *model.Booking) error { return errMockStore }
func (failingBookingRepo) CreateChecked(context.Context, *model.Booking, func([]model.Booking) error) error {
	return errMockStore
}
func (failingBookingRepo) GetByID(context.Context, string) (*model.Booking, error) {
	return nil, errMockStore
}
func (failingBookingRepo) List(context.Context) ([]model.Booking, error) { return nil, errMockStore }
func (failingBookingRepo) Cancel(context.Context, string) (bool, error)  { return false, errMockStore }
func (failingBookingRepo) ConfirmPendingBefore(context.Context, time.Time) ([]model.Booking, error) {
	return nil, errMockStore
}

// setupTestBookingService 返回可注入时钟的 bookingService
func setupTestBookingService(cfg *config.BookingConfig) (*bookingService, *repository.Repository, *mockSender) {
	repo := newTestRepo()
	sender := newMockSender()
	svc := newBookingService(cfg, repo, sender, zap.NewNop())
	return svc, repo, sender
}
