// Package worker 后台定时任务
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/service"
)

// runTimeout 单次审批任务的最长执行时间
const runTimeout = 30 * time.Second

// Approver 自动审批任务：定期将等待超过 After 的 pending 预约确认
// 是 pending → confirmed 的唯一触发方，HTTP 接口不提供确认操作。
type Approver struct {
	cfg       config.AutoApproveConfig
	bookings  service.BookingService
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

// NewApprover 创建自动审批任务；调用 Start 后开始调度
func NewApprover(cfg config.AutoApproveConfig, bookings service.BookingService, logger *zap.Logger) (*Approver, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("创建调度器失败: %w", err)
	}

	a := &Approver{
		cfg:       cfg,
		bookings:  bookings,
		scheduler: s,
		logger:    logger,
	}

	_, err = s.NewJob(
		gocron.DurationJob(cfg.Interval),
		gocron.NewTask(func() { a.RunOnce() }),
		gocron.WithName("booking-auto-approve"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("注册自动审批任务失败: %w", err)
	}

	return a, nil
}

// Start 启动调度
func (a *Approver) Start() {
	a.scheduler.Start()
	a.logger.Info("自动审批任务已启动",
		zap.Duration("interval", a.cfg.Interval),
		zap.Duration("after", a.cfg.After),
	)
}

// Shutdown 停止调度并等待正在执行的任务结束
func (a *Approver) Shutdown() error {
	if err := a.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("关闭调度器失败: %w", err)
	}
	a.logger.Info("自动审批任务已停止")
	return nil
}

// RunOnce 执行一次审批，返回确认条数
func (a *Approver) RunOnce() int {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	n, err := a.bookings.ConfirmPending(ctx, a.cfg.After)
	if err != nil {
		a.logger.Error("自动审批失败", zap.Error(err))
		return 0
	}
	if n > 0 {
		a.logger.Info("自动审批完成", zap.Int("confirmed", n))
	}
	return n
}
