package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/dto"
	"campus-connect/internal/model"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
	apperrors "campus-connect/pkg/errors"
	"campus-connect/pkg/mailer"
	"campus-connect/pkg/qrcode"
)

// ── 预约模块业务错误 ──

var (
	ErrVenueNotFound       = errors.New("场地不存在")
	ErrVenueUnavailable    = errors.New("场地当前不可预约")
	ErrAttendeesOutOfRange = errors.New("参与人数超出场地容量")
	ErrBookingNotFound     = errors.New("预约不存在")
	ErrBookingCancelled    = errors.New("预约已取消")
)

// BookingService 预约生命周期业务接口
//
// 状态机：pending（创建时）→ confirmed（仅由审批方触发）→ cancelled（终态）
// Cancel 对不存在或已取消的预约静默成功。
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*dto.BookingResponse, error)
	ListActive(ctx context.Context) ([]dto.BookingResponse, error)
	ListUpcoming(ctx context.Context, limit *int) ([]dto.BookingResponse, error)
	ConfirmPending(ctx context.Context, olderThan time.Duration) (int, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type bookingService struct {
	cfg      *config.BookingConfig
	repo     *repository.Repository
	mail     mailer.Sender
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time

	// 在途的通知邮件
	pending sync.WaitGroup
}

// NewBookingService 创建 BookingService 实例
func NewBookingService(cfg *config.BookingConfig, repo *repository.Repository, mail mailer.Sender, logger *zap.Logger) BookingService {
	return newBookingService(cfg, repo, mail, logger)
}

func newBookingService(cfg *config.BookingConfig, repo *repository.Repository, mail mailer.Sender, logger *zap.Logger) *bookingService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return &bookingService{
		cfg:      cfg,
		repo:     repo,
		mail:     mail,
		validate: v,
		logger:   logger,
		now:      time.Now,
	}
}

// ────────────────────── Create ──────────────────────

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	input := model.BookingInput{
		VenueID:   req.VenueID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Purpose:   req.Purpose,
		Attendees: req.Attendees,
		Status:    req.Status,
	}

	venue, err := s.repo.Venue.GetByID(ctx, input.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("查询场地失败", zap.String("venue_id", input.VenueID), zap.Error(err))
		return nil, err
	}

	// 与预约表单一致的约束：仅可预约可用场地，人数 1 ~ 容量
	if !venue.Available {
		return nil, ErrVenueUnavailable
	}
	if input.Attendees < 1 || input.Attendees > venue.Capacity {
		return nil, ErrAttendeesOutOfRange
	}

	var check func([]model.Booking) error
	if s.cfg.StrictValidation {
		slot, err := s.validateStrict(&input)
		if err != nil {
			return nil, err
		}
		// 冲突检测与写入在同一临界区内完成
		check = slot.conflictCheck
	}

	booking := &model.Booking{
		Venue:     venue.Name,
		VenueID:   venue.ID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    model.BookingStatusPending, // 忽略 input.Status
		Purpose:   input.Purpose,
		Attendees: input.Attendees,
		CreatedAt: s.now(),
	}

	if err := s.repo.Booking.CreateChecked(ctx, booking, check); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.logger.Error("创建预约失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("预约已提交",
		zap.String("booking_id", booking.ID),
		zap.String("venue_id", booking.VenueID),
		zap.String("date", booking.Date),
	)
	s.notify(ctx, booking, "预约已提交", "您的场地预约已提交，等待审批。")

	resp := toBookingResponse(booking)
	return &resp, nil
}

// ────────────────────── Strict validation ──────────────────────

type strictBookingInput struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   validate:"required,datetime=15:04"`
}

// bookingSlot 严格模式下已解析的预约时段
type bookingSlot struct {
	venueID    string
	date       string
	start, end time.Time
}

// validateStrict 严格模式：日期与时间格式、结束晚于开始
func (s *bookingService) validateStrict(input *model.BookingInput) (*bookingSlot, error) {
	ve := &apperrors.ValidationError{}

	err := s.validate.Struct(strictBookingInput{
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Add(fe.Field(), describeTag(fe))
		}
		return nil, ve
	}
	if err != nil {
		return nil, fmt.Errorf("校验预约参数失败: %w", err)
	}

	start, _ := time.Parse("15:04", input.StartTime)
	end, _ := time.Parse("15:04", input.EndTime)
	if !end.After(start) {
		ve.Add("end_time", "必须晚于 start_time")
		return nil, ve
	}

	return &bookingSlot{venueID: input.VenueID, date: input.Date, start: start, end: end}, nil
}

// conflictCheck 同场地同日的有效预约时段不得重叠（首尾相接不算重叠）
func (slot *bookingSlot) conflictCheck(existing []model.Booking) error {
	for _, b := range existing {
		if !b.IsActive() || b.VenueID != slot.venueID || b.Date != slot.date {
			continue
		}
		bs, err1 := time.Parse("15:04", b.StartTime)
		be, err2 := time.Parse("15:04", b.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if slot.start.Before(be) && bs.Before(slot.end) {
			ve := &apperrors.ValidationError{}
			ve.Add("start_time", fmt.Sprintf("与预约 %s（%s-%s）时段冲突", b.ID, b.StartTime, b.EndTime))
			return ve
		}
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "datetime":
		return "格式应为 " + fe.Param()
	default:
		return "不满足约束 " + fe.Tag()
	}
}

// ────────────────────── Cancel ──────────────────────

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	changed, err := s.repo.Booking.Cancel(ctx, id)
	if err != nil {
		s.logger.Error("取消预约失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !changed {
		s.logger.Debug("预约不存在或已取消，忽略", zap.String("id", id))
		return nil
	}

	s.logger.Info("预约已取消", zap.String("booking_id", id))
	return nil
}

// ────────────────────── Query ──────────────────────

func (s *bookingService) GetByID(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBookingResponse(b)
	return &resp, nil
}

func (s *bookingService) getBooking(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("查询预约失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *bookingService) ListActive(ctx context.Context) ([]dto.BookingResponse, error) {
	bookings, err := s.repo.Booking.List(ctx)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}
	return toBookingResponses(query.ActiveBookings(bookings)), nil
}

// ListUpcoming limit 为 nil 时使用配置的默认条数
func (s *bookingService) ListUpcoming(ctx context.Context, limit *int) ([]dto.BookingResponse, error) {
	n := s.cfg.UpcomingLimit
	if limit != nil {
		n = *limit
	}

	bookings, err := s.repo.Booking.List(ctx)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}
	return toBookingResponses(query.UpcomingBookings(bookings, n)), nil
}

// ────────────────────── Approval ──────────────────────

// ConfirmPending 确认创建时间早于 olderThan 之前的全部 pending 预约，返回确认条数
func (s *bookingService) ConfirmPending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().Add(-olderThan)

	confirmed, err := s.repo.Booking.ConfirmPendingBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("自动确认预约失败", zap.Error(err))
		return 0, err
	}

	for i := range confirmed {
		b := &confirmed[i]
		s.logger.Info("预约已确认", zap.String("booking_id", b.ID))
		s.notify(ctx, b, "预约已确认", "您的场地预约已通过审批。")
	}
	return len(confirmed), nil
}

// ────────────────────── QRCode ──────────────────────

// QRCode 生成有效预约的签到凭证二维码
func (s *bookingService) QRCode(ctx context.Context, id string) ([]byte, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsActive() {
		return nil, ErrBookingCancelled
	}

	png, err := qrcode.PNG(qrcode.BookingPassContent(b.ID), s.cfg.QRCodeSize)
	if err != nil {
		s.logger.Error("生成预约二维码失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return png, nil
}

// ── 内部辅助方法 ──

// notify 异步发送预约通知邮件，失败仅记录日志
func (s *bookingService) notify(ctx context.Context, b *model.Booking, subject, lead string) {
	user, err := s.repo.User.GetCurrent(ctx)
	if err != nil || user.Email == "" {
		return
	}

	msg := mailer.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("[Campus Connect] %s: %s", subject, b.Venue),
		Body: fmt.Sprintf("%s\n\n场地: %s\n日期: %s %s-%s\n人数: %d\n用途: %s\n预约编号: %s\n",
			lead, b.Venue, b.Date, b.StartTime, b.EndTime, b.Attendees, b.Purpose, b.ID),
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.mail.Send(msg); err != nil {
			s.logger.Warn("发送预约通知失败", zap.String("booking_id", b.ID), zap.Error(err))
		}
	}()
}

// drain 等待在途通知邮件发送完成，ctx 结束时放弃等待
func (s *bookingService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
