package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/api/handler"
	"campus-connect/internal/api/router"
	"campus-connect/internal/repository"
	"campus-connect/internal/seed"
	"campus-connect/internal/service"
	"campus-connect/internal/worker"
	applogger "campus-connect/pkg/logger"
	"campus-connect/pkg/mailer"
)

func main() {
	// 0. 加载 .env（可选，不存在时忽略）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "读取 .env 失败: %v\n", err)
		os.Exit(1)
	}

	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("CAMPUS_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.Bool("strict_validation", cfg.Booking.StrictValidation),
	)

	// 3. 初始化会话（演示数据，进程退出即丢弃）
	session := repository.NewSession(seed.Default())

	// 4. 邮件通知（未配置 SMTP 时仅记录日志）
	mail := mailer.NewSender(&cfg.Mail, logger)
	if !cfg.Mail.Enabled() {
		logger.Info("未配置 SMTP，预约通知仅写入日志")
	}

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(session)
	svc := service.NewService(cfg, repo, mail, logger)
	h := handler.NewHandler(svc)

	// 6. 自动审批任务（可选）
	var approver *worker.Approver
	if cfg.Booking.AutoApprove.Enabled {
		approver, err = worker.NewApprover(cfg.Booking.AutoApprove, svc.Booking, logger)
		if err != nil {
			logger.Fatal("初始化自动审批任务失败", zap.Error(err))
		}
		approver.Start()
	}

	// 7. 初始化路由
	gin.SetMode(gin.ReleaseMode)
	engine := router.Setup(cfg, h, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if approver != nil {
		if err := approver.Shutdown(); err != nil {
			logger.Error("自动审批任务关闭异常", zap.Error(err))
		}
	}

	if err := svc.Shutdown(ctx); err != nil {
		logger.Warn("等待预约通知发送超时，未发送的通知已丢弃", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
