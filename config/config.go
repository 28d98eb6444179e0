package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Booking BookingConfig `mapstructure:"booking"`
	Mail    MailConfig    `mapstructure:"mail"`
	Log     LogConfig     `mapstructure:"log"`
	Export  ExportConfig  `mapstructure:"export"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	BodyLimit    int64         `mapstructure:"body_limit"` // 请求体上限（字节）
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         CORSConfig    `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// BookingConfig 场地预约配置
type BookingConfig struct {
	// StrictValidation 开启后额外校验日期/时间格式、时间先后与同场地冲突
	StrictValidation bool              `mapstructure:"strict_validation"`
	UpcomingLimit    int               `mapstructure:"upcoming_limit"`
	QRCodeSize       int               `mapstructure:"qrcode_size"`
	AutoApprove      AutoApproveConfig `mapstructure:"auto_approve"`
}

// AutoApproveConfig 自动审批任务配置（默认关闭）
type AutoApproveConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	After    time.Duration `mapstructure:"after"` // pending 超过该时长后自动确认
}

// MailConfig SMTP 邮件配置；SMTPHost 为空时不发送邮件
type MailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Enabled 是否配置了 SMTP
func (c *MailConfig) Enabled() bool {
	return c.SMTPHost != ""
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig 成绩单导出配置
type ExportConfig struct {
	SheetName string `mapstructure:"sheet_name"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("booking.strict_validation", false)
	v.SetDefault("booking.upcoming_limit", 2)
	v.SetDefault("booking.qrcode_size", 256)
	v.SetDefault("booking.auto_approve.enabled", false)
	v.SetDefault("booking.auto_approve.interval", "1m")
	v.SetDefault("booking.auto_approve.after", "10m")

	v.SetDefault("mail.smtp_port", 587)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("export.sheet_name", "Transcript")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("CAMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Server.BodyLimit <= 0 {
		return fmt.Errorf("配置校验失败: server.body_limit 必须大于 0")
	}
	if c.Booking.UpcomingLimit < 0 {
		return fmt.Errorf("配置校验失败: booking.upcoming_limit 不能为负数")
	}
	if c.Booking.QRCodeSize < 64 {
		return fmt.Errorf("配置校验失败: booking.qrcode_size 不能小于 64")
	}
	if c.Booking.AutoApprove.Enabled && c.Booking.AutoApprove.Interval <= 0 {
		return fmt.Errorf("配置校验失败: booking.auto_approve.interval 必须大于 0")
	}
	if c.Mail.Enabled() && c.Mail.From == "" {
		return fmt.Errorf("配置校验失败: 启用邮件时 mail.from 不能为空")
	}
	return nil
}
