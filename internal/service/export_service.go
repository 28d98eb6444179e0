package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/model"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoCourses    = errors.New("所选学期暂无课程")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportTranscript 导出成绩单为 Excel；semester 为空或 "all" 时导出全部课程
	ExportTranscript(ctx context.Context, semester string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.ExportConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.ExportConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportTranscript 导出成绩单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 第 1 行：标题（姓名 学号 学期）
//   - 第 2 行：表头 课程代码 / 课程名称 / 学分 / 成绩 / 学期 / 授课教师 / 进度
//   - 数据行按课程原始顺序
//   - 末行：学分合计
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

var transcriptHeaders = []interface{}{"Code", "Course", "Credits", "Grade", "Semester", "Instructor", "Progress"}

func (s *exportService) ExportTranscript(ctx context.Context, semester string) (*bytes.Buffer, string, error) {
	// 1. 查询学生与课程
	user, err := s.repo.User.GetCurrent(ctx)
	if err != nil {
		s.logger.Error("查询当前用户失败", zap.Error(err))
		return nil, "", err
	}
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 按学期筛选
	courses = query.FilterCourses(courses, semester)
	if len(courses) == 0 {
		return nil, "", ErrExportNoCourses
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := s.cfg.SheetName
	if sheetName == "" {
		sheetName = "Transcript"
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		s.logger.Error("设置 Sheet 名称失败", zap.String("sheet", sheetName), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	if err := writeTranscript(f, sheetName, user, semester, courses); err != nil {
		s.logger.Error("写入成绩单失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 4. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	s.logger.Info("成绩单已导出",
		zap.String("student_id", user.StudentID),
		zap.String("semester", semester),
		zap.Int("courses", len(courses)),
	)
	return buf, transcriptFilename(user.Name, semester), nil
}

func writeTranscript(f *excelize.File, sheet string, user *model.User, semester string, courses []model.Course) error {
	lastCol := colName(len(transcriptHeaders) - 1)

	// 列宽
	widths := []float64{12, 36, 9, 12, 14, 22, 10}
	for i, w := range widths {
		col := colName(i)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	// 样式
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	// 标题行
	title := fmt.Sprintf("%s (%s)", user.Name, user.StudentID)
	if !query.IsAll(semester) {
		title += " " + semester
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle); err != nil {
		return err
	}

	// 表头
	if err := f.SetSheetRow(sheet, "A2", &transcriptHeaders); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A2", lastCol+"2", headerStyle); err != nil {
		return err
	}

	// 数据行
	row := 3
	credits := 0
	for _, c := range courses {
		progress := "-"
		if c.InProgress() {
			progress = fmt.Sprintf("%d%%", c.Progress)
		}
		values := []interface{}{c.Code, c.Name, c.Credits, c.Grade, c.Semester, c.Instructor, progress}
		if err := f.SetSheetRow(sheet, cell("A", row), &values); err != nil {
			return err
		}
		credits += c.Credits
		row++
	}

	// 合计
	total := []interface{}{"", "Total credits", credits}
	return f.SetSheetRow(sheet, cell("A", row), &total)
}

// transcriptFilename transcript-<姓名>[-<学期>].xlsx，均为 slug 形式
func transcriptFilename(name, semester string) string {
	filename := "transcript-" + slug.Make(name)
	if !query.IsAll(semester) {
		filename += "-" + slug.Make(semester)
	}
	return filename + ".xlsx"
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
