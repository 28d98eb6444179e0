package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-connect/config"
)

// ── 测试辅助 ──

func setupTestExportService() ExportService {
	return NewExportService(&config.ExportConfig{SheetName: "Transcript"}, newTestRepo(), zap.NewNop())
}

// ── ExportTranscript 测试 ──

func TestExportService_ExportTranscript_NoCourses(t *testing.T) {
	svc := NewExportService(&config.ExportConfig{}, newEmptyTestRepo(), zap.NewNop())

	_, _, err := svc.ExportTranscript(context.Background(), "")
	if !errors.Is(err, ErrExportNoCourses) {
		t.Errorf("期望 ErrExportNoCourses，实际: %v", err)
	}
}

func TestExportService_ExportTranscript_UnknownSemester(t *testing.T) {
	svc := setupTestExportService()

	_, _, err := svc.ExportTranscript(context.Background(), "Summer 1999")
	if !errors.Is(err, ErrExportNoCourses) {
		t.Errorf("期望 ErrExportNoCourses，实际: %v", err)
	}
}

func TestExportService_ExportTranscript_All(t *testing.T) {
	svc := setupTestExportService()

	buf, filename, err := svc.ExportTranscript(context.Background(), "all")
	if err != nil {
		t.Fatalf("ExportTranscript 应成功: %v", err)
	}
	if filename != "transcript-alex-johnson.xlsx" {
		t.Errorf("期望文件名 transcript-alex-johnson.xlsx，实际=%s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应为合法 xlsx: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != "Transcript" {
		t.Errorf("期望 Sheet=Transcript，实际=%s", f.GetSheetName(0))
	}
	rows, err := f.GetRows("Transcript")
	if err != nil {
		t.Fatalf("读取行失败: %v", err)
	}
	// 标题 + 表头 + 7 门课程 + 合计
	if len(rows) != 10 {
		t.Fatalf("期望 10 行，实际=%d", len(rows))
	}
	if rows[1][0] != "Code" {
		t.Errorf("期望表头首列为 Code，实际=%s", rows[1][0])
	}
	if rows[2][0] != "CS301" || rows[2][6] != "75%" {
		t.Errorf("首门课程行不符: %v", rows[2])
	}
	if rows[9][2] != "22" {
		t.Errorf("期望学分合计=22，实际=%s", rows[9][2])
	}
}

func TestExportService_ExportTranscript_Semester(t *testing.T) {
	svc := setupTestExportService()

	buf, filename, err := svc.ExportTranscript(context.Background(), "Fall 2024")
	if err != nil {
		t.Fatalf("ExportTranscript 应成功: %v", err)
	}
	if filename != "transcript-alex-johnson-fall-2024.xlsx" {
		t.Errorf("期望文件名 transcript-alex-johnson-fall-2024.xlsx，实际=%s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应为合法 xlsx: %v", err)
	}
	defer f.Close()

	title, _ := f.GetCellValue("Transcript", "A1")
	if title != "Alex Johnson (2024001) Fall 2024" {
		t.Errorf("标题不符: %s", title)
	}
	rows, _ := f.GetRows("Transcript")
	if len(rows) != 6 {
		t.Errorf("期望 6 行，实际=%d", len(rows))
	}
}

func TestTranscriptFilename(t *testing.T) {
	if got := transcriptFilename("Zoë Müller", ""); got != "transcript-zoe-muller.xlsx" {
		t.Errorf("期望 transcript-zoe-muller.xlsx，实际=%s", got)
	}
}
