package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLevel(tc.input); got != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestInitWriter_ConsoleAndFile(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "dl_sorter.log")

	var buf bytes.Buffer
	l, err := InitWriter(&buf, "info", logFile)
	if err != nil {
		t.Fatalf("InitWriter() error = %v", err)
	}
	t.Cleanup(func() {
		Close()
		Logger = nil
	})

	l.Debug().Msg("隐藏的调试信息")
	l.Info().Str("file", "a.png").Msg("文件已移动")

	console := buf.String()
	if !strings.Contains(console, "文件已移动") {
		t.Errorf("控制台输出缺少日志: %q", console)
	}
	if strings.Contains(console, "隐藏的调试信息") {
		t.Error("info 级别不应输出 debug 日志")
	}
	if strings.Contains(console, "\x1b[") {
		t.Error("非终端输出不应包含颜色")
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(data), `"file":"a.png"`) {
		t.Errorf("日志文件应为 JSON 格式, got %q", string(data))
	}

	if Get() != l {
		t.Error("Get() 应返回 Init 设置的全局 logger")
	}
}

func TestClose_ReleasesLogFile(t *testing.T) {
	tempDir := t.TempDir()
	first := filepath.Join(tempDir, "first.log")
	second := filepath.Join(tempDir, "second.log")
	t.Cleanup(func() { Logger = nil })

	var buf bytes.Buffer
	if _, err := InitWriter(&buf, "info", first); err != nil {
		t.Fatalf("InitWriter() error = %v", err)
	}
	opened := logFile

	// 重新初始化会关闭上一个文件
	if _, err := InitWriter(&buf, "info", second); err != nil {
		t.Fatalf("InitWriter() error = %v", err)
	}
	if err := opened.Close(); err == nil {
		t.Error("上一个日志文件应已被关闭")
	}

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if logFile != nil {
		t.Error("Close() 后不应保留文件句柄")
	}
	if err := Close(); err != nil {
		t.Errorf("重复 Close() error = %v", err)
	}
}

func TestInit_Stdout(t *testing.T) {
	t.Cleanup(func() {
		Close()
		Logger = nil
	})

	l, err := Init("warn", "")
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if l.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", l.GetLevel())
	}
	if logFile != nil {
		t.Error("没有日志文件时不应打开文件")
	}
}

func TestInitWriter_BadFile(t *testing.T) {
	var buf bytes.Buffer
	_, err := InitWriter(&buf, "info", filepath.Join(t.TempDir(), "missing", "x.log"))
	if err == nil {
		t.Fatal("expected error for unwritable log file")
	}
}

func TestGet_Default(t *testing.T) {
	Logger = nil
	t.Cleanup(func() { Logger = nil })

	if Get() == nil {
		t.Fatal("Get() should never return nil")
	}
}
