package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var Logger *zerolog.Logger

// 当前打开的日志文件，由 Close 关闭
var logFile *os.File

// ParseLevel 解析日志级别字符串，无法识别时回退到 info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init 初始化 zerolog 日志
// level: 日志级别 ("debug", "info", "warn", "error")
// file: 日志文件路径，为空时仅输出到控制台
func Init(level string, file string) (*zerolog.Logger, error) {
	return InitWriter(os.Stdout, level, file)
}

// InitWriter 与 Init 相同，但控制台输出写入 out
func InitWriter(out io.Writer, level string, file string) (*zerolog.Logger, error) {
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !isTerminal(out),
	}

	// 重新初始化时先关闭上一次打开的日志文件
	if err := Close(); err != nil {
		return nil, err
	}

	var output io.Writer = console
	if file != "" {
		// 文件中保留 JSON 格式，控制台保持友好格式
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		logFile = fileWriter
		output = zerolog.MultiLevelWriter(console, fileWriter)
	}

	logger := zerolog.New(output).Level(ParseLevel(level)).With().Timestamp().Logger()

	Logger = &logger
	return Logger, nil
}

// Close 关闭日志文件（如果有），可重复调用
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Get 返回全局 logger 实例
// 如果 logger 未初始化，返回一个默认的 logger（输出到 /dev/null）
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
