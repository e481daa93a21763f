package internal

import (
	"errors"
	"fmt"
)

// ErrorKind 错误分类
type ErrorKind string

const (
	// 规则表缺失或格式错误，在触碰任何文件之前终止运行
	KindConfiguration ErrorKind = "configuration"
	// 源目录无法列出
	KindSourceUnavailable ErrorKind = "source_unavailable"
	// 目标目录无法创建
	KindDestinationUnavailable ErrorKind = "destination_unavailable"
	// 移动时源文件已不存在
	KindSourceVanished ErrorKind = "source_vanished"
	// 其他重命名失败
	KindMoveFailed ErrorKind = "move_failed"
)

// 粗粒度的哨兵错误
var (
	ErrNoRules       = errors.New("规则表为空")
	ErrUnsupportedOS = errors.New("不支持的操作系统")
)

// OpError 携带操作名、错误分类和相关路径的错误
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind 判断错误链中是否有指定分类的 OpError
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
