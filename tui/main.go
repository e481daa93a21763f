package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/s3h4n/DL-Sorter/app"
	"github.com/s3h4n/DL-Sorter/internal/sorter"
)

// ErrAborted 用户在开始整理前退出
var ErrAborted = errors.New("用户取消了整理")

// ErrIncomplete 界面在整理结果返回之前退出
var ErrIncomplete = errors.New("整理结果未返回")

// Run 在 TUI 中完成一次预览与整理
func Run(session *app.Session) (*app.SortResult, error) {
	session.Log.Info().Msg("启动 TUI 界面")

	m := initialModel(session)
	p := tea.NewProgram(m, tea.WithAltScreen())

	session.Runner.OnProgress = func(pr sorter.Progress) {
		p.Send(progressMsg(pr))
	}
	defer func() { session.Runner.OnProgress = nil }()

	final, err := p.Run()
	if fm, ok := final.(model); ok && fm.state == StateProcessing {
		// 程序被外部中断时仍等待本次整理结束
		<-fm.sortDone
	}
	if err != nil {
		session.Log.Error().Err(err).Msg("TUI 运行错误")
		return nil, err
	}
	session.Log.Info().Msg("TUI 正常退出")

	fm, ok := final.(model)
	if !ok {
		return nil, ErrAborted
	}
	return fm.outcome()
}

// outcome 只有在整理开始之前退出才算取消
func (m model) outcome() (*app.SortResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.state < StateProcessing {
		return nil, ErrAborted
	}
	if m.result == nil {
		return nil, ErrIncomplete
	}
	return m.result, nil
}
