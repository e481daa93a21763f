package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s3h4n/DL-Sorter/internal"
)

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPlan())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// 整理开始后不可中断，等待完成后再退出
			if m.state != StateProcessing {
				return m, tea.Quit
			}
		case "enter", "y":
			if m.state == StateConfirm {
				m.state = StateProcessing
				m.total = len(m.plan)
				return m, tea.Batch(m.spinner.Tick, m.startSort())
			}
			if m.state == StateComplete {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.progressBar.Width = max(20, min(msg.Width-10, 80))

	case planMsg:
		m.plan = msg.plan
		m.state = StateConfirm
		return m, nil

	case progressMsg:
		m.processed = msg.Current
		m.total = msg.Total
		m.currentFile = msg.Filename
		if !msg.Outcome.Moved && msg.Outcome.Kind != internal.KindSourceVanished {
			m.failed++
		}
		if m.total > 0 {
			return m, m.progressBar.SetPercent(float64(m.processed) / float64(m.total))
		}
		return m, nil

	case processCompleteMsg:
		m.state = StateComplete
		m.result = msg.result
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = StateComplete
		return m, nil

	case spinner.TickMsg:
		if m.state == StatePlanning || m.state == StateProcessing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m model) loadPlan() tea.Cmd {
	return func() tea.Msg {
		res, err := m.session.Plan()
		if err != nil {
			return errMsg{err: err}
		}
		return planMsg{plan: res.Plan}
	}
}

func (m model) startSort() tea.Cmd {
	done := m.sortDone
	return func() tea.Msg {
		defer close(done)
		res, err := m.session.Sort()
		if err != nil {
			return errMsg{err: err}
		}
		return processCompleteMsg{result: res}
	}
}
