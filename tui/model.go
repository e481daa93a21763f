package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/s3h4n/DL-Sorter/app"
	"github.com/s3h4n/DL-Sorter/internal/sorter"
)

type State int

const (
	StatePlanning State = iota
	StateConfirm
	StateProcessing
	StateComplete
)

// 预览列表最多显示的条数
const maxPlanLines = 15

type model struct {
	state       State
	session     *app.Session
	plan        []sorter.PlannedMove
	processed   int
	total       int
	currentFile string
	failed      int
	result      *app.SortResult
	progressBar progress.Model
	spinner     spinner.Model
	err         error

	// 整理的 goroutine 结束时关闭
	sortDone chan struct{}
}

func initialModel(session *app.Session) model {
	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Width(4)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:       StatePlanning,
		session:     session,
		progressBar: progressBar,
		spinner:     s,
		sortDone:    make(chan struct{}),
	}
}
