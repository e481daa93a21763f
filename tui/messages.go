package tui

import (
	"github.com/s3h4n/DL-Sorter/app"
	"github.com/s3h4n/DL-Sorter/internal/sorter"
)

type planMsg struct {
	plan []sorter.PlannedMove
}

type progressMsg sorter.Progress

type processCompleteMsg struct {
	result *app.SortResult
}

type errMsg struct {
	err error
}
