package app

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/config"
	"github.com/s3h4n/DL-Sorter/internal/journal"
)

type HistoryOptions struct {
	ConfigFile string
	Limit      int
	RunID      string // 非空时同时返回该次运行的移动明细
}

type HistoryResult struct {
	Runs  []journal.RunRecord
	Moves []journal.MoveRecord
}

// RunHistory 查询运行历史
func RunHistory(opts *HistoryOptions) (*HistoryResult, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	j, err := journal.Open(cfg.Journal.Path, afero.NewOsFs(), cfg.Performance.Workers, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	defer j.Close()

	runs, err := j.Recent(opts.Limit)
	if err != nil {
		return nil, err
	}

	result := &HistoryResult{Runs: runs}
	if opts.RunID != "" {
		moves, err := j.Moves(opts.RunID)
		if err != nil {
			return nil, err
		}
		result.Moves = moves
	}

	return result, nil
}
