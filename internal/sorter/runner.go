package sorter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/internal/rules"
	"github.com/s3h4n/DL-Sorter/pkg/scanner"
)

// Progress 每处理一个文件回调一次
type Progress struct {
	Category string
	Filename string
	Current  int
	Total    int
	Outcome  MoveOutcome
}

// PlannedMove 预览模式下的一次计划移动
type PlannedMove struct {
	Category    string
	Filename    string
	Destination string
}

// Runner 对一个源目录执行一次完整的整理
type Runner struct {
	fs          afero.Fs
	log         zerolog.Logger
	mover       *Mover
	snapshotter *scanner.Snapshotter

	// OnProgress 可选的进度回调，在同一个 goroutine 中同步调用
	OnProgress func(Progress)
}

// NewRunner 创建 Runner
func NewRunner(fsys afero.Fs, log zerolog.Logger) *Runner {
	return &Runner{
		fs:          fsys,
		log:         log,
		mover:       NewMover(fsys, log),
		snapshotter: scanner.NewSnapshotter(fsys),
	}
}

// Run 读取一次源目录快照，按规则表顺序逐个分类移动文件
// 只有源目录无法读取时返回错误，此时没有任何文件被改动
func (r *Runner) Run(sourceDir string, table *rules.Table) (*Report, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	report := newReport(sourceDir, table)
	report.StartTime = time.Now()

	names, byCategory, err := r.classifySnapshot(sourceDir, table, report)
	if err != nil {
		return nil, err
	}

	total := len(names) - len(report.Unclassified)
	current := 0

	for _, rule := range table.Rules {
		matched := byCategory[rule.Category]

		if samePath(rule.Destination, sourceDir) {
			r.log.Warn().
				Str("category", rule.Category).
				Msg("目标目录就是源目录，跳过该分类")
			current += len(matched)
			continue
		}

		for _, name := range matched {
			outcome := r.mover.Move(name, sourceDir, rule.Destination)
			report.record(rule.Category,
				filepath.Join(sourceDir, name),
				filepath.Join(rule.Destination, outcome.FinalName),
				outcome)

			current++
			if r.OnProgress != nil {
				r.OnProgress(Progress{
					Category: rule.Category,
					Filename: name,
					Current:  current,
					Total:    total,
					Outcome:  outcome,
				})
			}
		}

		r.log.Debug().
			Str("category", rule.Category).
			Int("matched", len(matched)).
			Int("moved", report.Count(rule.Category)).
			Msg("分类处理完成")
	}

	report.EndTime = time.Now()
	r.log.Info().
		Int("moved", report.Total()).
		Int("unclassified", len(report.Unclassified)).
		Int("failed", len(report.Failures)).
		Dur("duration", report.Elapsed()).
		Msg("整理完成")

	return report, nil
}

// Plan 与 Run 使用同样的分类逻辑，但不改动文件系统
// 同一目标目录中先计划的文件名会被预留，与 Run 的顺序移动结果一致
func (r *Runner) Plan(sourceDir string, table *rules.Table) ([]PlannedMove, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	report := newReport(sourceDir, table)

	_, byCategory, err := r.classifySnapshot(sourceDir, table, report)
	if err != nil {
		return nil, err
	}

	var plan []PlannedMove
	reserved := make(map[string]map[string]bool)
	for _, rule := range table.Rules {
		if samePath(rule.Destination, sourceDir) {
			continue
		}

		dir := filepath.Clean(rule.Destination)
		if reserved[dir] == nil {
			reserved[dir] = make(map[string]bool)
		}

		for _, name := range byCategory[rule.Category] {
			finalName, err := uniqueNameExcluding(r.fs, dir, name, reserved[dir])
			if err != nil {
				// 目标不可用时仍展示原文件名，实际运行时会报告失败
				finalName = name
			}
			reserved[dir][finalName] = true
			plan = append(plan, PlannedMove{
				Category:    rule.Category,
				Filename:    name,
				Destination: filepath.Join(rule.Destination, finalName),
			})
		}
	}

	return plan, nil
}

// classifySnapshot 读取快照并为每个文件确定唯一的分类
func (r *Runner) classifySnapshot(sourceDir string, table *rules.Table, report *Report) ([]string, map[string][]string, error) {
	names, err := r.snapshotter.Snapshot(sourceDir)
	if err != nil {
		r.log.Error().Err(err).Str("source", sourceDir).Msg("读取源目录失败")
		return nil, nil, &internal.OpError{
			Op:   "sorter.snapshot",
			Kind: internal.KindSourceUnavailable,
			Path: sourceDir,
			Err:  fmt.Errorf("读取源目录失败: %w", err),
		}
	}

	r.log.Debug().Int("count", len(names)).Str("source", sourceDir).Msg("已读取源目录快照")

	byCategory := make(map[string][]string, len(table.Rules))
	for _, name := range names {
		rule, ok := Classify(name, table)
		if !ok {
			report.Unclassified = append(report.Unclassified, name)
			continue
		}
		byCategory[rule.Category] = append(byCategory[rule.Category], name)
	}

	return names, byCategory, nil
}

func checkTable(table *rules.Table) error {
	if table == nil {
		return &internal.OpError{
			Op:   "sorter.run",
			Kind: internal.KindConfiguration,
			Err:  internal.ErrNoRules,
		}
	}
	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
