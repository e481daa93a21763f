package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/config"
	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/internal/journal"
	"github.com/s3h4n/DL-Sorter/internal/platform"
	"github.com/s3h4n/DL-Sorter/internal/rules"
	"github.com/s3h4n/DL-Sorter/internal/sorter"
	"github.com/s3h4n/DL-Sorter/pkg/logger"
)

type SortOptions struct {
	ConfigFile string
	SourceDir  string // 覆盖配置文件和系统默认的下载目录
	RulesFile  string // 覆盖配置文件中的规则文件
	DryRun     bool
	Verbose    bool
	Journal    bool // 即使配置中关闭也写入运行历史

	// 以下字段为空时使用默认值
	Fs        afero.Fs
	Resolver  platform.Resolver
	LogOutput io.Writer
}

type SortResult struct {
	Report *sorter.Report
	Plan   []sorter.PlannedMove
	RunID  string
}

// Session 一次整理所需的全部依赖
type Session struct {
	Config    *config.Config
	SourceDir string
	Table     *rules.Table
	Runner    *sorter.Runner
	Log       zerolog.Logger

	journal *journal.Journal
}

// NewSession 加载配置、初始化日志、解析源目录并加载规则表
// 规则表加载失败时返回配置错误，此时还没有触碰任何文件
func NewSession(opts *SortOptions) (*Session, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}

	logFile, err := internal.ExpandPath(cfg.Logging.File)
	if err != nil {
		return nil, err
	}

	var log *zerolog.Logger
	if opts.LogOutput == nil {
		log, err = logger.Init(logLevel, logFile)
	} else {
		log, err = logger.InitWriter(opts.LogOutput, logLevel, logFile)
	}
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	sourceDir, err := resolveSource(opts, cfg)
	if err != nil {
		log.Error().Err(err).Msg("无法确定下载目录")
		logger.Close()
		return nil, err
	}

	rulesFile := cfg.RulesFile
	if opts.RulesFile != "" {
		rulesFile = opts.RulesFile
	}
	if rulesFile, err = internal.ExpandPath(rulesFile); err != nil {
		logger.Close()
		return nil, err
	}

	table, err := rules.Load(fs, rulesFile, sourceDir)
	if err != nil {
		log.Error().Err(err).Str("rules", rulesFile).Msg("加载规则文件失败")
		logger.Close()
		return nil, err
	}
	log.Info().
		Str("rules", rulesFile).
		Strs("categories", table.Categories()).
		Msg("规则文件加载完成")
	log.Info().Str("source", sourceDir).Msg("源目录")

	s := &Session{
		Config:    cfg,
		SourceDir: sourceDir,
		Table:     table,
		Runner:    sorter.NewRunner(fs, *log),
		Log:       *log,
	}

	if !opts.DryRun && (cfg.Journal.Enabled || opts.Journal) {
		j, err := journal.Open(cfg.Journal.Path, fs, cfg.Performance.Workers, *log)
		if err != nil {
			// 运行历史不影响整理本身
			log.Warn().Err(err).Msg("打开运行历史失败，本次不记录")
		} else {
			s.journal = j
		}
	}

	return s, nil
}

func resolveSource(opts *SortOptions, cfg *config.Config) (string, error) {
	dir := opts.SourceDir
	if dir == "" {
		dir = cfg.SourceDir
	}
	if dir == "" {
		resolver := opts.Resolver
		if resolver == nil {
			resolver = platform.DownloadsDir
		}
		return resolver()
	}
	return internal.ExpandPath(dir)
}

// Sort 执行一次整理，并在开启时写入运行历史
func (s *Session) Sort() (*SortResult, error) {
	report, err := s.Runner.Run(s.SourceDir, s.Table)
	if err != nil {
		return nil, err
	}

	result := &SortResult{Report: report}
	if s.journal != nil {
		run, err := s.journal.Record(report)
		if err != nil {
			s.Log.Warn().Err(err).Msg("写入运行历史失败")
		} else {
			result.RunID = run.ID
		}
	}

	return result, nil
}

// Plan 预览本次整理，不改动任何文件
func (s *Session) Plan() (*SortResult, error) {
	plan, err := s.Runner.Plan(s.SourceDir, s.Table)
	if err != nil {
		return nil, err
	}
	return &SortResult{Plan: plan}, nil
}

// Close 关闭运行历史和日志文件
func (s *Session) Close() error {
	var err error
	if s.journal != nil {
		err = s.journal.Close()
	}
	if cerr := logger.Close(); err == nil {
		err = cerr
	}
	return err
}

// RunSort 执行一次整理（或预览）并返回结果
func RunSort(opts *SortOptions) (*SortResult, error) {
	s, err := NewSession(opts)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if opts.DryRun {
		s.Log.Info().Msg("=== 预览模式，不会实际移动文件 ===")
		return s.Plan()
	}

	return s.Sort()
}
