// Package journal 将每次整理的结果写入 SQLite，供 history 命令查询。
// 默认关闭；开启后只在运行结束时写入，不影响整理本身。
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/internal/sorter"
	"github.com/s3h4n/DL-Sorter/pkg/hasher"
)

type RunRecord struct {
	ID           string    `gorm:"primaryKey"`
	SourceDir    string    `gorm:"not null"`
	StartedAt    time.Time `gorm:"index;not null"`
	FinishedAt   time.Time `gorm:"not null"`
	Moved        int
	Failed       int
	Unclassified int
	Moves        []MoveRecord `gorm:"foreignKey:RunID"`
}

func (RunRecord) TableName() string {
	return "runs"
}

type MoveRecord struct {
	ID              int64  `gorm:"primaryKey"`
	RunID           string `gorm:"index;not null"`
	Category        string `gorm:"not null"`
	SourcePath      string `gorm:"not null"`
	DestinationPath string `gorm:"not null"`
	Size            int64
	Hash            string
}

func (MoveRecord) TableName() string {
	return "moves"
}

type Journal struct {
	db      *gorm.DB
	fs      afero.Fs
	workers int
	log     zerolog.Logger
}

// Open 打开（必要时创建）运行历史数据库
func Open(dbPath string, fs afero.Fs, workers int, log zerolog.Logger) (*Journal, error) {
	expandedPath, err := internal.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("扩展数据库路径失败: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), internal.DirPerm); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(expandedPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("打开数据库连接失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库连接失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&RunRecord{}, &MoveRecord{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("创建数据库表失败: %w", err)
	}

	log.Debug().Str("path", expandedPath).Msg("运行历史数据库已打开")

	return &Journal{
		db:      db,
		fs:      fs,
		workers: workers,
		log:     log,
	}, nil
}

// Record 保存一次运行的结果
// 已移动文件的指纹在运行结束后并发计算，单个文件计算失败时只留空哈希
func (j *Journal) Record(report *sorter.Report) (*RunRecord, error) {
	paths := make([]string, 0, len(report.Relocations))
	for _, r := range report.Relocations {
		paths = append(paths, r.Destination)
	}

	hashes, err := hasher.HashAll(j.fs, paths, j.workers)
	if err != nil {
		return nil, fmt.Errorf("计算文件指纹失败: %w", err)
	}

	run := &RunRecord{
		ID:           uuid.New().String(),
		SourceDir:    report.SourceDir,
		StartedAt:    report.StartTime,
		FinishedAt:   report.EndTime,
		Moved:        report.Total(),
		Failed:       len(report.Failures) - len(report.FailuresOf(internal.KindSourceVanished)),
		Unclassified: len(report.Unclassified),
		Moves:        make([]MoveRecord, 0, len(report.Relocations)),
	}

	for i, r := range report.Relocations {
		move := MoveRecord{
			Category:        r.Category,
			SourcePath:      r.Source,
			DestinationPath: r.Destination,
		}
		if res := hashes[i]; res.Error == nil {
			move.Hash = hasher.Format(res.Hash)
			move.Size = res.Size
		} else {
			j.log.Warn().Err(res.Error).Str("file", r.Destination).Msg("计算文件指纹失败")
		}
		run.Moves = append(run.Moves, move)
	}

	if err := j.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("保存运行记录失败: %w", err)
	}

	j.log.Debug().Str("run_id", run.ID).Int("moves", len(run.Moves)).Msg("运行记录已保存")
	return run, nil
}

// Recent 按开始时间倒序返回最近的运行记录（不含移动明细）
func (j *Journal) Recent(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	q := j.db.Order("started_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("查询运行记录失败: %w", err)
	}
	return runs, nil
}

// Moves 返回某次运行的移动明细
func (j *Journal) Moves(runID string) ([]MoveRecord, error) {
	var moves []MoveRecord
	if err := j.db.Where("run_id = ?", runID).Order("id").Find(&moves).Error; err != nil {
		return nil, fmt.Errorf("查询移动记录失败: %w", err)
	}
	return moves, nil
}

func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
