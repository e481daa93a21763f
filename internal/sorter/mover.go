package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/internal"
)

// MoveOutcome 一次移动尝试的结果
type MoveOutcome struct {
	Moved     bool
	FinalName string             // 目标目录中的最终文件名，仅在 Moved 时有效
	Kind      internal.ErrorKind // 失败分类，成功时为空
	Err       error
}

// Mover 负责单个文件的移动
type Mover struct {
	Fs  afero.Fs
	Log zerolog.Logger
}

// NewMover 创建 Mover
func NewMover(fsys afero.Fs, log zerolog.Logger) *Mover {
	return &Mover{Fs: fsys, Log: log}
}

// Move 将 sourceDir/filename 移动到 destinationDir
// 目标目录不存在时自动创建；目标文件已存在时先生成新文件名再重命名，绝不覆盖。
// 任何失败都只体现在返回值中，不会 panic 或向上传播
func (m *Mover) Move(filename, sourceDir, destinationDir string) MoveOutcome {
	src := filepath.Join(sourceDir, filename)

	if err := m.ensureDir(destinationDir); err != nil {
		m.Log.Error().
			Err(err).
			Str("destination", destinationDir).
			Str("file", filename).
			Msg("创建目标目录失败，跳过文件")
		return failure(internal.KindDestinationUnavailable, "sorter.ensure_destination", destinationDir, err)
	}

	finalName, err := UniqueName(m.Fs, destinationDir, filename)
	if err != nil {
		m.Log.Error().
			Err(err).
			Str("destination", destinationDir).
			Str("file", filename).
			Msg("生成目标文件名失败")
		return failure(internal.KindMoveFailed, "sorter.unique_name", destinationDir, err)
	}

	if finalName != filename {
		m.Log.Debug().
			Str("file", filename).
			Str("new_name", finalName).
			Msg("文件名冲突，自动重命名")
	}

	dst := filepath.Join(destinationDir, finalName)
	if err := m.Fs.Rename(src, dst); err != nil {
		if m.sourceVanished(src, err) {
			m.Log.Info().
				Str("file", filename).
				Msg("源文件已不存在，可能已被移动")
			return failure(internal.KindSourceVanished, "sorter.move", src, err)
		}

		m.Log.Error().
			Err(err).
			Str("source", src).
			Str("destination", dst).
			Msg("移动文件失败")
		return failure(internal.KindMoveFailed, "sorter.move", src, err)
	}

	m.Log.Info().
		Str("source", src).
		Str("destination", dst).
		Msg("文件已移动")

	return MoveOutcome{Moved: true, FinalName: finalName}
}

// ensureDir 确保目标目录存在，必要时创建所有上级目录
func (m *Mover) ensureDir(dir string) error {
	exists, err := afero.DirExists(m.Fs, dir)
	if err != nil {
		return fmt.Errorf("检查目标目录失败: %w", err)
	}
	if exists {
		return nil
	}

	m.Log.Info().Str("destination", dir).Msg("目标目录不存在，正在创建")

	if err := m.Fs.MkdirAll(dir, internal.DirPerm); err != nil {
		return err
	}

	// 某些 Fs 实现在路径被普通文件占用时不会报错
	if ok, err := afero.DirExists(m.Fs, dir); err != nil || !ok {
		return fmt.Errorf("%s 不是目录", dir)
	}

	m.Log.Info().Str("destination", dir).Msg("目标目录已创建")
	return nil
}

func (m *Mover) sourceVanished(src string, renameErr error) bool {
	if !errors.Is(renameErr, fs.ErrNotExist) {
		return false
	}
	exists, err := pathExists(m.Fs, src)
	return err == nil && !exists
}

func failure(kind internal.ErrorKind, op, path string, err error) MoveOutcome {
	return MoveOutcome{
		Kind: kind,
		Err: &internal.OpError{
			Op:   op,
			Kind: kind,
			Path: path,
			Err:  err,
		},
	}
}
