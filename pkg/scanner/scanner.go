package scanner

import (
	"strings"

	"github.com/spf13/afero"
)

type Snapshotter struct {
	Fs            afero.Fs
	IncludeHidden bool
}

func NewSnapshotter(fs afero.Fs) *Snapshotter {
	return &Snapshotter{
		Fs:            fs,
		IncludeHidden: true,
	}
}

// Snapshot 列出 dir 下的文件名（不递归，不含目录），结果按名称排序
func (s *Snapshotter) Snapshot(dir string) ([]string, error) {
	entries, err := afero.ReadDir(s.Fs, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !s.IncludeHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
