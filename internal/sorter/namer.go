package sorter

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// UniqueName 返回在 dir 中不存在的文件名
// 如果 filename 本身可用则原样返回，否则依次尝试 base_1.ext、base_2.ext ...
// 只做存在性检查，不写入任何内容
func UniqueName(fsys afero.Fs, dir, filename string) (string, error) {
	return uniqueNameExcluding(fsys, dir, filename, nil)
}

// uniqueNameExcluding 与 UniqueName 相同，但 reserved 中的名字也视为已占用
func uniqueNameExcluding(fsys afero.Fs, dir, filename string, reserved map[string]bool) (string, error) {
	taken := func(name string) (bool, error) {
		if reserved[name] {
			return true, nil
		}
		return pathExists(fsys, filepath.Join(dir, name))
	}

	exists, err := taken(filename)
	if err != nil {
		return "", err
	}
	if !exists {
		return filename, nil
	}

	base, ext := splitName(filename)
	for i := 1; ; i++ {
		candidate := base + "_" + strconv.Itoa(i) + ext
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// splitName 拆分文件名和扩展名
// 只有开头的点（如 .bashrc）不算扩展名
func splitName(filename string) (string, string) {
	stem := strings.TrimLeft(filename, ".")
	ext := filepath.Ext(stem)
	if ext == stem {
		ext = ""
	}
	return filename[:len(filename)-len(ext)], ext
}

// pathExists 使用 Lstat（如果支持），悬空的符号链接也算占用
func pathExists(fsys afero.Fs, path string) (bool, error) {
	var err error
	if lstater, ok := fsys.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(path)
	} else {
		_, err = fsys.Stat(path)
	}

	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("检查文件是否存在失败: %w", err)
}
