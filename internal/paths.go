package internal

import (
	"os"
	"path/filepath"
)

// ExpandPath 将以 ~/ 开头的路径展开为用户主目录下的绝对路径
func ExpandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
