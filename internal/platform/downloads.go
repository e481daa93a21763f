// Package platform 解析当前系统的下载目录
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/s3h4n/DL-Sorter/internal"
)

// Resolver 返回要整理的源目录
type Resolver func() (string, error)

// Env 解析所需的环境信息，便于测试时替换
type Env struct {
	GOOS    string
	HomeDir func() (string, error)
	Getenv  func(string) string
}

// HostEnv 返回当前进程的环境
func HostEnv() Env {
	return Env{
		GOOS:    runtime.GOOS,
		HomeDir: os.UserHomeDir,
		Getenv:  os.Getenv,
	}
}

// DownloadsDir 返回当前系统的下载目录
func DownloadsDir() (string, error) {
	return HostEnv().DownloadsDir()
}

// DownloadsDir 按操作系统解析下载目录
// Linux 优先使用 XDG_DOWNLOAD_DIR，其余情况为主目录下的 Downloads
func (e Env) DownloadsDir() (string, error) {
	home, err := e.HomeDir()
	if err != nil {
		return "", fmt.Errorf("获取用户主目录失败: %w", err)
	}

	switch e.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		if xdg := strings.TrimSpace(e.Getenv("XDG_DOWNLOAD_DIR")); xdg != "" {
			xdg = strings.Replace(xdg, "$HOME", home, 1)
			if filepath.IsAbs(xdg) {
				return filepath.Clean(xdg), nil
			}
		}
		return filepath.Join(home, "Downloads"), nil
	case "windows", "darwin":
		return filepath.Join(home, "Downloads"), nil
	default:
		return "", fmt.Errorf("%w: %s", internal.ErrUnsupportedOS, e.GOOS)
	}
}
