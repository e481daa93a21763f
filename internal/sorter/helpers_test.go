package sorter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/s3h4n/DL-Sorter/internal/rules"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("读取文件失败 %s: %v", path, err)
	}
	return string(data)
}

func assertExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, path); !ok {
		t.Errorf("expected %s to exist", path)
	}
}

func assertMissing(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if ok, _ := afero.Exists(fsys, path); ok {
		t.Errorf("expected %s to not exist", path)
	}
}

// newTable 每个 spec 为 {分类, 逗号分隔的后缀, 相对源目录的目标路径}
func newTable(sourceDir string, specs ...[3]string) *rules.Table {
	table := &rules.Table{}
	for _, s := range specs {
		table.Rules = append(table.Rules, rules.Rule{
			Category:    s[0],
			Suffixes:    strings.Split(s[1], ","),
			Destination: filepath.Join(sourceDir, s[2]),
		})
	}
	return table
}
