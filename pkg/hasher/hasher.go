package hasher

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// CalculateHash 计算文件内容的 xxHash 值
func CalculateHash(fs afero.Fs, filePath string) (uint64, int64, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	n, err := io.Copy(hash, file)
	if err != nil {
		return 0, 0, fmt.Errorf("计算哈希失败: %w", err)
	}

	return hash.Sum64(), n, nil
}

// Format 将哈希值格式化为 16 位十六进制字符串
func Format(hash uint64) string {
	return fmt.Sprintf("%016x", hash)
}
