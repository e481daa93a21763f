package rules

import (
	_ "embed"
)

//go:embed sample.json
var sample []byte

// Sample 返回内置的示例规则文件内容
func Sample() []byte {
	return append([]byte(nil), sample...)
}
