// Package rules 定义扩展名分类规则表，并负责从 JSON/YAML 文件加载它。
//
// 规则表是有序的：表中的顺序就是分类优先级。
package rules

import "strings"

// Rule 一个分类：后缀列表和目标目录
type Rule struct {
	Category    string
	Suffixes    []string
	Destination string
}

// Matches 判断文件名是否以任一后缀结尾（区分大小写，逐字匹配）
func (r Rule) Matches(filename string) bool {
	for _, suffix := range r.Suffixes {
		if strings.HasSuffix(filename, suffix) {
			return true
		}
	}
	return false
}

// Table 有序规则表，运行期间只读
type Table struct {
	Rules []Rule
}

// Categories 按表中顺序返回分类名
func (t *Table) Categories() []string {
	names := make([]string, 0, len(t.Rules))
	for _, r := range t.Rules {
		names = append(names, r.Category)
	}
	return names
}
