package sorter

import "github.com/s3h4n/DL-Sorter/internal/rules"

// Classify 返回文件名匹配的第一个分类规则
// 按规则表顺序遍历，先出现的分类优先；没有匹配时返回 false
func Classify(filename string, table *rules.Table) (rules.Rule, bool) {
	if table == nil {
		return rules.Rule{}, false
	}
	for _, rule := range table.Rules {
		if rule.Matches(filename) {
			return rule, true
		}
	}
	return rules.Rule{}, false
}
