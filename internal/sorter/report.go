package sorter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/internal/rules"
)

// CategoryResult 一个分类的成功移动数
type CategoryResult struct {
	Category        string
	SuccessfulMoves int
}

// Relocation 一次成功的移动
type Relocation struct {
	Category    string
	Source      string
	Destination string
}

// Failure 一次未成功的移动
type Failure struct {
	Category string
	Source   string
	Kind     internal.ErrorKind
	Err      error
}

// Report 一次运行的结果，每次运行重新创建
type Report struct {
	SourceDir    string
	Results      []CategoryResult // 与规则表顺序一致
	Relocations  []Relocation
	Failures     []Failure
	Unclassified []string
	StartTime    time.Time
	EndTime      time.Time
}

func newReport(sourceDir string, table *rules.Table) *Report {
	r := &Report{
		SourceDir: sourceDir,
		Results:   make([]CategoryResult, 0, len(table.Rules)),
	}
	for _, rule := range table.Rules {
		r.Results = append(r.Results, CategoryResult{Category: rule.Category})
	}
	return r
}

func (r *Report) record(category, source, destination string, outcome MoveOutcome) {
	if outcome.Moved {
		for i := range r.Results {
			if r.Results[i].Category == category {
				r.Results[i].SuccessfulMoves++
				break
			}
		}
		r.Relocations = append(r.Relocations, Relocation{
			Category:    category,
			Source:      source,
			Destination: destination,
		})
		return
	}

	r.Failures = append(r.Failures, Failure{
		Category: category,
		Source:   source,
		Kind:     outcome.Kind,
		Err:      outcome.Err,
	})
}

// Counts 返回分类到成功移动数的映射
func (r *Report) Counts() map[string]int {
	counts := make(map[string]int, len(r.Results))
	for _, res := range r.Results {
		counts[res.Category] = res.SuccessfulMoves
	}
	return counts
}

// Count 返回某个分类的成功移动数
func (r *Report) Count(category string) int {
	for _, res := range r.Results {
		if res.Category == category {
			return res.SuccessfulMoves
		}
	}
	return 0
}

// Total 返回所有分类的成功移动总数
func (r *Report) Total() int {
	total := 0
	for _, res := range r.Results {
		total += res.SuccessfulMoves
	}
	return total
}

// FailuresOf 返回指定分类的失败
func (r *Report) FailuresOf(kind internal.ErrorKind) []Failure {
	var out []Failure
	for _, f := range r.Failures {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// Elapsed 返回运行耗时
func (r *Report) Elapsed() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func (r *Report) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 整理统计 ==========\n")
	for _, res := range r.Results {
		buf.WriteString(fmt.Sprintf("%s: %d\n", res.Category, res.SuccessfulMoves))
	}
	buf.WriteString(fmt.Sprintf("已移动: %d\n", r.Total()))
	buf.WriteString(fmt.Sprintf("未分类: %d\n", len(r.Unclassified)))
	buf.WriteString(fmt.Sprintf("失败: %d\n", len(r.Failures)-len(r.FailuresOf(internal.KindSourceVanished))))
	buf.WriteString("============================")

	return buf.String()
}
