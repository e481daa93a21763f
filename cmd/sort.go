package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/s3h4n/DL-Sorter/app"
	"github.com/s3h4n/DL-Sorter/internal"
	"github.com/s3h4n/DL-Sorter/internal/sorter"
	"github.com/s3h4n/DL-Sorter/tui"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "按规则整理下载目录",
	Long: `对下载目录做一次整理:
1. 读取规则文件（JSON 或 YAML，分类顺序即匹配优先级）
2. 对下载目录做一次快照，子目录不参与整理
3. 按分类顺序把匹配的文件移动到目标目录，同名文件自动重命名
4. 输出每个分类成功移动的文件数`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	rulesFile, _ := cmd.Flags().GetString("rules")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	useTUI, _ := cmd.Flags().GetBool("tui")
	verbose, _ := cmd.Flags().GetBool("verbose")
	journal, _ := cmd.Flags().GetBool("journal")

	opts := &app.SortOptions{
		ConfigFile: cfgFile,
		SourceDir:  source,
		RulesFile:  rulesFile,
		DryRun:     dryRun,
		Verbose:    verbose,
		Journal:    journal,
		LogOutput:  cmd.ErrOrStderr(),
	}

	out := cmd.OutOrStdout()

	if useTUI && !dryRun {
		// TUI 占用终端，日志只写入日志文件
		opts.LogOutput = io.Discard
		return runSortTUI(out, opts)
	}

	result, err := app.RunSort(opts)
	if err != nil {
		return err
	}

	if dryRun {
		printPlan(out, result.Plan)
		return nil
	}

	printReport(out, result)
	return nil
}

func runSortTUI(out io.Writer, opts *app.SortOptions) error {
	s, err := app.NewSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := tui.Run(s)
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(out, "已取消，未移动任何文件")
		return nil
	}
	if err != nil {
		return err
	}

	printReport(out, result)
	return nil
}

func printPlan(out io.Writer, plan []sorter.PlannedMove) {
	if len(plan) == 0 {
		fmt.Fprintln(out, "没有需要整理的文件")
		return
	}

	rows := make([][]string, 0, len(plan))
	for _, p := range plan {
		rows = append(rows, []string{p.Category, p.Filename, p.Destination})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"分类", "文件", "目标"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
		[]string{"合计", strconv.Itoa(len(plan)), ""},
	))
	fmt.Fprintln(out, "预览模式，未移动任何文件")
}

func printReport(out io.Writer, result *app.SortResult) {
	report := result.Report

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		rows = append(rows, []string{res.Category, strconv.Itoa(res.SuccessfulMoves)})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"分类", "已移动"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
		[]string{"合计", strconv.Itoa(report.Total())},
	))

	var failures [][]string
	for _, f := range report.Failures {
		if f.Kind == internal.KindSourceVanished {
			continue
		}
		reason := string(f.Kind)
		if f.Err != nil {
			reason = f.Err.Error()
		}
		failures = append(failures, []string{f.Category, f.Source, reason})
	}
	if len(failures) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"分类", "文件", "原因"},
			failures,
			[]columnAlignment{alignLeft, alignLeft, alignLeft},
			nil,
		))
	}

	fmt.Fprintf(out, "未分类: %d  失败: %d  耗时: %s\n",
		len(report.Unclassified), len(failures), report.Elapsed().Round(time.Millisecond))
	if result.RunID != "" {
		fmt.Fprintf(out, "运行编号: %s\n", result.RunID)
	}
}

func init() {
	sortCmd.Flags().StringP("source", "s", "", "要整理的目录（默认: 系统下载目录）")
	sortCmd.Flags().String("rules", "", "规则文件路径（默认: 配置中的 rules_file）")
	sortCmd.Flags().Bool("dry-run", false, "只预览，不移动文件")
	sortCmd.Flags().Bool("tui", false, "在交互界面中整理")
	sortCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")
	sortCmd.Flags().Bool("journal", false, "记录本次运行历史（即使配置中未开启）")

	rootCmd.AddCommand(sortCmd)
}
