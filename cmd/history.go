package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s3h4n/DL-Sorter/app"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看运行历史",
	Long: `列出最近的整理记录。需要在配置中开启 journal.enabled，或在 sort 时加 --journal。
使用 --run 查看某次运行的移动明细。`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	runID, _ := cmd.Flags().GetString("run")

	result, err := app.RunHistory(&app.HistoryOptions{
		ConfigFile: cfgFile,
		Limit:      limit,
		RunID:      runID,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if runID != "" {
		if len(result.Moves) == 0 {
			fmt.Fprintf(out, "运行 %s 没有移动记录\n", runID)
			return nil
		}
		rows := make([][]string, 0, len(result.Moves))
		for _, mv := range result.Moves {
			rows = append(rows, []string{mv.Category, mv.SourcePath, mv.DestinationPath, strconv.FormatInt(mv.Size, 10), mv.Hash})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"分类", "原路径", "新路径", "大小", "指纹"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			nil,
		))
		return nil
	}

	if len(result.Runs) == 0 {
		fmt.Fprintln(out, "暂无运行历史")
		return nil
	}

	rows := make([][]string, 0, len(result.Runs))
	for _, run := range result.Runs {
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.SourceDir,
			strconv.Itoa(run.Moved),
			strconv.Itoa(run.Failed),
			strconv.Itoa(run.Unclassified),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"运行编号", "开始时间", "目录", "已移动", "失败", "未分类"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
		nil,
	))
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "显示的记录条数")
	historyCmd.Flags().String("run", "", "显示指定运行编号的移动明细")

	rootCmd.AddCommand(historyCmd)
}
