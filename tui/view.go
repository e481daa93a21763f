package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	switch m.state {
	case StatePlanning:
		return m.planningView()
	case StateConfirm:
		return m.confirmView()
	case StateProcessing:
		return m.processingView()
	case StateComplete:
		return m.completeView()
	default:
		return "未知状态"
	}
}

func (m model) planningView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔍 正在扫描下载目录...") + "\n\n")
	b.WriteString(m.spinner.View() + " " + filePathStyle.Render(m.session.SourceDir) + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m model) confirmView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📦 下载目录整理") + "\n\n")
	b.WriteString(labelStyle.Render("源目录：") + filePathStyle.Render(m.session.SourceDir) + "\n\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	if len(m.plan) == 0 {
		b.WriteString("  没有需要整理的文件\n\n")
		b.WriteString(hintStyle.Render("按 Enter 确认，q 退出") + "\n")
		return lipgloss.NewStyle().Padding(2).Render(b.String())
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("将要移动 %d 个文件：", len(m.plan))) + "\n")
	for i, p := range m.plan {
		if i == maxPlanLines {
			b.WriteString(hintStyle.Render(fmt.Sprintf("  ... 另有 %d 个文件", len(m.plan)-maxPlanLines)) + "\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s → %s\n",
			categoryStyle.Render(fmt.Sprintf("[%s]", p.Category)),
			p.Filename,
			filePathStyle.Render(p.Destination)))
	}

	b.WriteString("\n" + separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 开始整理，q 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m model) processingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 正在整理文件...") + "\n\n")

	b.WriteString(labelStyle.Render("处理进度：") + "\n")
	b.WriteString(m.progressBar.View() + "\n\n")

	b.WriteString(statsBoxStyle.Render(m.renderStats()) + "\n\n")

	b.WriteString(labelStyle.Render("当前文件：") + "\n")
	b.WriteString(m.spinner.View() + " " + filePathStyle.Render(m.currentFile) + "\n\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("❌ 整理失败") + "\n\n")
		b.WriteString(m.err.Error() + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ 整理完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.renderFinalStats()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 或 q 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m model) renderStats() string {
	return fmt.Sprintf("已处理: %d/%d\n失败: %d", m.processed, m.total, m.failed)
}

func (m model) renderFinalStats() string {
	if m.result == nil || m.result.Report == nil {
		return ""
	}
	report := m.result.Report

	var b strings.Builder
	for _, res := range report.Results {
		b.WriteString(fmt.Sprintf("%s %d\n", categoryStyle.Render(res.Category+":"), res.SuccessfulMoves))
	}
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 30)) + "\n")
	b.WriteString(fmt.Sprintf("已移动: %d\n", report.Total()))
	b.WriteString(fmt.Sprintf("未分类: %d\n", len(report.Unclassified)))
	b.WriteString(fmt.Sprintf("失败: %d\n", m.failed))
	b.WriteString(fmt.Sprintf("耗时: %s", report.Elapsed().Round(time.Millisecond)))
	if m.result.RunID != "" {
		b.WriteString("\n运行编号: " + m.result.RunID)
	}
	return b.String()
}
