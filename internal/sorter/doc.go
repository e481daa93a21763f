// Package sorter 是下载目录整理的核心：按后缀分类、生成不冲突的文件名、
// 逐个移动文件并汇总每个分类的成功数。
//
// 一次运行只读取一次源目录快照，所有文件系统操作在同一个 goroutine 中顺序完成。
// 源目录和目标目录在运行期间视为单写者资源，不加锁。
//
// 单个文件的失败只记录在 MoveOutcome 中，不会中断整个批次；
// 未能移动的文件保持在源目录中，等待下次运行。
package sorter
