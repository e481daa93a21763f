package internal

const (
	// 规则文件默认路径（相对于当前工作目录）
	DefaultRulesFile = "structure.json"

	// 运行历史数据库默认路径
	DefaultJournalPath = "~/.dl-sorter/history.db"

	// 指纹计算的默认工作线程数
	DefaultWorkers = 4

	// 缓冲区大小
	DefaultBufferSize = 1000

	// 新建目标目录的权限
	DirPerm = 0755
)
