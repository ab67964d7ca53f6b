package options

import (
	"neocrack/internal/core/model"
)

// TaskOption 命令行参数的统一入口: 先校验，再转换为任务交给扫描器
type TaskOption interface {
	Validate() error
	ToTask() *model.Task
}
