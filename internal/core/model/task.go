/**
 * 任务模型定义 (Core Domain)
 * @author: Sun977
 * @date: 2026.02.10
 * @description: 爆破任务模型，CLI 参数最终都转换为此结构体交给 BruteScanner。
 */

package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskType 定义任务类型
type TaskType string

const (
	TaskTypeBrute   TaskType = "brute"   // 字典爆破 (多组凭据)
	TaskTypeAttempt TaskType = "attempt" // 单次凭据验证
)

// TaskStatus 定义任务状态
type TaskStatus string

const (
	TaskStatusSuccess TaskStatus = "success"
	TaskStatusFailed  TaskStatus = "failed"
)

// Task 核心任务结构体
type Task struct {
	ID        string                 `json:"id"`
	Type      TaskType               `json:"type"`
	Target    string                 `json:"target"`           // 扫描目标 host[:port]
	Params    map[string]interface{} `json:"params,omitempty"` // 任务特定参数 (plugin/users/passwords/stop_on_success)
	Timeout   time.Duration          `json:"timeout"`          // 单次尝试超时
	CreatedAt time.Time              `json:"created_at"`
}

// TaskResult 任务执行结果
type TaskResult struct {
	TaskID      string      `json:"task_id"`
	Status      TaskStatus  `json:"status"`
	Result      interface{} `json:"result"`
	Attempts    int         `json:"attempts"` // 实际发起的尝试次数
	Errors      int         `json:"errors"`   // 基础设施错误次数 (超时/地址非法)
	Error       string      `json:"error,omitempty"`
	ExecutedAt  time.Time   `json:"executed_at"`
	CompletedAt time.Time   `json:"completed_at"`
}

// NewTask 创建一个新任务
func NewTask(taskType TaskType, target string) *Task {
	return &Task{
		ID:        uuid.NewString(),
		Type:      taskType,
		Target:    target,
		CreatedAt: time.Now(),
		Params:    make(map[string]interface{}),
	}
}
