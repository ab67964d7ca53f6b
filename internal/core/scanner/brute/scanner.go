package brute

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neocrack/internal/core/model"
	"neocrack/internal/pkg/logger"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

// BruteResults 结果集合，用于实现 TabularData 接口以便一次性打印所有结果
type BruteResults []*model.Loot

// Headers 实现 TabularData 接口
func (rs BruteResults) Headers() []string {
	return (&model.Loot{}).Headers()
}

// Rows 实现 TabularData 接口
func (rs BruteResults) Rows() [][]string {
	var rows [][]string
	for _, r := range rs {
		rows = append(rows, r.Rows()...)
	}
	return rows
}

// Loots 返回战利品列表，供文件输出使用
func (rs BruteResults) Loots() []*model.Loot {
	return rs
}

// BruteScanner 爆破扫描器
// 串行地对字典中的每组凭据调用一次插件的 Attempt，不做重试和并发调度
type BruteScanner struct {
	registry *Registry
	dict     *DictManager
}

// NewBruteScanner 创建扫描器
func NewBruteScanner(registry *Registry) *BruteScanner {
	return &BruteScanner{
		registry: registry,
		dict:     NewDictManager(),
	}
}

// Run 执行爆破任务
// task.Params["plugin"] 指定插件，task.Timeout 为单次尝试超时
func (s *BruteScanner) Run(ctx context.Context, task *model.Task) (*model.TaskResult, error) {
	startTime := time.Now()

	pluginName, ok := task.Params["plugin"].(string)
	if !ok || pluginName == "" {
		return nil, fmt.Errorf("missing 'plugin' parameter for brute task")
	}

	plugin, err := s.registry.Get(pluginName)
	if err != nil {
		return nil, err
	}

	stopOnSuccess := true
	if v, ok := task.Params["stop_on_success"].(bool); ok {
		stopOnSuccess = v
	}

	result := &model.TaskResult{
		TaskID:     task.ID,
		Status:     model.TaskStatusSuccess,
		ExecutedAt: startTime,
	}

	var loots BruteResults
	for _, creds := range s.dict.Generate(task.Target, task.Params) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		creds := creds
		loot, err := plugin.Attempt(ctx, &creds, task.Timeout)
		result.Attempts++

		entry := logger.Brute(pluginName).WithFields(logrus.Fields{
			"target":   creds.Target,
			"username": creds.Username,
		})

		if err != nil {
			result.Errors++
			// 地址非法对所有凭据都一样，继续没有意义
			if errors.Is(err, ErrInvalidTarget) || errors.Is(err, ErrInvalidTimeout) {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			entry.WithError(err).Warn("attempt failed")
			continue
		}

		if loot == nil {
			entry.Debug("credentials rejected")
			continue
		}

		pterm.Success.Printf("[Brute] FOUND %s | User: %s | Pass: %s\n",
			loot.Target, creds.Username, creds.Password)
		entry.Info("credentials accepted")

		loots = append(loots, loot)
		if stopOnSuccess {
			break
		}
	}

	result.Result = loots
	result.CompletedAt = time.Now()
	return result, nil
}
