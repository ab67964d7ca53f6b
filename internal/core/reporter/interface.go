/**
 * 结果上报接口定义
 * @author: Sun977
 * @date: 2026.02.10
 * @description: 定义结果输出的通用接口，解耦 Console/File 输出。
 */

package reporter

import (
	"context"
	"errors"

	"neocrack/internal/core/model"
)

// TabularData 是一个可以被渲染为表格的数据接口
type TabularData interface {
	Headers() []string
	Rows() [][]string
}

// Reporter 定义结果上报的行为
type Reporter interface {
	// Report 上报/输出任务结果
	Report(ctx context.Context, result *model.TaskResult) error
}

// MultiReporter 支持同时向多个目标上报 (e.g., Console + File)
type MultiReporter struct {
	reporters []Reporter
}

func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	return &MultiReporter{
		reporters: reporters,
	}
}

func (m *MultiReporter) Report(ctx context.Context, result *model.TaskResult) error {
	var errs []error
	for _, r := range m.reporters {
		if err := r.Report(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// lootsOf 从任务结果中取出战利品列表
func lootsOf(result *model.TaskResult) []*model.Loot {
	if result == nil || result.Result == nil {
		return nil
	}
	switch v := result.Result.(type) {
	case []*model.Loot:
		return v
	case *model.Loot:
		if v == nil {
			return nil
		}
		return []*model.Loot{v}
	case interface{ Loots() []*model.Loot }:
		return v.Loots()
	}
	return nil
}
