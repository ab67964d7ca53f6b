package brute

import (
	"context"
	"errors"
	"time"

	"neocrack/internal/core/model"
	"neocrack/internal/core/options"
)

// Plugin 认证协议插件接口
type Plugin interface {
	// Description 返回插件描述，构造后固定不变
	Description() string

	// Setup 接收全局参数做插件级配置
	Setup(opts *options.BruteOptions) error

	// Attempt 对单组凭据做一次有时限的验证
	// 返回:
	// - (*Loot, nil): 认证成功，恰好一条记录
	// - (nil, nil): 尝试完成但未成功 (密码错误等)，继续下一组
	// - (nil, error): 无法完成尝试 (地址非法/超时)，见下方错误定义
	Attempt(ctx context.Context, creds *model.Credentials, timeout time.Duration) (*model.Loot, error)
}

var (
	// ErrInvalidTarget 目标地址非法 -> 不消耗超时预算，立即返回
	ErrInvalidTarget = errors.New("invalid target address")

	// ErrInvalidTimeout 超时必须为正数
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrTimeout 连接+认证未在预算内完成 -> 通常意味着网络问题
	ErrTimeout = errors.New("attempt timed out")

	// ErrUnknownPlugin 未注册的插件名
	ErrUnknownPlugin = errors.New("unknown plugin")
)
