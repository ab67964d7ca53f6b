package options

import (
	"fmt"
	"time"

	"neocrack/internal/core/model"
)

// BruteOptions 爆破参数，同时作为插件 Setup 的入参
type BruteOptions struct {
	Target        string
	Plugin        string
	Users         []string
	Passwords     []string
	Timeout       time.Duration
	StopOnSuccess bool
	Output        string
}

func NewBruteOptions() *BruteOptions {
	return &BruteOptions{
		Timeout:       5 * time.Second,
		StopOnSuccess: true,
	}
}

func (o *BruteOptions) Validate() error {
	if o.Target == "" {
		return fmt.Errorf("target is required")
	}
	if o.Plugin == "" {
		return fmt.Errorf("plugin is required")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func (o *BruteOptions) ToTask() *model.Task {
	task := model.NewTask(model.TaskTypeBrute, o.Target)
	task.Timeout = o.Timeout

	task.Params["plugin"] = o.Plugin
	task.Params["stop_on_success"] = o.StopOnSuccess
	if len(o.Users) > 0 {
		task.Params["users"] = o.Users
	}
	if len(o.Passwords) > 0 {
		task.Params["passwords"] = o.Passwords
	}

	return task
}
