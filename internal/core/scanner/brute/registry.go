package brute

import (
	"fmt"
	"sort"
	"sync"
)

// Registrar 插件注册器，协议包通过它暴露自己的插件
type Registrar interface {
	Register(name string, p Plugin)
}

// Registry 插件注册表
type Registry struct {
	plugins map[string]Plugin
	mu      sync.RWMutex
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register 注册插件，重名属于编码错误直接 panic
func (r *Registry) Register(name string, p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		panic(fmt.Sprintf("plugin %s registered twice", name))
	}
	r.plugins[name] = p
}

// Get 按名称获取插件
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlugin, name)
	}
	return p, nil
}

// Names 返回排序后的插件名列表
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
