package dialer

import (
	"sync"
	"time"
)

// 全局拨号器实例，CLI 启动时根据 proxy.url 替换
var globalDialer Dialer = NewDefaultDialer(10 * time.Second)

var mu sync.RWMutex

// SetGlobalDialer 设置全局拨号器 (例如配置了全局代理时)
func SetGlobalDialer(d Dialer) {
	mu.Lock()
	defer mu.Unlock()
	globalDialer = d
}

// Get 获取全局拨号器
func Get() Dialer {
	mu.RLock()
	defer mu.RUnlock()
	return globalDialer
}

// FromURL 根据代理地址构造拨号器，空地址返回直连拨号器
func FromURL(proxyURL string, timeout time.Duration) (Dialer, error) {
	if proxyURL == "" {
		return NewDefaultDialer(timeout), nil
	}
	return NewProxyDialer(proxyURL, timeout)
}
