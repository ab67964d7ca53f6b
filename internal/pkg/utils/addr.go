/**
 * 目标地址解析工具
 * @author: Sun977
 * @date: 2026.02.10
 * @description: 将 "host[:port]" 形式的目标字符串规范化为 "host:port"，缺省端口由调用方提供。
 */

package utils

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ParseTargetAddress 解析目标地址
// target: 用户输入 (e.g. "db.example.com", "10.0.0.1:3307", "[::1]", "[fe80::1]:5432")
// defaultPort: 目标未携带端口时使用的端口
// 返回规范化后的 "host:port" (IPv6 带方括号)
func ParseTargetAddress(target string, defaultPort uint16) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("empty target address")
	}

	host, port, err := net.SplitHostPort(target)
	if err != nil {
		// 不带端口的写法: 主机名 / IPv4 / [IPv6] / 裸 IPv6
		host = target
		if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
			host = host[1 : len(host)-1]
			if net.ParseIP(host) == nil {
				return "", fmt.Errorf("invalid ipv6 address '%s'", target)
			}
		} else if strings.Contains(host, ":") && net.ParseIP(host) == nil {
			return "", fmt.Errorf("invalid target address '%s': %v", target, err)
		}
		port = strconv.Itoa(int(defaultPort))
	}

	if err := validateHost(host); err != nil {
		return "", fmt.Errorf("invalid target address '%s': %w", target, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil || p == 0 {
		return "", fmt.Errorf("invalid port '%s' in target '%s'", port, target)
	}

	return net.JoinHostPort(host, strconv.FormatUint(p, 10)), nil
}

// validateHost 校验主机部分: IP 直接通过，否则按 RFC 1123 主机名规则校验
func validateHost(host string) error {
	if host == "" {
		return fmt.Errorf("missing host")
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("hostname too long")
	}

	for _, label := range strings.Split(strings.TrimSuffix(host, "."), ".") {
		if label == "" || len(label) > 63 {
			return fmt.Errorf("invalid hostname label '%s'", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("invalid hostname label '%s'", label)
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			default:
				return fmt.Errorf("invalid character %q in hostname", r)
			}
		}
	}
	return nil
}
