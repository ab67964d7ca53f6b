package brute

import (
	"strings"

	"neocrack/internal/core/model"
)

// DefaultTopUsers 内置 Top 用户名 (数据库场景)
var DefaultTopUsers = []string{
	"root", "admin", "mysql", "postgres", "test", "user", "guest",
}

// DefaultTopPasswords 内置 Top 弱口令
// 空密码是数据库最常见的弱口令之一
var DefaultTopPasswords = []string{
	"", "123456", "password", "12345678", "123456789", "12345", "123",
	"root", "admin", "test", "111111", "1234567",
	"%user%", "%user%123", "%user%@123", "123%user%",
}

// DictManager 字典管理器
type DictManager struct{}

// NewDictManager 创建字典管理器
func NewDictManager() *DictManager {
	return &DictManager{}
}

// Generate 生成针对 target 的凭据列表 (User * Pass 笛卡尔积)
// params: 任务参数
//   - "users": []string 或 string (逗号分隔), 覆盖内置用户名
//   - "passwords": []string 或 string (逗号分隔), 覆盖内置密码
func (d *DictManager) Generate(target string, params map[string]interface{}) []model.Credentials {
	users := extractStringSlice(params, "users", DefaultTopUsers)
	passs := extractStringSlice(params, "passwords", DefaultTopPasswords)

	list := make([]model.Credentials, 0, len(users)*len(passs))
	for _, u := range users {
		for _, p := range passs {
			list = append(list, model.Credentials{
				Target:   target,
				Username: u,
				Password: strings.ReplaceAll(p, "%user%", u),
			})
		}
	}
	return list
}

// extractStringSlice 从 map 中提取字符串切片
func extractStringSlice(m map[string]interface{}, key string, defaultVal []string) []string {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok {
		return defaultVal
	}

	switch v := val.(type) {
	case []string:
		if len(v) == 0 {
			return defaultVal
		}
		return v
	case string:
		if v == "" {
			return defaultVal
		}
		var res []string
		for _, p := range strings.Split(v, ",") {
			if trim := strings.TrimSpace(p); trim != "" {
				res = append(res, trim)
			}
		}
		if len(res) == 0 {
			return defaultVal
		}
		return res
	case []interface{}:
		var res []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				res = append(res, s)
			}
		}
		if len(res) == 0 {
			return defaultVal
		}
		return res
	}

	return defaultVal
}
