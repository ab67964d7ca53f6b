package model

import (
	"time"
)

// LootField 战利品中的一个命名字段，保持插入顺序
type LootField struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Loot 一次成功验证的凭据记录
// Plugin 为协议 scheme (mysql/postgres)，Target 为解析后的 host:port
type Loot struct {
	Plugin  string      `json:"plugin" yaml:"plugin"`
	Target  string      `json:"target" yaml:"target"`
	Fields  []LootField `json:"fields" yaml:"fields"`
	FoundAt time.Time   `json:"found_at" yaml:"found_at"`
}

// NewLoot 创建战利品记录，fields 按传入顺序保存
func NewLoot(plugin, target string, fields ...LootField) *Loot {
	return &Loot{
		Plugin:  plugin,
		Target:  target,
		Fields:  fields,
		FoundAt: time.Now(),
	}
}

// Get 按名称取字段
func (l *Loot) Get(key string) (string, bool) {
	for _, f := range l.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Headers 实现 TabularData 接口
func (l *Loot) Headers() []string {
	return []string{"Plugin", "Target", "Username", "Password"}
}

// Rows 实现 TabularData 接口
func (l *Loot) Rows() [][]string {
	user, _ := l.Get("username")
	pass, _ := l.Get("password")
	return [][]string{{l.Plugin, l.Target, user, pass}}
}
