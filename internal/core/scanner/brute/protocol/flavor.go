package protocol

import (
	"fmt"
)

// Flavor SQL 数据库种类 (封闭集合)
type Flavor int

const (
	FlavorMy Flavor = iota // MySQL 协议族
	FlavorPG               // PostgreSQL 协议族
)

// flavorInfo 每种数据库的静态信息
// scheme 同时作为连接 URI 的 scheme 和 Loot 的插件名，database 为默认连接的库
type flavorInfo struct {
	description string
	port        uint16
	scheme      string
	database    string
}

// flavors 进程级只读表，初始化后不再修改
var flavors = map[Flavor]flavorInfo{
	FlavorMy: {
		description: "MySQL password authentication.",
		port:        3306,
		scheme:      "mysql",
		database:    "mysql",
	},
	FlavorPG: {
		description: "PostgreSQL password authentication.",
		port:        5432,
		scheme:      "postgres",
		database:    "postgres",
	},
}

// Flavors 返回所有支持的数据库种类
func Flavors() []Flavor {
	return []Flavor{FlavorMy, FlavorPG}
}

// lookup 缺失条目属于编码错误，直接 panic
func (f Flavor) lookup() flavorInfo {
	info, ok := flavors[f]
	if !ok {
		panic(fmt.Sprintf("protocol: no registry entry for %s", f))
	}
	return info
}

// Description 返回描述
func (f Flavor) Description() string {
	return f.lookup().description
}

// DefaultPort 返回默认端口
func (f Flavor) DefaultPort() uint16 {
	return f.lookup().port
}

// Scheme 返回连接 URI 的 scheme
func (f Flavor) Scheme() string {
	return f.lookup().scheme
}

// Database 返回默认连接的库名
func (f Flavor) Database() string {
	return f.lookup().database
}

func (f Flavor) String() string {
	switch f {
	case FlavorMy:
		return "My"
	case FlavorPG:
		return "PG"
	}
	return fmt.Sprintf("Flavor(%d)", int(f))
}
