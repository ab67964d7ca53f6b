package protocol

import (
	"neocrack/internal/config"
	"neocrack/internal/core/scanner/brute"
)

// Register 注册 SQL 插件
// mysql -> MySQL (3306), pgsql -> PostgreSQL (5432)
func Register(r brute.Registrar, cfg *config.BruteConfig) {
	r.Register("mysql", NewSQL(FlavorMy, NewMySQLConnector()))
	r.Register("pgsql", NewSQL(FlavorPG, NewPostgresConnector(cfg)))
}
