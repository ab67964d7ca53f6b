package protocol

import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"strings"
	"time"

	"neocrack/internal/config"
	"neocrack/internal/core/lib/network/dialer"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Connector 底层数据库客户端
// Connect 用 uri 中的凭据建立恰好一个连接并完成认证，返回前释放所有资源
// ctx 到期或取消时必须尽快返回
type Connector interface {
	Connect(ctx context.Context, uri *url.URL) error
}

// ConnectorFunc 函数适配器
type ConnectorFunc func(ctx context.Context, uri *url.URL) error

func (f ConnectorFunc) Connect(ctx context.Context, uri *url.URL) error {
	return f(ctx, uri)
}

// mysqlDialNet 注册给 go-sql-driver 的自定义网络名，拨号走全局 Dialer (直连/SOCKS5)
const mysqlDialNet = "neocrack-tcp"

func init() {
	mysql.RegisterDialContext(mysqlDialNet, func(ctx context.Context, addr string) (net.Conn, error) {
		return dialer.Get().DialContext(ctx, "tcp", addr)
	})
}

// MySQLConnector 基于 go-sql-driver/mysql 的连接器
type MySQLConnector struct{}

func NewMySQLConnector() *MySQLConnector {
	return &MySQLConnector{}
}

func (c *MySQLConnector) Connect(ctx context.Context, uri *url.URL) error {
	connector, err := mysql.NewConnector(mysqlConfig(uri))
	if err != nil {
		return err
	}

	// 一次性连接池: 只允许一个连接，不保留空闲连接
	db := sql.OpenDB(connector)
	defer db.Close()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	// PingContext 才会真正建立连接并完成认证
	return db.PingContext(ctx)
}

// mysqlConfig go-sql-driver 不接受 URI 形式的 DSN，这里转换为驱动配置
func mysqlConfig(uri *url.URL) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = mysqlDialNet
	cfg.Addr = uri.Host
	cfg.DBName = strings.TrimPrefix(uri.Path, "/")
	if uri.User != nil {
		cfg.User = uri.User.Username()
		cfg.Passwd, _ = uri.User.Password()
	}
	return cfg
}

// PQConnector 基于 lib/pq 的 PostgreSQL 连接器
type PQConnector struct {
	sslMode string
}

func NewPQConnector(sslMode string) *PQConnector {
	return &PQConnector{sslMode: sslMode}
}

func (c *PQConnector) Connect(ctx context.Context, uri *url.URL) error {
	connector, err := pq.NewConnector(withSSLMode(uri, c.sslMode))
	if err != nil {
		return err
	}
	connector.Dialer(pqDialer{dialer.Get()})

	db := sql.OpenDB(connector)
	defer db.Close()
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	return db.PingContext(ctx)
}

// pqDialer 将全局 Dialer 适配为 lib/pq 的 Dialer/DialerContext
type pqDialer struct {
	d dialer.Dialer
}

func (p pqDialer) Dial(network, address string) (net.Conn, error) {
	return p.d.DialContext(context.Background(), network, address)
}

func (p pqDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return p.d.DialContext(ctx, network, address)
}

// DialContext lib/pq 的启动握手不观察 ctx，连接的生命周期在这里绑定到 ctx:
// 截止时间同步为读写 deadline，ctx 结束时关闭连接
func (p pqDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	conn, err := p.d.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return nil, err
		}
	}
	context.AfterFunc(ctx, func() { conn.Close() })
	return conn, nil
}

// PGXConnector 基于 pgxpool 的 PostgreSQL 连接器
type PGXConnector struct {
	sslMode string
}

func NewPGXConnector(sslMode string) *PGXConnector {
	return &PGXConnector{sslMode: sslMode}
}

func (c *PGXConnector) Connect(ctx context.Context, uri *url.URL) error {
	cfg, err := pgxpool.ParseConfig(withSSLMode(uri, c.sslMode))
	if err != nil {
		return err
	}
	cfg.MaxConns = 1
	cfg.MinConns = 0
	cfg.ConnConfig.DialFunc = dialer.Get().DialContext

	// NewWithConfig 不建立连接，Ping 时才获取第一个连接
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return pool.Ping(ctx)
}

// withSSLMode 附加 sslmode 参数
func withSSLMode(uri *url.URL, sslMode string) string {
	if sslMode == "" {
		return uri.String()
	}
	u := *uri
	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NewPostgresConnector 根据配置选择 PostgreSQL 驱动
func NewPostgresConnector(cfg *config.BruteConfig) Connector {
	if cfg == nil {
		cfg = config.DefaultConfig().Brute
	}
	if cfg.PGDriver == config.PGDriverPGX {
		return NewPGXConnector(cfg.PGSSLMode)
	}
	return NewPQConnector(cfg.PGSSLMode)
}
