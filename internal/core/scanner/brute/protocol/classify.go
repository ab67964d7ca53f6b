package protocol

import (
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// failureReason 连接失败的诊断分类，仅用于日志
type failureReason string

const (
	reasonAuth     failureReason = "auth"     // 用户名或密码错误
	reasonCatalog  failureReason = "catalog"  // 认证通过但默认库不可访问
	reasonConnect  failureReason = "connect"  // 网络不可达/拒绝/重置
	reasonProtocol failureReason = "protocol" // 协议交互错误或未知错误
)

// classify 解析驱动错误
func classify(err error) failureReason {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1045, 1698: // Access denied for user
			return reasonAuth
		case 1044, 1049: // Access denied to database / Unknown database
			return reasonCatalog
		case 1040, 1129, 1130: // Too many connections / host blocked / host not allowed
			return reasonConnect
		}
		return reasonProtocol
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return reasonConnect
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return reasonConnect
	}

	msg := strings.ToLower(err.Error())

	// 文本匹配兜底
	if strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "password authentication failed") {
		return reasonAuth
	}

	if strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no route to host") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "target machine actively refused") { // Windows
		return reasonConnect
	}

	return reasonProtocol
}

// classifySQLState PostgreSQL Error Codes: https://www.postgresql.org/docs/current/errcodes-appendix.html
func classifySQLState(code string) failureReason {
	switch code {
	case "28P01", "28000": // invalid_password / invalid_authorization_specification
		return reasonAuth
	case "3D000", "42501": // invalid_catalog_name / insufficient_privilege
		return reasonCatalog
	case "53300", "57P03": // too_many_connections / cannot_connect_now
		return reasonConnect
	}
	return reasonProtocol
}
