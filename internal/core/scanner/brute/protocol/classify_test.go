package protocol

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		errInput error
		want     failureReason
	}{
		{
			name:     "MySQL Access Denied (Code 1045)",
			errInput: &mysql.MySQLError{Number: 1045, Message: "Access denied for user 'root'@'localhost'"},
			want:     reasonAuth,
		},
		{
			name:     "MySQL Unknown Database (Code 1049)",
			errInput: &mysql.MySQLError{Number: 1049, Message: "Unknown database 'mysql'"},
			want:     reasonCatalog,
		},
		{
			name:     "MySQL Too Many Connections",
			errInput: &mysql.MySQLError{Number: 1040},
			want:     reasonConnect,
		},
		{
			name:     "MySQL Other Server Error",
			errInput: &mysql.MySQLError{Number: 1064},
			want:     reasonProtocol,
		},
		{
			name:     "Wrapped MySQL Error",
			errInput: fmt.Errorf("ping: %w", &mysql.MySQLError{Number: 1698}),
			want:     reasonAuth,
		},
		{
			name:     "PQ Invalid Password",
			errInput: &pq.Error{Code: "28P01", Message: "password authentication failed for user \"postgres\""},
			want:     reasonAuth,
		},
		{
			name:     "PQ Missing Database",
			errInput: &pq.Error{Code: "3D000"},
			want:     reasonCatalog,
		},
		{
			name:     "PGX Invalid Authorization",
			errInput: &pgconn.PgError{Code: "28000"},
			want:     reasonAuth,
		},
		{
			name:     "PGX Too Many Connections",
			errInput: &pgconn.PgError{Code: "53300"},
			want:     reasonConnect,
		},
		{
			name:     "Bad Connection",
			errInput: mysql.ErrInvalidConn,
			want:     reasonConnect,
		},
		{
			name:     "Net Error",
			errInput: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")},
			want:     reasonConnect,
		},
		{
			name:     "Timeout Text",
			errInput: errors.New("dial tcp 1.2.3.4:3306: i/o timeout"),
			want:     reasonConnect,
		},
		{
			name:     "Access Denied Text",
			errInput: errors.New("Error 1045: Access denied"),
			want:     reasonAuth,
		},
		{
			name:     "Unknown Error",
			errInput: errors.New("some weird error"),
			want:     reasonProtocol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.errInput); got != tt.want {
				t.Errorf("classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
