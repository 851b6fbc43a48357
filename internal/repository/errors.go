package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict 事务并发冲突（序列化失败 / 死锁 / 锁等待超时），上层可整体重试
var ErrConflict = errors.New("transaction conflict")

// translateError 把驱动层的并发冲突错误归一为 ErrConflict，其余原样返回
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	// sqlite 写锁竞争
	if strings.Contains(err.Error(), "database is locked") ||
		strings.Contains(err.Error(), "database table is locked") {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
