package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/internal/repository"
)

var (
	// ErrInvalidArgument 调用方参数不合法，不重试
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 目标资源不存在
	ErrNotFound = errors.New("not found")
	// ErrUnavailable 后端事务冲突重试耗尽，调用方可整体重试
	ErrUnavailable = errors.New("temporarily unavailable")
)

// translateRepoError 把存储层错误映射到对外错误分类，其余原样上抛（不静默吞错）
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrUnavailable
	default:
		return err
	}
}
