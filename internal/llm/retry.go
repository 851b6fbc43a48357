package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/wellness-companion/pkg/logger"
)

// Backoff 重试间隔策略
type Backoff string

const (
	BackoffFixed       Backoff = "fixed"
	BackoffExponential Backoff = "exponential"
)

// Options 重试策略。零值等价于 3 次尝试、固定 1s 间隔（上游服务的观测行为）。
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Backoff     Backoff

	// 测试注入点
	sleep func(time.Duration)
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = time.Second
	}
	if o.Backoff == "" {
		o.Backoff = BackoffFixed
	}
	if o.sleep == nil {
		o.sleep = time.Sleep
	}
	return o
}

func (o Options) delayFor(attempt int) time.Duration {
	if o.Backoff == BackoffExponential {
		return o.BaseDelay << (attempt - 1)
	}
	return o.BaseDelay
}

// CallStrict 调用生成端点，带有界重试，应答形状不可用时返回 ErrMalformedResponse。
// 过载错误重试至多 MaxAttempts 次后归一为 ErrServiceOverloaded，
// 其余错误不重试、原样上抛。每次调用相互独立，不携带状态。
func CallStrict[T any](ctx context.Context, gen Generator, prompt string, opts Options, validate func(T) error) (T, error) {
	opts = opts.withDefaults()
	var zero T

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		raw, err := gen.Generate(ctx, prompt)
		if err == nil {
			var out T
			if uerr := json.Unmarshal(raw, &out); uerr != nil {
				return zero, fmt.Errorf("%w: %v", ErrMalformedResponse, uerr)
			}
			if validate != nil {
				if verr := validate(out); verr != nil {
					return zero, fmt.Errorf("%w: %v", ErrMalformedResponse, verr)
				}
			}
			return out, nil
		}

		if !errors.Is(err, ErrOverloaded) {
			// 非瞬时错误立即失败
			return zero, err
		}
		if attempt == opts.MaxAttempts {
			logger.Error("ai service failed after all attempts",
				zap.Int("attempts", opts.MaxAttempts), zap.Error(err))
			return zero, ErrServiceOverloaded
		}

		delay := opts.delayFor(attempt)
		logger.Warn("ai service overloaded, retrying",
			zap.Int("attempt", attempt), zap.Int("max", opts.MaxAttempts),
			zap.Duration("delay", delay))
		opts.sleep(delay)
	}
	return zero, ErrServiceOverloaded
}

// Call 同 CallStrict，但形状不可用时静默回退到调用方给定的 fallback（恰好一次尝试，不重试）。
// “安全缺省值”由各调用点自定，包装器不做通用猜测。
func Call[T any](ctx context.Context, gen Generator, prompt string, opts Options, validate func(T) error, fallback T) (T, error) {
	out, err := CallStrict(ctx, gen, prompt, opts, validate)
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			logger.Warn("ai returned unusable payload, using fallback", zap.Error(err))
			return fallback, nil
		}
		var zero T
		return zero, err
	}
	return out, nil
}
