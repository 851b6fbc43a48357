package llm

import "errors"

var (
	// ErrOverloaded 瞬时过载信号（503 / RESOURCE_EXHAUSTED 等），适配层归一，可重试
	ErrOverloaded = errors.New("llm: service overloaded")

	// ErrServiceOverloaded 重试预算耗尽后的稳定对外错误，文案固定
	ErrServiceOverloaded = errors.New("the AI service is currently overloaded, please try again later")

	// ErrMalformedResponse 服务成功应答但形状不可用，不触发重试
	ErrMalformedResponse = errors.New("llm: malformed response")
)
