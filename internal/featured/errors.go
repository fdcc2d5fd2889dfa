package featured

import "errors"

var (
	// ErrNotFound 操作的目标档期不存在
	ErrNotFound = errors.New("推荐档期不存在")
	// ErrNoMatch 没有档期的展示窗口覆盖指定日期，是正常的否定结果而不是故障
	ErrNoMatch = errors.New("没有覆盖该日期的推荐档期")
)

// ValidationError 输入校验失败，在任何写入发生之前返回
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
