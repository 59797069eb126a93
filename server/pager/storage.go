package pager

// StorageBackend 抽象的随机访问字节存储。
// Pager只通过整页对齐的窗口（外加固定的元数据窗口）访问它。
// 短读必须以ErrShortRead上报，不允许静默截断
type StorageBackend interface {
	// ReadRange 读取[offset, offset+size)的字节
	ReadRange(offset int64, size int) ([]byte, error)

	// WriteRange 在offset处写入data
	WriteRange(offset int64, data []byte) error

	Close() error
}
