package pager

import (
	"github.com/pkg/errors"
)

// MemoryBackend 测试用内存后端，与BlockFile遵守同一契约：
// 短读以ErrShortRead上报，写入超出当前长度时自动增长
type MemoryBackend struct {
	buff []byte
}

func NewMemoryBackend(content []byte) *MemoryBackend {
	buff := make([]byte, len(content))
	copy(buff, content)
	return &MemoryBackend{buff: buff}
}

func (backend *MemoryBackend) ReadRange(offset int64, size int) ([]byte, error) {
	end := offset + int64(size)
	if end > int64(len(backend.buff)) {
		available := int64(len(backend.buff)) - offset
		if available < 0 {
			available = 0
		}
		return nil, errors.Wrapf(ErrShortRead,
			"memory backend: read %d bytes at offset %d, only %d available", size, offset, available)
	}
	out := make([]byte, size)
	copy(out, backend.buff[offset:end])
	return out, nil
}

func (backend *MemoryBackend) WriteRange(offset int64, data []byte) error {
	end := offset + int64(len(data))
	if end > int64(len(backend.buff)) {
		grown := make([]byte, end)
		copy(grown, backend.buff)
		backend.buff = grown
	}
	copy(backend.buff[offset:end], data)
	return nil
}

func (backend *MemoryBackend) Close() error {
	return nil
}

// Bytes 暴露底层缓冲，测试断言用
func (backend *MemoryBackend) Bytes() []byte {
	return backend.buff
}
