package pager

import (
	"errors"
	"fmt"
)

// 存储状态异常，调用方可上报为损坏或IO故障
var (
	ErrPageNotFound   = errors.New("page not found")
	ErrPageIdMismatch = errors.New("page id mismatch")
	ErrOverflowWrite  = errors.New("overflow write to unallocated page")
	ErrSizeMismatch   = errors.New("payload size mismatch")
	ErrDecodeError    = errors.New("page decode error")
	ErrShortRead      = errors.New("short read")
)

// Fault 表示调用方违反了前置条件的编程错误，
// 与存储异常严格区分，不应被当作可恢复错误处理
type Fault struct {
	Op     string
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("pager fault in %s: %s", f.Op, f.Reason)
}

func NewFault(op string, reason string) *Fault {
	return &Fault{Op: op, Reason: reason}
}

// hasCause 沿Unwrap/Cause链查找哨兵错误，
// 兼容juju和pkg两种包装
func hasCause(err error, sentinel error) bool {
	for err != nil {
		if err == sentinel {
			return true
		}
		switch wrapped := err.(type) {
		case interface{ Unwrap() error }:
			err = wrapped.Unwrap()
		case interface{ Cause() error }:
			err = wrapped.Cause()
		default:
			return false
		}
	}
	return false
}

// IsFault 判断错误是否为编程错误
func IsFault(err error) bool {
	for err != nil {
		if _, ok := err.(*Fault); ok {
			return true
		}
		switch wrapped := err.(type) {
		case interface{ Unwrap() error }:
			err = wrapped.Unwrap()
		case interface{ Cause() error }:
			err = wrapped.Cause()
		default:
			return false
		}
	}
	return false
}

func IsPageNotFound(err error) bool {
	return hasCause(err, ErrPageNotFound)
}

func IsPageIdMismatch(err error) bool {
	return hasCause(err, ErrPageIdMismatch)
}

func IsOverflowWrite(err error) bool {
	return hasCause(err, ErrOverflowWrite)
}

func IsSizeMismatch(err error) bool {
	return hasCause(err, ErrSizeMismatch)
}

func IsDecodeError(err error) bool {
	return hasCause(err, ErrDecodeError)
}

func IsShortRead(err error) bool {
	return hasCause(err, ErrShortRead)
}

// IsStorageError 判断错误是否为存储状态异常（非编程错误）
func IsStorageError(err error) bool {
	if err == nil || IsFault(err) {
		return false
	}
	return IsPageNotFound(err) || IsPageIdMismatch(err) || IsOverflowWrite(err) ||
		IsSizeMismatch(err) || IsDecodeError(err) || IsShortRead(err)
}
