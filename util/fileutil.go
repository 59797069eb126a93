package util

import (
	"os"

	"github.com/pkg/errors"
)

func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// CreateFileBySize 创建指定大小的文件，未写过的区域由文件系统补零
func CreateFileBySize(filePath string, size int64) error {
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "create file %s", filePath)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		return errors.Wrapf(err, "truncate file %s to %d bytes", filePath, size)
	}
	return nil
}
