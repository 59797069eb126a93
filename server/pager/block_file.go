package pager

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/zhukovaskychina/xtoydb/logger"
	"github.com/zhukovaskychina/xtoydb/util"
)

// BlockFile 生产用存储后端，基于定位读写包装一个文件句柄。
// 句柄的生命周期由打开它的调用方负责，Pager本身不关闭它
type BlockFile struct {
	StorageFile *os.File
	FilePath    string
	ReadNumber  int // 读次数
	WriteNumber int // 写次数
}

// OpenBlockFile 打开页面文件；不存在时按initialSize创建
func OpenBlockFile(filePath string, initialSize int64) (*BlockFile, error) {
	exist, err := util.PathExists(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", filePath)
	}
	if !exist {
		if err := util.CreateFileBySize(filePath, initialSize); err != nil {
			return nil, err
		}
		logger.Infof("created block file %s (%d bytes)", filePath, initialSize)
	}

	storageFile, err := os.OpenFile(filePath, os.O_RDWR, os.ModePerm)
	if err != nil {
		return nil, errors.Wrapf(err, "open block file %s", filePath)
	}

	return &BlockFile{
		StorageFile: storageFile,
		FilePath:    filePath,
	}, nil
}

func (blockFile *BlockFile) ReadRange(offset int64, size int) ([]byte, error) {
	buff := make([]byte, size)
	n, err := blockFile.StorageFile.ReadAt(buff, offset)
	blockFile.ReadNumber++
	if n < size {
		return nil, errors.Wrapf(ErrShortRead,
			"block file %s: read %d bytes at offset %d, want %d", blockFile.FilePath, n, offset, size)
	}
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "read %d bytes at offset %d", size, offset)
	}
	return buff, nil
}

func (blockFile *BlockFile) WriteRange(offset int64, data []byte) error {
	_, err := blockFile.StorageFile.WriteAt(data, offset)
	blockFile.WriteNumber++
	if err != nil {
		return errors.Wrapf(err, "write %d bytes at offset %d", len(data), offset)
	}
	return nil
}

func (blockFile *BlockFile) Close() error {
	return blockFile.StorageFile.Close()
}

func (blockFile *BlockFile) Size() (int64, error) {
	fd, err := blockFile.StorageFile.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", blockFile.FilePath)
	}
	return fd.Size(), nil
}
