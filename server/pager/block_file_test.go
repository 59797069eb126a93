package pager

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhukovaskychina/xtoydb/server/common"
)

func TestOpenBlockFileCreates(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "xtdata1")

	blockFile, err := OpenBlockFile(filePath, common.METADATA_SIZE)
	require.NoError(t, err)
	defer blockFile.Close()

	size, err := blockFile.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(common.METADATA_SIZE), size)
}

func TestBlockFileReadWriteRange(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "xtdata1")

	blockFile, err := OpenBlockFile(filePath, 0)
	require.NoError(t, err)
	defer blockFile.Close()

	data := []byte("TESTDATA")
	require.NoError(t, blockFile.WriteRange(16, data))

	got, err := blockFile.ReadRange(16, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// 未写过的间隙由文件系统补零
	gap, err := blockFile.ReadRange(0, 16)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 16), gap)

	assert.Equal(t, 2, blockFile.ReadNumber)
	assert.Equal(t, 1, blockFile.WriteNumber)
}

func TestBlockFileShortRead(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "xtdata1")

	blockFile, err := OpenBlockFile(filePath, 8)
	require.NoError(t, err)
	defer blockFile.Close()

	// 超出文件末尾的读取必须以短读上报，不允许静默截断
	_, err = blockFile.ReadRange(4, 16)
	require.Error(t, err)
	assert.True(t, IsShortRead(err))
}

func TestBlockFileReopen(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "xtdata1")

	blockFile, err := OpenBlockFile(filePath, 0)
	require.NoError(t, err)
	require.NoError(t, blockFile.WriteRange(0, []byte("DURABLE!")))
	require.NoError(t, blockFile.Close())

	// 再次打开不截断已有内容
	reopened, err := OpenBlockFile(filePath, 0)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ReadRange(0, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte("DURABLE!"), got)
}

func TestMemoryBackendContract(t *testing.T) {
	backend := NewMemoryBackend([]byte("HEAD"))

	t.Run("短读上报", func(t *testing.T) {
		_, err := backend.ReadRange(2, 8)
		require.Error(t, err)
		assert.True(t, IsShortRead(err))
	})

	t.Run("写入自动增长", func(t *testing.T) {
		require.NoError(t, backend.WriteRange(8, []byte("TAIL")))
		assert.Equal(t, 12, len(backend.Bytes()))

		got, err := backend.ReadRange(8, 4)
		require.NoError(t, err)
		assert.Equal(t, []byte("TAIL"), got)
	})
}
