package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhukovaskychina/xtoydb/server/common"
)

func TestEncodeDecodePage(t *testing.T) {
	// pageSize = 页头开销 + 4字节载荷
	pageSize := uint32(common.PAGE_OVERHEAD + 4)

	page := &Page{Id: 7, NextId: 3, Payload: []byte("TEST")}
	buff, err := EncodePage(page, pageSize)
	require.NoError(t, err)
	assert.Equal(t, int(pageSize), len(buff))

	decoded, err := DecodePage(buff)
	require.NoError(t, err)
	assert.Equal(t, page, decoded)
}

func TestEncodePageSizeMismatch(t *testing.T) {
	pageSize := uint32(common.PAGE_OVERHEAD + 4)

	t.Run("载荷过短", func(t *testing.T) {
		page := &Page{Id: 1, NextId: NoPageId, Payload: []byte("TE")}
		_, err := EncodePage(page, pageSize)
		require.Error(t, err)
		assert.True(t, IsSizeMismatch(err))
	})

	t.Run("载荷过长", func(t *testing.T) {
		page := &Page{Id: 1, NextId: NoPageId, Payload: []byte("TOOLONG")}
		_, err := EncodePage(page, pageSize)
		require.Error(t, err)
		assert.True(t, IsSizeMismatch(err))
	})
}

func TestDecodePageTooShort(t *testing.T) {
	_, err := DecodePage([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.False(t, IsFault(err))
}

func TestDecodePageNoPayload(t *testing.T) {
	// 只有页头没有载荷也是合法页
	buff, err := EncodePage(&Page{Id: 0, NextId: NoPageId, Payload: []byte{}}, common.PAGE_OVERHEAD)
	require.NoError(t, err)

	decoded, err := DecodePage(buff)
	require.NoError(t, err)
	assert.Equal(t, PageId(0), decoded.Id)
	assert.True(t, decoded.NextId.IsNoPage())
	assert.Empty(t, decoded.Payload)
}

func TestMetadataCodec(t *testing.T) {
	meta := &Metadata{
		FileSpecVersion:   common.FILE_SPEC_VERSION,
		PageSize:          16384,
		PagesNumber:       42,
		FirstEmptyPageId:  3,
		TablesMetaPageId:  0,
		IndexesMetaPageId: 1,
	}

	buff := EncodeMetadata(meta)
	require.Equal(t, common.METADATA_SIZE, len(buff))

	// 保留区域必须清零
	for i := 19; i < common.METADATA_SIZE; i++ {
		assert.Equal(t, byte(0), buff[i])
	}

	decoded, err := DecodeMetadata(buff)
	require.NoError(t, err)
	assert.Equal(t, meta, decoded)
}

func TestMetadataDecodeTooShort(t *testing.T) {
	_, err := DecodeMetadata(make([]byte, 16))
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata(16384)
	assert.Equal(t, byte(common.FILE_SPEC_VERSION), meta.FileSpecVersion)
	assert.Equal(t, uint32(0), meta.PagesNumber)
	assert.True(t, meta.FirstEmptyPageId.IsNoPage())
	assert.True(t, meta.TablesMetaPageId.IsNoPage())
	assert.True(t, meta.IndexesMetaPageId.IsNoPage())
}
