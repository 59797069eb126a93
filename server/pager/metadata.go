package pager

import (
	"github.com/juju/errors"
	"github.com/zhukovaskychina/xtoydb/server/common"
	"github.com/zhukovaskychina/xtoydb/util"
)

// Metadata 文件头部固定128字节的元数据块，描述全局布局。
// 页0从元数据块之后开始
type Metadata struct {
	FileSpecVersion   byte
	PageSize          uint16
	PagesNumber       uint32
	FirstEmptyPageId  PageId
	TablesMetaPageId  PageId
	IndexesMetaPageId PageId
}

// NewMetadata 空库的元数据块
func NewMetadata(pageSize uint16) *Metadata {
	return &Metadata{
		FileSpecVersion:   common.FILE_SPEC_VERSION,
		PageSize:          pageSize,
		PagesNumber:       0,
		FirstEmptyPageId:  NoPageId,
		TablesMetaPageId:  NoPageId,
		IndexesMetaPageId: NoPageId,
	}
}

// EncodeMetadata 序列化元数据块，剩余字节保留为零
func EncodeMetadata(meta *Metadata) []byte {
	buff := make([]byte, 0, common.METADATA_SIZE)
	buff = util.WriteByte(buff, meta.FileSpecVersion)
	buff = util.WriteUB2(buff, meta.PageSize)
	buff = util.WriteUB4(buff, meta.PagesNumber)
	buff = util.WriteUB4(buff, uint32(meta.FirstEmptyPageId))
	buff = util.WriteUB4(buff, uint32(meta.TablesMetaPageId))
	buff = util.WriteUB4(buff, uint32(meta.IndexesMetaPageId))
	buff = util.WriteBytes(buff, util.AppendByte(common.METADATA_SIZE-len(buff)))
	return buff
}

func DecodeMetadata(buff []byte) (*Metadata, error) {
	if len(buff) < common.METADATA_SIZE {
		return nil, errors.Annotatef(ErrDecodeError,
			"metadata block is %d bytes, want %d", len(buff), common.METADATA_SIZE)
	}

	cursor, version := util.ReadByte(buff, 0)
	cursor, pageSize := util.ReadUB2(buff, cursor)
	cursor, pagesNumber := util.ReadUB4(buff, cursor)
	cursor, firstEmpty := util.ReadUB4(buff, cursor)
	cursor, tablesMeta := util.ReadUB4(buff, cursor)
	_, indexesMeta := util.ReadUB4(buff, cursor)

	return &Metadata{
		FileSpecVersion:   version,
		PageSize:          pageSize,
		PagesNumber:       pagesNumber,
		FirstEmptyPageId:  PageId(firstEmpty),
		TablesMetaPageId:  PageId(tablesMeta),
		IndexesMetaPageId: PageId(indexesMeta),
	}, nil
}
