package common

// 页面大小，数据库生命周期内固定
const DEFAULT_PAGE_SIZE = 16384

// 页头开销 pageId(4) + nextId(4)
const PAGE_OVERHEAD = 8

// 文件头部的元数据块大小，页0从该偏移之后开始
const METADATA_SIZE = 128

const FILE_SPEC_VERSION = 0x01

// 空页哨兵值，表示"没有页"
const NO_PAGE_ID = 0xFFFFFFFF
