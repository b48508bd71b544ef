package model

import "time"

// BaseEntity 所有持久化记录的公共字段
// 具体业务表通过匿名嵌入复用，列映射由 repository 层维护，这里不携带任何 ORM 标签
type BaseEntity struct {
	ID        int64     `json:"id"`         // 自增主键，入库前为 0
	IsDeleted bool      `json:"is_deleted"` // 软删除标记，false 表示有效
	CreatedAt time.Time `json:"created_at"` // 创建时间，写入后不再变化
	UpdatedAt time.Time `json:"updated_at"` // 每次修改时刷新
}
