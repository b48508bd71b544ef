package repository

import (
	"context"
	"reflect"

	"gorm.io/gorm"
)

// BaseColumns model.BaseEntity 的列映射表
// 字段名按 gorm 默认命名策略落库，查询时统一引用这里的常量
var BaseColumns = struct {
	ID        string
	IsDeleted string
	CreatedAt string
	UpdatedAt string
}{
	ID:        "id",
	IsDeleted: "is_deleted",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// EntityRepository 通用审计实体仓储
// T 必须是匿名嵌入了 model.BaseEntity 的结构体
// 负责 BaseEntity 的生命周期：入库分配 ID、打时间戳、修改刷新 updated_at、软删除
type EntityRepository[T any] struct {
	db *gorm.DB
}

func NewEntityRepository[T any](db *gorm.DB) *EntityRepository[T] {
	return &EntityRepository[T]{db: db}
}

// active 只查询未删除的记录
func (r *EntityRepository[T]) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T)).Where(BaseColumns.IsDeleted+" = ?", false)
}

// 1. 增删改

// Create 新增记录
// created_at 与 updated_at 取同一次时钟读数，ID 由数据库回填
func (r *EntityRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update 全量更新 (id、created_at、is_deleted 不参与更新，updated_at 自动刷新)
// 已软删除的记录视为不存在；删除只能走 SoftDelete
func (r *EntityRepository[T]) Update(ctx context.Context, entity *T) error {
	id, err := r.primaryKey(ctx, entity)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(entity).
		Where(BaseColumns.ID+" = ? AND "+BaseColumns.IsDeleted+" = ?", id, false).
		Select("*").
		Omit(BaseColumns.ID, BaseColumns.CreatedAt, BaseColumns.IsDeleted).
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateFields 按列名部分更新
func (r *EntityRepository[T]) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	result := r.active(ctx).
		Where(BaseColumns.ID+" = ?", id).
		Omit(BaseColumns.ID, BaseColumns.CreatedAt, BaseColumns.IsDeleted).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete 软删除，只翻转 is_deleted
// 使用 UpdateColumn 跳过自动时间戳，updated_at 保持删除前的值
func (r *EntityRepository[T]) SoftDelete(ctx context.Context, id int64) error {
	result := r.active(ctx).
		Where(BaseColumns.ID+" = ?", id).
		UpdateColumn(BaseColumns.IsDeleted, true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 2. 查询

// GetByID 获取有效记录
func (r *EntityRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	if err := r.active(ctx).Where(BaseColumns.ID+" = ?", id).Take(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetByIDUnscoped 审计用，包含已软删除的记录
func (r *EntityRepository[T]) GetByIDUnscoped(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Model(new(T)).Where(BaseColumns.ID+" = ?", id).Take(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// List 分页获取有效记录，按 ID 升序
func (r *EntityRepository[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	var list []T
	db := r.active(ctx).Order(BaseColumns.ID)
	if offset > 0 {
		db = db.Offset(offset)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count 有效记录数
func (r *EntityRepository[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.active(ctx).Count(&total).Error
	return total, err
}

// primaryKey 通过 gorm schema 读取主键值，未入库 (ID 为零值) 的记录直接拒绝
func (r *EntityRepository[T]) primaryKey(ctx context.Context, entity *T) (interface{}, error) {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(entity); err != nil {
		return nil, err
	}
	field := stmt.Schema.PrioritizedPrimaryField
	if field == nil {
		return nil, gorm.ErrPrimaryKeyRequired
	}
	value, isZero := field.ValueOf(ctx, reflect.ValueOf(entity).Elem())
	if isZero {
		return nil, gorm.ErrPrimaryKeyRequired
	}
	return value, nil
}
