package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/zooyer/iges/core"
)

// tracer writes to trace with key 'iges.entities'
func tracer() tracing.Trace {
	return tracing.Select("iges.entities")
}

// Entity 是一切 IGES 实体的接口
// 实体骨架由目录段创建，参数由参数段通过 AddParameters 填充一次
type Entity interface {
	Base() *BaseEntity
	AddParameters(params []core.Value) error
	ToVTK(entities Registry, geometry Geometry, lcar float64) error
}

// Registry 实体注册表，指针到实体的映射
// 实体间的引用不是所有权关系，都经由注册表按指针解析
type Registry map[core.Pointer]Entity

// Resolve 按指针查找实体，查不到返回 ErrDanglingPointer
func (r Registry) Resolve(pointer core.Pointer) (Entity, error) {
	entity, ok := r[pointer]
	if !ok {
		return nil, fmt.Errorf("%w: %d", core.ErrDanglingPointer, pointer)
	}

	return entity, nil
}

// BaseEntity 存放目录段中所有实体通用的属性
type BaseEntity struct {
	TypeNumber     int
	PDPointer      int // 参数段指针
	Structure      int
	LineFont       int
	Level          int
	View           int
	Transformation int // 变换矩阵的目录段序号，0 表示无变换
	LabelDisplay   int
	StatusNumber   int
	LineWeight     int
	Color          int
	LineCount      int // 该实体占用的参数段行数
	Form           int
	Label          string
	Subscript      int
	Parameters     []core.Value // 有序参数表
	GeometryID     int          // 网格构建器返回的几何 ID，0 表示尚未生成
}

func (b *BaseEntity) Base() *BaseEntity { return b }

// AddParameters 默认仅保存参数表
func (b *BaseEntity) AddParameters(params []core.Value) error {
	b.Parameters = params
	return nil
}

// ToVTK 默认不产生几何
func (b *BaseEntity) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	return nil
}

// renderable 当前实体类型是否参与网格生成
func (b *BaseEntity) renderable() bool {
	return Renderable(b.TypeNumber)
}

// transform 就地应用实体引用的变换矩阵，无变换时原样返回
// 仅应用单层变换，链式矩阵只告警不递归
func (b *BaseEntity) transform(entities Registry, points ...*core.Point) error {
	if b.Transformation == 0 {
		return nil
	}

	entity, err := entities.Resolve(core.PointerFromSequence(b.Transformation))
	if err != nil {
		return err
	}

	t, ok := entity.(*Transformation)
	if !ok {
		return fmt.Errorf("%w: 变换指针 %d 指向类型 %d", core.ErrDanglingPointer, b.Transformation, entity.Base().TypeNumber)
	}

	if t.Transformation != 0 {
		tracer().Infof("变换矩阵 %d 存在链式引用，仅应用单层", b.Transformation)
	}

	for _, p := range points {
		*p = t.Transform(*p)
	}

	return nil
}

// ParseStatusNumber 解析目录段状态号
// 状态号由四个两位十进制子字段拼接而成，子字段各自补零到两位，空白按 0 处理
func ParseStatusNumber(s string) (number int, err error) {
	var b strings.Builder
	for _, field := range strings.Split(s, " ") {
		for len(field) < 2 {
			field = "0" + field
		}
		b.WriteString(field)
	}

	if number, err = strconv.Atoi(b.String()); err != nil {
		return 0, fmt.Errorf("非法状态号 %q: %v", s, err)
	}

	return number, nil
}
