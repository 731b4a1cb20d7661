package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// CompositeCurve 组合曲线实体（类型 102），由若干条曲线实体首尾相接组成
type CompositeCurve struct {
	BaseEntity
	Curves []core.Pointer
}

func init() {
	Register(102, "COMPOSITE CURVE", func() Entity { return &CompositeCurve{BaseEntity: BaseEntity{TypeNumber: 102}} })
}

func (c *CompositeCurve) AddParameters(params []core.Value) error {
	if err := c.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 1 {
		return fmt.Errorf("%w: 组合曲线缺少成员数量", core.ErrParameterArity)
	}

	count := params[0].AsInt()
	if count < 0 || len(params) < 1+count {
		return fmt.Errorf("%w: 组合曲线声明 %d 条曲线，实际 %d", core.ErrParameterArity, count, len(params)-1)
	}

	c.Curves = make([]core.Pointer, 0, count)
	for _, param := range params[1 : 1+count] {
		c.Curves = append(c.Curves, core.PointerFromSequence(param.AsInt()))
	}

	return nil
}

// ResolveCurves 解析成员曲线实体
func (c *CompositeCurve) ResolveCurves(entities Registry) (curves []Entity, err error) {
	for _, pointer := range c.Curves {
		entity, err := entities.Resolve(pointer)
		if err != nil {
			return nil, err
		}
		curves = append(curves, entity)
	}

	return curves, nil
}

// ToVTK 成员曲线各自生成几何，组合曲线自身不重复生成
func (c *CompositeCurve) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	return nil
}
