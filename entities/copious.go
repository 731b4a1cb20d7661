package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// CopiousData 点集实体（类型 106）
// 元组类型 1 为二元组（共享一个 z 值）、2 为三元组、3 为六元组
type CopiousData struct {
	BaseEntity
	TupleType  int
	CommonZ    float64
	HasCommonZ bool
	Tuples     [][]float64
}

// tupleLengths 元组类型到元组长度
var tupleLengths = map[int]int{1: 2, 2: 3, 3: 6}

func init() {
	Register(106, "COPIOUS DATA", func() Entity { return &CopiousData{BaseEntity: BaseEntity{TypeNumber: 106}} })
}

func (c *CopiousData) AddParameters(params []core.Value) error {
	if err := c.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 1 {
		return fmt.Errorf("%w: 点集实体缺少元组类型", core.ErrParameterArity)
	}

	c.TupleType = params[0].AsInt()
	length, ok := tupleLengths[c.TupleType]
	if !ok {
		return fmt.Errorf("%w: 未知的元组类型 %d", core.ErrParameterArity, c.TupleType)
	}

	coords := params[1:]
	if c.TupleType == 1 {
		if len(coords) < 1 {
			return fmt.Errorf("%w: 二元组点集缺少共享 z 值", core.ErrParameterArity)
		}
		c.CommonZ, c.HasCommonZ = coords[0].AsFloat(), true
		coords = coords[1:]
	}

	if len(coords)%length != 0 {
		return fmt.Errorf("%w: 坐标数 %d 不是元组长度 %d 的整数倍", core.ErrParameterArity, len(coords), length)
	}

	c.Tuples = make([][]float64, 0, len(coords)/length)
	for i := 0; i < len(coords); i += length {
		tuple := make([]float64, 0, length+1)
		for j := 0; j < length; j++ {
			tuple = append(tuple, coords[i+j].AsFloat())
		}
		if c.HasCommonZ {
			tuple = append(tuple, c.CommonZ)
		}
		c.Tuples = append(c.Tuples, tuple)
	}

	return nil
}

func (c *CopiousData) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !c.renderable() {
		return nil
	}

	for _, tuple := range c.Tuples {
		if len(tuple) < 3 {
			continue
		}

		point := core.Point{X: tuple[0], Y: tuple[1], Z: tuple[2]}
		if err := c.transform(entities, &point); err != nil {
			return err
		}

		geometry.AddPoint(point, lcar)
	}

	return nil
}
