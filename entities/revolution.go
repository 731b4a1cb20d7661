package entities

import (
	"fmt"
	"math"

	"github.com/zooyer/iges/core"
)

// SurfaceOfRevolution 旋转面实体（类型 120）
// 母线实体绕轴线（一条直线实体）旋转生成曲面
type SurfaceOfRevolution struct {
	BaseEntity
	Axis       core.Pointer // 轴线，必须指向直线实体
	Generatrix core.Pointer // 母线
	StartAngle float64      // 弧度
	EndAngle   float64      // 弧度
}

func init() {
	Register(120, "SURFACE OF REVOLUTION", func() Entity { return &SurfaceOfRevolution{BaseEntity: BaseEntity{TypeNumber: 120}} })
}

func (s *SurfaceOfRevolution) AddParameters(params []core.Value) error {
	if err := s.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 4 {
		return fmt.Errorf("%w: 旋转面需要 4 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	s.Axis = core.PointerFromSequence(params[0].AsInt())
	s.Generatrix = core.PointerFromSequence(params[1].AsInt())
	s.StartAngle = params[2].AsFloat()
	s.EndAngle = params[3].AsFloat()
	return nil
}

func (s *SurfaceOfRevolution) ToVTK(entities Registry, geometry Geometry, lcar float64) error {
	if !s.renderable() {
		return nil
	}

	axis, err := entities.Resolve(s.Axis)
	if err != nil {
		return err
	}

	line, ok := axis.(*Line)
	if !ok {
		return fmt.Errorf("%w: 旋转面轴线指针指向类型 %d", core.ErrDanglingPointer, axis.Base().TypeNumber)
	}

	target, err := entities.Resolve(s.Generatrix)
	if err != nil {
		return err
	}

	// 母线可能被按类型关闭了渲染，旋转面依赖它的几何，这里临时打开
	if target.Base().GeometryID == 0 {
		typeNumber := target.Base().TypeNumber
		old := Renderable(typeNumber)
		SetRender(typeNumber, true)
		err = target.ToVTK(entities, geometry, lcar)
		SetRender(typeNumber, old)
		if err != nil {
			return err
		}
	}

	angle := s.EndAngle - s.StartAngle
	if angle == 0 {
		angle = math.Pi
	}

	s.GeometryID = geometry.Revolve(target.Base().GeometryID, line.Start, line.End, angle)
	return nil
}
