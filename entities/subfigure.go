package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// SubfigureDefinition 子图定义实体（类型 308）
type SubfigureDefinition struct {
	BaseEntity
	Depth   int
	Name    string
	Figures []core.Pointer
}

// SingularSubfigureInstance 子图单例实体（类型 408）
type SingularSubfigureInstance struct {
	BaseEntity
	Figure      core.Pointer
	Translation core.Point
	Scale       float64
}

func init() {
	Register(308, "SUBFIGURE DEFINITION", func() Entity { return &SubfigureDefinition{BaseEntity: BaseEntity{TypeNumber: 308}} })
	Register(408, "SINGULAR SUBFIGURE INSTANCE", func() Entity { return &SingularSubfigureInstance{BaseEntity: BaseEntity{TypeNumber: 408}} })
}

func (s *SubfigureDefinition) AddParameters(params []core.Value) error {
	if err := s.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 3 {
		return fmt.Errorf("%w: 子图定义需要至少 3 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	s.Depth = params[0].AsInt()
	s.Name = params[1].AsString()

	count := params[2].AsInt()
	if count < 0 || len(params) < 3+count {
		return fmt.Errorf("%w: 子图定义声明 %d 个成员，实际 %d", core.ErrParameterArity, count, len(params)-3)
	}

	s.Figures = make([]core.Pointer, 0, count)
	for _, param := range params[3 : 3+count] {
		s.Figures = append(s.Figures, core.PointerFromSequence(param.AsInt()))
	}

	return nil
}

// ResolveFigures 解析子图成员实体
func (s *SubfigureDefinition) ResolveFigures(entities Registry) (figures []Entity, err error) {
	for _, pointer := range s.Figures {
		entity, err := entities.Resolve(pointer)
		if err != nil {
			return nil, fmt.Errorf("子图 %q: %w", s.Name, err)
		}
		figures = append(figures, entity)
	}

	return figures, nil
}

func (s *SingularSubfigureInstance) AddParameters(params []core.Value) error {
	if err := s.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 4 {
		return fmt.Errorf("%w: 子图单例需要至少 4 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	s.Figure = core.PointerFromSequence(params[0].AsInt())
	s.Translation = core.Point{X: params[1].AsFloat(), Y: params[2].AsFloat(), Z: params[3].AsFloat()}

	s.Scale = 1
	if len(params) > 4 {
		s.Scale = params[4].AsFloat()
	}

	return nil
}
