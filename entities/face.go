package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// Face 面实体（类型 510），B-Rep 拓扑中由若干环围出的有限面域
type Face struct {
	BaseEntity
	Surface   core.Pointer // 承载曲面
	OuterLoop bool         // 首个环是否为外环
	Loops     []core.Pointer
}

func init() {
	Register(510, "FACE", func() Entity { return &Face{BaseEntity: BaseEntity{TypeNumber: 510}} })
}

func (f *Face) AddParameters(params []core.Value) error {
	if err := f.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 3 {
		return fmt.Errorf("%w: 面实体需要至少 3 个参数，实际 %d", core.ErrParameterArity, len(params))
	}

	f.Surface = core.PointerFromSequence(params[0].AsInt())
	count := params[1].AsInt()
	f.OuterLoop = params[2].AsInt() != 0

	if count < 0 || len(params) < 3+count {
		return fmt.Errorf("%w: 面实体声明 %d 个环，实际 %d", core.ErrParameterArity, count, len(params)-3)
	}

	f.Loops = make([]core.Pointer, 0, count)
	for _, param := range params[3 : 3+count] {
		f.Loops = append(f.Loops, core.PointerFromSequence(param.AsInt()))
	}

	return nil
}

// ResolveLoops 解析面的全部环实体
func (f *Face) ResolveLoops(entities Registry) (loops []*Loop, err error) {
	for _, pointer := range f.Loops {
		entity, err := entities.Resolve(pointer)
		if err != nil {
			return nil, fmt.Errorf("面 %q: %w", f.Label, err)
		}

		loop, ok := entity.(*Loop)
		if !ok {
			return nil, fmt.Errorf("%w: 面的环指针 %d 指向类型 %d", core.ErrDanglingPointer, pointer, entity.Base().TypeNumber)
		}

		loops = append(loops, loop)
	}

	return loops, nil
}
