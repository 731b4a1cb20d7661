package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// LoopCurve 环边引用的参数空间曲线
type LoopCurve struct {
	Isoparametric bool
	Curve         core.Pointer
}

// LoopEdge 代表环中的一条边，不是独立实体
type LoopEdge struct {
	Type        int          // 0=边 1=顶点
	List        core.Pointer // 边表或顶点表
	Index       int          // 表内下标，1 起始
	Orientation bool
	Curves      []LoopCurve
}

// Loop 环实体（类型 508），在 B-Rep 拓扑中围出有界面域
type Loop struct {
	BaseEntity
	Edges []LoopEdge
}

func init() {
	Register(508, "LOOP", func() Entity { return &Loop{BaseEntity: BaseEntity{TypeNumber: 508}} })
}

func (l *Loop) AddParameters(params []core.Value) error {
	if err := l.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 1 {
		return fmt.Errorf("%w: 环实体缺少边数量", core.ErrParameterArity)
	}

	count := params[0].AsInt()
	if count < 0 {
		return fmt.Errorf("%w: 非法的边数量 %d", core.ErrParameterArity, count)
	}

	l.Edges = make([]LoopEdge, 0, count)

	i := 1
	for len(l.Edges) < count {
		if i+5 > len(params) {
			return fmt.Errorf("%w: 环实体声明 %d 条边，参数在第 %d 条处耗尽", core.ErrParameterArity, count, len(l.Edges)+1)
		}

		edge := LoopEdge{
			Type:        params[i].AsInt(),
			List:        core.PointerFromSequence(params[i+1].AsInt()),
			Index:       params[i+2].AsInt(),
			Orientation: params[i+3].AsInt() != 0,
		}

		curveCount := params[i+4].AsInt()
		i += 5

		if curveCount < 0 || i+2*curveCount > len(params) {
			return fmt.Errorf("%w: 环边声明 %d 条参数曲线，参数不足", core.ErrParameterArity, curveCount)
		}

		edge.Curves = make([]LoopCurve, 0, curveCount)
		for j := 0; j < curveCount; j++ {
			edge.Curves = append(edge.Curves, LoopCurve{
				Isoparametric: params[i].AsInt() != 0,
				Curve:         core.PointerFromSequence(params[i+1].AsInt()),
			})
			i += 2
		}

		l.Edges = append(l.Edges, edge)
	}

	return nil
}

// Resolve 解析环边在边表中的条目
// 环的边表指针必须可解析，否则是致命的悬空指针
func (e LoopEdge) Resolve(entities Registry) (Edge, error) {
	entity, err := entities.Resolve(e.List)
	if err != nil {
		return Edge{}, err
	}

	list, ok := entity.(*EdgeList)
	if !ok {
		return Edge{}, fmt.Errorf("%w: 环边指针 %d 指向类型 %d", core.ErrDanglingPointer, e.List, entity.Base().TypeNumber)
	}

	return list.Edge(e.Index)
}

// ResolveEdges 解析环的全部边
func (l *Loop) ResolveEdges(entities Registry) (edges []Edge, err error) {
	for _, loopEdge := range l.Edges {
		edge, err := loopEdge.Resolve(entities)
		if err != nil {
			return nil, fmt.Errorf("环 %q: %w", l.Label, err)
		}
		edges = append(edges, edge)
	}

	return edges, nil
}
