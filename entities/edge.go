package entities

import (
	"fmt"

	"github.com/zooyer/iges/core"
)

// Edge 代表边表中的一条边，不是独立实体
type Edge struct {
	Curve      core.Pointer // 边的几何曲线
	StartList  core.Pointer // 起点所在顶点表
	StartIndex int
	EndList    core.Pointer // 终点所在顶点表
	EndIndex   int
}

// EdgeList 边表实体（类型 504）
type EdgeList struct {
	BaseEntity
	Edges []Edge
}

func init() {
	Register(504, "EDGE LIST", func() Entity { return &EdgeList{BaseEntity: BaseEntity{TypeNumber: 504}} })
}

func (l *EdgeList) AddParameters(params []core.Value) error {
	if err := l.BaseEntity.AddParameters(params); err != nil {
		return err
	}

	if len(params) < 1 {
		return fmt.Errorf("%w: 边表缺少边数量", core.ErrParameterArity)
	}

	count := params[0].AsInt()
	if count < 0 || len(params) < 1+5*count {
		return fmt.Errorf("%w: 边表声明 %d 条边，参数不足", core.ErrParameterArity, count)
	}

	l.Edges = make([]Edge, 0, count)
	for i := 1; i < 1+5*count; i += 5 {
		l.Edges = append(l.Edges, Edge{
			Curve:      core.PointerFromSequence(params[i].AsInt()),
			StartList:  core.PointerFromSequence(params[i+1].AsInt()),
			StartIndex: params[i+2].AsInt(),
			EndList:    core.PointerFromSequence(params[i+3].AsInt()),
			EndIndex:   params[i+4].AsInt(),
		})
	}

	return nil
}

// Edge 按 1 起始的下标取边
func (l *EdgeList) Edge(index int) (Edge, error) {
	if index < 1 || index > len(l.Edges) {
		return Edge{}, fmt.Errorf("%w: 边下标 %d 超出范围 [1,%d]", core.ErrDanglingPointer, index, len(l.Edges))
	}

	return l.Edges[index-1], nil
}

// Endpoints 解析边的起止顶点坐标
func (e Edge) Endpoints(entities Registry) (start, end core.Point, err error) {
	if start, err = resolveVertex(entities, e.StartList, e.StartIndex); err != nil {
		return start, end, err
	}

	if end, err = resolveVertex(entities, e.EndList, e.EndIndex); err != nil {
		return start, end, err
	}

	return start, end, nil
}

func resolveVertex(entities Registry, pointer core.Pointer, index int) (core.Point, error) {
	entity, err := entities.Resolve(pointer)
	if err != nil {
		return core.Point{}, err
	}

	list, ok := entity.(*VertexList)
	if !ok {
		return core.Point{}, fmt.Errorf("%w: 顶点表指针 %d 指向类型 %d", core.ErrDanglingPointer, pointer, entity.Base().TypeNumber)
	}

	return list.Vertex(index)
}
