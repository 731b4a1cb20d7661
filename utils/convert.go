package utils

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/entities"
)

// tracer writes to trace with key 'iges.utils'
func tracer() tracing.Trace {
	return tracing.Select("iges.utils")
}

// Convert 遍历注册表，把所有可渲染实体写入网格构建器
// 单个实体失败只记录日志，不影响其余实体的生成
func Convert(doc *iges.Document, geometry entities.Geometry, lcar float64) {
	for pointer, entity := range doc.Entities {
		if entity.Base().GeometryID != 0 {
			continue // 已被其他实体（如旋转面的母线）提前生成
		}

		if err := entity.ToVTK(doc.Entities, geometry, lcar); err != nil {
			tracer().Errorf("实体 %d (%s) 生成几何失败: %v",
				pointer, entities.TypeName(entity.Base().TypeNumber), err)
		}
	}
}
