package iges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/entities"
)

// 参数段每行 65-72 列是目录段回指
const backPointerStart = 64

// parameterReader 参数段读取器，按实体声明的行数累积参数表后填充实体
type parameterReader struct {
	doc       *Document
	pointer   core.Pointer
	unit      []string
	lineCount int
}

func (r *parameterReader) readLine(line core.IgesLine) error {
	field := strings.ReplaceAll(line.Content[backPointerStart:], " ", "0")
	sequence, err := strconv.Atoi(field)
	if err != nil {
		return fmt.Errorf("%w: 参数段回指非法 %q", core.ErrMalformedLine, line.Content[backPointerStart:])
	}

	r.pointer = core.PointerFromSequence(sequence)
	r.lineCount++

	if content := strings.TrimSpace(line.Content[:backPointerStart]); content != "" {
		// 行尾必为分隔符或终止符
		if content = content[:len(content)-1]; content != "" {
			r.unit = append(r.unit, strings.Split(content, r.doc.Delimiter())...)
		}
	}

	return nil
}

func (r *parameterReader) unitReady() bool {
	entity, ok := r.doc.Entities[r.pointer]
	if !ok {
		// 指向目录段已过滤类型的参数记录，尽快丢弃
		return true
	}

	return r.lineCount == entity.Base().LineCount
}

// processUnit 把累积的参数表转换为有序 Value 列表并填充目标实体
// 单个实体的失败只影响自身，不终止整个文件的解码
func (r *parameterReader) processUnit(sequence int) error {
	defer r.reset()

	entity, ok := r.doc.Entities[r.pointer]
	if !ok {
		tracer().Debugf("参数记录指向未注册实体 %d，跳过", r.pointer)
		return nil
	}

	if len(r.unit) == 0 {
		return nil
	}

	// 首个 token 重复实体类型号，与目录段冗余，丢弃
	params := make([]core.Value, 0, len(r.unit)-1)
	for _, token := range r.unit[1:] {
		if token == "" {
			continue
		}

		value, err := core.ParseValue(token)
		if err != nil {
			tracer().Errorf("实体 %d 参数非法: %v", r.pointer, err)
			delete(r.doc.Entities, r.pointer)
			return nil
		}

		params = append(params, value)
	}

	if err := entity.AddParameters(params); err != nil {
		tracer().Errorf("实体 %d (%s) 参数填充失败: %v",
			r.pointer, entities.TypeName(entity.Base().TypeNumber), err)
		delete(r.doc.Entities, r.pointer)
		return nil
	}

	return nil
}

func (r *parameterReader) reset() {
	r.pointer = 0
	r.unit = nil
	r.lineCount = 0
}
