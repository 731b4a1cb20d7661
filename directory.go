package iges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/entities"
)

// 目录段每个实体占两行，每行 9 个 8 列字段
const chunksPerUnit = 18

// directoryReader 目录段读取器，产出实体骨架
type directoryReader struct {
	doc  *Document
	unit []string
}

func (r *directoryReader) readLine(line core.IgesLine) error {
	chunks, err := core.ChunkString(line.Content, core.EntryLength)
	if err != nil {
		return err
	}

	r.unit = append(r.unit, chunks...)
	return nil
}

func (r *directoryReader) unitReady() bool {
	return len(r.unit) >= chunksPerUnit
}

// processUnit 将缓冲的定宽字段按位置物化为实体骨架并注册
// 字段 9 是重复的类型号，14、15 是保留字段，全部跳过
// 字段 8 是状态号，16 是标签，其余按整数解析，空白按 0 处理
func (r *directoryReader) processUnit(sequence int) error {
	defer r.reset()

	var (
		numbers []int
		status  int
		label   string
		err     error
	)

	for i, chunk := range r.unit[:chunksPerUnit] {
		switch i {
		case 9, 14, 15: // 跳过
		case 8:
			if status, err = entities.ParseStatusNumber(chunk); err != nil {
				return fmt.Errorf("%w: %v", core.ErrMalformedLine, err)
			}
		case 16:
			label = strings.TrimSpace(chunk)
		default:
			number := 0
			if chunk := strings.TrimSpace(chunk); chunk != "" {
				if number, err = strconv.Atoi(chunk); err != nil {
					return fmt.Errorf("%w: 目录字段 %d 非法 %q", core.ErrMalformedLine, i, chunk)
				}
			}
			numbers = append(numbers, number)
		}
	}

	entity := entities.CreateEntity(numbers[0])
	if entity == nil {
		// 不支持的类型直接忽略，文件的其余部分继续解码
		tracer().Debugf("跳过不支持的实体类型 %d", numbers[0])
		return nil
	}

	base := entity.Base()
	base.TypeNumber = numbers[0]
	base.PDPointer = numbers[1]
	base.Structure = numbers[2]
	base.LineFont = numbers[3]
	base.Level = numbers[4]
	base.View = numbers[5]
	base.Transformation = numbers[6]
	base.LabelDisplay = numbers[7]
	base.StatusNumber = status
	base.LineWeight = numbers[8]
	base.Color = numbers[9]
	base.LineCount = numbers[10]
	base.Form = numbers[11]
	base.Label = label
	base.Subscript = numbers[12]

	r.doc.Entities[core.PointerFromSequence(sequence)] = entity
	return nil
}

func (r *directoryReader) reset() {
	r.unit = nil
}
