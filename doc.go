package iges

import (
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/entities"
)

// tracer writes to trace with key 'iges'
func tracer() tracing.Trace {
	return tracing.Select("iges")
}

// 全局段未声明时的默认分隔符与终止符
const (
	DefaultDelimiter  = ","
	DefaultTerminator = ";"
)

// Document 一次解码会话产出的 IGES 文档
// 注册表独占持有全部实体，实体间引用只是注册表内的指针查找
type Document struct {
	Description string
	GlobalData  []core.Value
	Entities    entities.Registry
}

// Delimiter 参数分隔符，全局段第 1 个值，解码期间必须保持不变
func (d *Document) Delimiter() string {
	if len(d.GlobalData) > 0 && d.GlobalData[0].IsText && d.GlobalData[0].Text != "" {
		return d.GlobalData[0].Text
	}
	return DefaultDelimiter
}

// Terminator 记录终止符，全局段第 2 个值
func (d *Document) Terminator() string {
	if len(d.GlobalData) > 1 && d.GlobalData[1].IsText && d.GlobalData[1].Text != "" {
		return d.GlobalData[1].Text
	}
	return DefaultTerminator
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		document = &Document{Entities: make(entities.Registry)}
		scanner  = core.NewScanner(reader)

		global  = &globalReader{doc: document}
		readers = map[byte]sectionReader{
			core.SectionStart:     &startReader{doc: document},
			core.SectionGlobal:    global,
			core.SectionData:      &directoryReader{doc: document},
			core.SectionParameter: &parameterReader{doc: document},
		}
	)

	for scanner.Next() {
		line := scanner.LastLine
		if line.Section == core.SectionTerminate {
			break
		}

		// 离开全局段时残留的 Hollerith 字符串立即报错，不等到文件末尾
		if line.Section != core.SectionGlobal {
			if err = global.finish(); err != nil {
				return nil, err
			}
		}

		r := readers[line.Section]
		if err = r.readLine(line); err != nil {
			return nil, err
		}

		if r.unitReady() {
			if err = r.processUnit(line.Sequence); err != nil {
				return nil, err
			}
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	// 全局段不允许残留未完成的 Hollerith 字符串
	if err = global.finish(); err != nil {
		return nil, err
	}

	tracer().Infof("解码完成: 实体 %d 个, 全局参数 %d 个", len(document.Entities), len(document.GlobalData))
	return document, nil
}
