package iges

import (
	"strings"

	"github.com/zooyer/iges/core"
)

// sectionReader 段读取器的统一契约
// IGES 的逻辑单元与物理行不是一一对应的（全局记录、两行目录项、
// 多行参数表），读取器先把行缓冲成单元，单元就绪后再物化进文档
type sectionReader interface {
	readLine(line core.IgesLine) error
	unitReady() bool
	processUnit(sequence int) error
	reset()
}

// startReader 起始段读取器，内容为文件的人类可读描述
type startReader struct {
	doc  *Document
	unit string
}

func (r *startReader) readLine(line core.IgesLine) error {
	r.unit = strings.TrimRight(line.Content, " ")
	return nil
}

func (r *startReader) unitReady() bool {
	return r.unit != ""
}

func (r *startReader) processUnit(sequence int) error {
	defer r.reset()

	if r.doc.Description != "" {
		r.doc.Description += "\n"
	}
	r.doc.Description += r.unit

	return nil
}

func (r *startReader) reset() {
	r.unit = ""
}
