package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/entities"
	"github.com/zooyer/iges/utils"
)

func init() {
	if strings.HasPrefix(filepath.Base(os.Args[0]), "___go_build_") {
		os.Args = append(os.Args, "cmd/testdata/example.igs")
	}

	if len(os.Args) < 2 {
		filename, err := zenity.SelectFile(
			zenity.Title("选择IGES文件"),
			zenity.FileFilters{{Name: "IGES文件", Patterns: []string{"*.igs", "*.iges"}, CaseFold: true}},
		)
		if err != nil || filename == "" {
			fmt.Println("请把IGES文件拖入该程序上执行！")
			xos.PauseExit()
			os.Exit(1)
		}
		os.Args = append(os.Args, filename)
	}
}

func main() {
	defer xos.PauseExit()

	doc, err := iges.Open(os.Args[1])
	if err != nil {
		panic(err)
	}

	if doc.Description != "" {
		fmt.Println("文件描述:")
		fmt.Println(doc.Description)
		fmt.Println()
	}

	// 按类型统计实体
	counts := make(map[int]int)
	for _, entity := range doc.Entities {
		counts[entity.Base().TypeNumber]++
	}

	types := make([]int, 0, len(counts))
	for typeNumber := range counts {
		types = append(types, typeNumber)
	}
	sort.Ints(types)

	fmt.Printf("实体总数: %d\n", len(doc.Entities))
	for _, typeNumber := range types {
		fmt.Printf("  %4d %-28s %d\n", typeNumber, entities.TypeName(typeNumber), counts[typeNumber])
	}

	if box, ok := utils.Bounds(doc); ok {
		fmt.Printf("模型范围: (%.3f, %.3f, %.3f) ~ (%.3f, %.3f, %.3f)\n",
			box.Min.X, box.Min.Y, box.Min.Z,
			box.Max.X, box.Max.Y, box.Max.Z)
	}
}
