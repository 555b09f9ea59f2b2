package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/binding"
	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/dsl"
)

// DecodeJSON 读取 JSON 格式的传单数据。
func DecodeJSON(r io.Reader) (FlyerData, error) {
	var data FlyerData
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return FlyerData{}, fmt.Errorf("解析 JSON 数据失败: %w", err)
	}
	return data, validate(data)
}

// DecodeYAML 读取 YAML 格式的传单数据，键名与 JSON 相同。
func DecodeYAML(r io.Reader) (FlyerData, error) {
	var data FlyerData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && err != io.EOF {
		return FlyerData{}, fmt.Errorf("解析 YAML 数据失败: %w", err)
	}
	return data, validate(data)
}

// FromDocument 将 .flyer DSL 转换为传单数据，字符串中的 ${...} 用 bound 插值。
func FromDocument(doc *dsl.Document, bound any) (FlyerData, error) {
	if doc == nil {
		return FlyerData{}, fmt.Errorf("文档为空")
	}
	data := FlyerData{Month: binding.Interpolate(string(doc.Month), bound)}
	if doc.Block == nil {
		return data, nil
	}

	for _, st := range doc.Block.Statements {
		switch {
		case st.Event != nil:
			ev, err := eventFromDecl(st.Event, bound)
			if err != nil {
				return FlyerData{}, err
			}
			data.Events = append(data.Events, ev)
		case st.Assignment != nil:
			a := st.Assignment
			text, err := a.Value.Text()
			if err != nil {
				return FlyerData{}, err
			}
			text = binding.Interpolate(text, bound)
			switch a.Key {
			case "month":
				data.Month = text
			case "top", "topDetails":
				data.TopDetails = text
			case "bottom", "bottomDetails":
				data.BottomDetails = text
			default:
				return FlyerData{}, fmt.Errorf("%s: 未知字段 %q", a.Pos, a.Key)
			}
		}
	}
	return data, validate(data)
}

func eventFromDecl(decl *dsl.EventDecl, bound any) (EventRecord, error) {
	ev := EventRecord{
		Day:  binding.Interpolate(string(decl.Day), bound),
		Name: binding.Interpolate(string(decl.Name), bound),
	}
	if decl.Block == nil {
		return ev, nil
	}
	for _, st := range decl.Block.Statements {
		if st.Event != nil {
			return EventRecord{}, fmt.Errorf("%s: event 不能嵌套", st.Event.Pos)
		}
		a := st.Assignment
		switch a.Key {
		case "location":
			text, err := a.Value.Text()
			if err != nil {
				return EventRecord{}, err
			}
			ev.Location = binding.Interpolate(text, bound)
		case "details":
			text, err := a.Value.Text()
			if err != nil {
				return EventRecord{}, err
			}
			ev.Details = binding.Interpolate(text, bound)
		case "detailsNum", "number":
			n, err := a.Value.Int()
			if err != nil {
				return EventRecord{}, err
			}
			ev.DetailsNum = n
		default:
			return EventRecord{}, fmt.Errorf("%s: 未知字段 %q", a.Pos, a.Key)
		}
	}
	return ev, nil
}

// LoadFile 按扩展名（.json / .yaml / .yml / .flyer）读取传单数据。
func LoadFile(path string, bound any) (FlyerData, error) {
	file, err := os.Open(path)
	if err != nil {
		return FlyerData{}, fmt.Errorf("无法打开数据文件 %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(file)
	case ".yaml", ".yml":
		return DecodeYAML(file)
	case ".flyer":
		doc, err := dsl.Parse(file)
		if err != nil {
			return FlyerData{}, fmt.Errorf("解析 DSL 失败: %w", err)
		}
		return FromDocument(doc, bound)
	default:
		return FlyerData{}, fmt.Errorf("不支持的数据文件类型: %s", path)
	}
}

// validate 只检查调用方负责的前置条件，内容本身的退化情况（空文本、零活动）不算错误。
func validate(data FlyerData) error {
	for i, ev := range data.Events {
		if ev.DetailsNum < 0 {
			return fmt.Errorf("第 %d 个活动的 detailsNum 不能为负数: %d", i+1, ev.DetailsNum)
		}
	}
	return nil
}
