// Package flightlogger
package flightlogger

import (
	"fmt"
	"time"
)

// Record 是API返回的松散类型节点, 所有必填字段缺失或无法解析都会返回错误,
// 由调用方决定是否致命(参见school包, 数据完整性错误会中止整次运行)
type Record map[string]interface{}

// ident 尽量给出能定位到具体记录的描述, 用于构造错误信息
func (record Record) ident() string {
	if id, ok := record["id"].(string); ok {
		return fmt.Sprintf("record id=%s", id)
	}
	if callSign, ok := record["callSign"].(string); ok {
		return fmt.Sprintf("record callSign=%s", callSign)
	}
	if name, ok := record["name"].(string); ok {
		return fmt.Sprintf("record name=%s", name)
	}
	return "record"
}

func (record Record) TypeName() string {
	typeName, _ := record["__typename"].(string)
	return typeName
}

func (record Record) Str(key string) (string, error) {
	value, ok := record[key]
	if !ok || value == nil {
		return "", fmt.Errorf("%s: missing required field %q", record.ident(), key)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: field %q is not a string", record.ident(), key)
	}
	return str, nil
}

// OptStr 读取可选字符串字段, 缺失或为null时返回空串
func (record Record) OptStr(key string) string {
	str, _ := record[key].(string)
	return str
}

func (record Record) Float(key string) (float64, error) {
	value, ok := record[key]
	if !ok || value == nil {
		return 0, fmt.Errorf("%s: missing required field %q", record.ident(), key)
	}
	number, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: field %q is not a number", record.ident(), key)
	}
	return number, nil
}

// OptFloat 读取可选数字字段, 缺失或为null时返回0
func (record Record) OptFloat(key string) float64 {
	number, _ := record[key].(float64)
	return number
}

func (record Record) Bool(key string) bool {
	value, _ := record[key].(bool)
	return value
}

// Time 解析ISO-8601时间戳字段
func (record Record) Time(key string) (time.Time, error) {
	str, err := record.Str(key)
	if err != nil {
		return time.Time{}, err
	}
	timestamp, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: field %q is not a valid timestamp: %w", record.ident(), key, err)
	}
	return timestamp, nil
}

func (record Record) Sub(key string) (Record, error) {
	sub := record.OptSub(key)
	if sub == nil {
		return nil, fmt.Errorf("%s: missing required object field %q", record.ident(), key)
	}
	return sub, nil
}

// OptSub 读取可选嵌套对象, 缺失或为null时返回nil
func (record Record) OptSub(key string) Record {
	value, ok := record[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return Record(value)
}

// Nodes 读取嵌套分页集合的nodes数组, 集合字段缺失时返回空列表
func (record Record) Nodes(key string) ([]Record, error) {
	collection := record.OptSub(key)
	if collection == nil {
		return nil, nil
	}
	nodes, err := recordList(collection["nodes"])
	if err != nil {
		return nil, fmt.Errorf("%s: collection %q: %w", record.ident(), key, err)
	}
	return nodes, nil
}

// List 读取普通对象数组字段(无分页包装), 缺失时返回空列表
func (record Record) List(key string) ([]Record, error) {
	value, ok := record[key]
	if !ok || value == nil {
		return nil, nil
	}
	items, err := recordList(value)
	if err != nil {
		return nil, fmt.Errorf("%s: field %q: %w", record.ident(), key, err)
	}
	return items, nil
}

func recordList(value interface{}) ([]Record, error) {
	rawItems, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("not an array of nodes")
	}
	items := make([]Record, 0, len(rawItems))
	for _, rawItem := range rawItems {
		item, ok := rawItem.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("array contains a non-object node")
		}
		items = append(items, Record(item))
	}
	return items, nil
}
