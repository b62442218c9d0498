package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONValue 存储形状不固定的 JSON 字段（题目答案、用户提交的答案）。
// 答案的具体形状取决于题型：字符串、字符串数组、布尔值或对象。
type JSONValue json.RawMessage

func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return string(v), nil
}

func (v *JSONValue) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}
	switch data := value.(type) {
	case []byte:
		*v = append(JSONValue{}, data...)
	case string:
		*v = JSONValue(data)
	default:
		return fmt.Errorf("unsupported type for JSONValue: %T", value)
	}
	return nil
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *JSONValue) UnmarshalJSON(data []byte) error {
	if v == nil {
		return errors.New("model.JSONValue: UnmarshalJSON on nil pointer")
	}
	*v = append((*v)[0:0], data...)
	return nil
}

func (JSONValue) GormDataType() string {
	return "json"
}
