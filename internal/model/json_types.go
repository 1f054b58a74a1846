package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList and StringGrid are JSONB column helpers so sqlx can scan the
// denormalized course fields (targets, summaries, lesson lists) directly.

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type StringGrid [][]string

func (g StringGrid) Value() (driver.Value, error) {
	if g == nil {
		return json.Marshal([][]string{})
	}
	return json.Marshal(g)
}

func (g *StringGrid) Scan(src interface{}) error {
	return scanJSON(src, g)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
