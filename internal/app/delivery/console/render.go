package console

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

// renderJSON prints an API payload. Lists of objects become a table with
// one column per key, a single object a key/value table, anything else is
// printed as indented JSON.
func renderJSON(payload []byte) (string, error) {
	var value interface{}
	err := json.Unmarshal(payload, &value)
	if err != nil {
		return "", err
	}

	switch typed := value.(type) {
	case []interface{}:
		rows, ok := objects(typed)
		if ok && len(rows) > 0 {
			return renderRows(rows), nil
		}
		if len(typed) == 0 {
			return "(empty)", nil
		}
	case map[string]interface{}:
		return renderObject(typed), nil
	}

	var indented bytes.Buffer
	err = json.Indent(&indented, payload, "", "  ")
	if err != nil {
		return "", err
	}
	return indented.String(), nil
}

func objects(items []interface{}) ([]map[string]interface{}, bool) {
	rows := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		row, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}
		rows = append(rows, row)
	}
	return rows, true
}

func renderRows(rows []map[string]interface{}) string {
	keySet := make(map[string]struct{})
	for _, row := range rows {
		for key := range row {
			keySet[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out bytes.Buffer
	table := newTable(&out)
	table.SetHeader(keys)
	for _, row := range rows {
		cells := make([]string, len(keys))
		for i, key := range keys {
			if value, ok := row[key]; ok {
				cells[i] = formatCell(value)
			}
		}
		table.Append(cells)
	}
	table.Render()
	return strings.TrimRight(out.String(), "\n")
}

func renderObject(object map[string]interface{}) string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out bytes.Buffer
	table := newTable(&out)
	table.SetHeader([]string{"field", "value"})
	for _, key := range keys {
		table.Append([]string{key, formatCell(object[key])})
	}
	table.Render()
	return strings.TrimRight(out.String(), "\n")
}

func newTable(out *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func formatCell(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return fmt.Sprintf("%t", typed)
	case float64:
		if typed == math.Trunc(typed) && math.Abs(typed) < 1e15 {
			return fmt.Sprintf("%.0f", typed)
		}
		return fmt.Sprintf("%g", typed)
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}
		return string(encoded)
	}
}
