package utils

import (
	"encoding/json"
	"fmt"
)

// ConvertString renders any value as a JSON string for log metadata.
func ConvertString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		return v.Error()
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%+v", value)
		}
		return string(data)
	}
}
