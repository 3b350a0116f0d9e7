package ses

import "encoding/json"

// marshalTemplateData encodes the template variables the way SES expects, a
// flat JSON object of string values.
func marshalTemplateData(data map[string]string) (string, error) {
	if len(data) == 0 {
		return "{}", nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
