package utils

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata qualquer valor (ou corpo JSON em bytes) com indentação
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := jsonIndent(&out, buffer); err != nil {
		return string(buffer)
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, buffer []byte) error {
	var v any
	if err := json.Unmarshal(buffer, &v); err != nil {
		return err
	}

	formatted, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	out.Write(formatted)
	return nil
}
