package output

import (
	"fmt"
	"io"
)

type Format string

const (
	JsonFormat Format = "json"
	YamlFormat Format = "yaml"
	NoneFormat Format = "none"
)

type Formatter interface {
	Kind() Format
	Format(obj interface{}, writer io.Writer, opts interface{}) error
}

func NewFormatter(format string) (Formatter, error) {
	switch format {
	case string(JsonFormat):
		return &JsonFormatter{}, nil
	case string(YamlFormat):
		return &YamlFormatter{}, nil
	case string(NoneFormat):
		return &NoneFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
}

type NoneFormatter struct {
}

func (f *NoneFormatter) Kind() Format {
	return NoneFormat
}

func (f *NoneFormatter) Format(obj interface{}, writer io.Writer, opts interface{}) error {
	return nil
}

var _ Formatter = (*NoneFormatter)(nil)
