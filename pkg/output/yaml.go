package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YamlFormatter struct {
}

func (f *YamlFormatter) Kind() Format {
	return YamlFormat
}

func (f *YamlFormatter) Format(obj interface{}, writer io.Writer, _ interface{}) error {
	b, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}

	_, err = writer.Write(b)
	return err
}

var _ Formatter = (*YamlFormatter)(nil)
