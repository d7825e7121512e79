package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{JsonFormat, YamlFormat, NoneFormat} {
		formatter, err := NewFormatter(string(format))
		require.NoError(t, err)
		require.Equal(t, format, formatter.Kind())
	}

	_, err := NewFormatter("xml")
	require.Error(t, err)
}

func TestJsonFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&JsonFormatter{}).Format(map[string]string{"detectedLanguage": "go"}, &buf, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"detectedLanguage": "go"}`, buf.String())
}

func TestYamlFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&YamlFormatter{}).Format(map[string]string{"detectedLanguage": "go"}, &buf, nil)
	require.NoError(t, err)
	require.Equal(t, "detectedLanguage: go\n", buf.String())
}

func TestNoneFormatterWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := (&NoneFormatter{}).Format("anything", &buf, nil)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
