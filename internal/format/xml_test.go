package format

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteXMLOneShotHasDeclarationAndClosingTag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, sampleIndexes(), "indexes", true, true))

	out := buf.String()
	require.Contains(t, out, xml.Header)
	require.Contains(t, out, "<indexes>")
	require.Contains(t, out, "</indexes>")
	require.Contains(t, out, "<index>")
	require.Contains(t, out, "<name>main</name>")
}

func TestWriteXMLStreamingOmitsDeclarationAfterFirstBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, sampleIndexes(), "indexes", false, false))

	out := buf.String()
	require.NotContains(t, out, xml.Header)
	require.NotContains(t, out, "<indexes>")
	require.NotContains(t, out, "</indexes>")
	require.Contains(t, out, "<index>")
}

func TestWriteXMLEscapesSpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	list := IndexList{{Name: `a<b>&"c'd`}}
	require.NoError(t, WriteXML(&buf, list, "indexes", true, true))

	out := buf.String()
	require.NotContains(t, out, "<b>&\"")
	require.Contains(t, out, "&lt;b&gt;")
}

func TestWriteXMLOmitsNilFields(t *testing.T) {
	var buf bytes.Buffer
	list := IndexList{{Name: "main", MinTime: nil}}
	require.NoError(t, WriteXML(&buf, list, "indexes", true, true))
	require.NotContains(t, buf.String(), "<min_time>")
}
