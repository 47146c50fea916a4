package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDocumentScanNull(t *testing.T) {
	doc := JSONDocument(`{"stale":true}`)
	require.NoError(t, doc.Scan(nil))
	assert.Nil(t, doc)

	value, err := doc.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestJSONDocumentScanBytes(t *testing.T) {
	var doc JSONDocument
	require.NoError(t, doc.Scan([]byte(`{"preferredDays":["monday"]}`)))
	assert.JSONEq(t, `{"preferredDays":["monday"]}`, string(doc))

	var fromString JSONDocument
	require.NoError(t, fromString.Scan(`{"allowSplitShifts":false}`))
	assert.JSONEq(t, `{"allowSplitShifts":false}`, string(fromString))

	assert.Error(t, doc.Scan(42))
}

func TestEmployeeMarshalsEmptyPreferencesAsNull(t *testing.T) {
	raw, err := json.Marshal(Employee{ID: "e1", CompanyID: "c1"})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "preferences")

	raw, err = json.Marshal(Employee{ID: "e1", Preferences: JSONDocument(`{"preferredHours":"morning"}`)})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.JSONEq(t, `{"preferredHours":"morning"}`, string(decoded["preferences"]))
}
