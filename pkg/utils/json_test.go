package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustMarshalJSON(t *testing.T) {
	data := MustMarshalJSON(map[string]int{"a": 1})
	assert.JSONEq(t, `{"a":1}`, string(data))
}

func TestMustMarshalJSON_PanicsOnUnmarshalable(t *testing.T) {
	assert.Panics(t, func() {
		MustMarshalJSON(make(chan int))
	})
}

func TestUnmarshalJSON(t *testing.T) {
	var dest map[string]string
	assert.NoError(t, UnmarshalJSON([]byte(`{"k":"v"}`), &dest))
	assert.Equal(t, "v", dest["k"])

	err := UnmarshalJSON([]byte(`{broken`), &dest)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}
