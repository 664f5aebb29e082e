package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemJSONRoundTrip(t *testing.T) {
	payload := `{"name":"Ceramic Mug","quantity":2,"price":12.5,"image":"/static/img/mug.jpg"}`

	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	assert.Equal(t, "Ceramic Mug", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 12.5, item.Extra["price"])
	assert.Equal(t, "/static/img/mug.jpg", item.Extra["image"])

	out, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Ceramic Mug", decoded["name"])
	assert.Equal(t, float64(2), decoded["quantity"])
	assert.Equal(t, 12.5, decoded["price"])
	assert.Equal(t, "/static/img/mug.jpg", decoded["image"])
}

func TestCartItemJSONWithoutExtras(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Tote","quantity":1}`), &item))

	assert.Equal(t, "Tote", item.Name)
	assert.Equal(t, 1, item.Quantity)
	assert.Nil(t, item.Extra)
}

func TestCartItemEquals(t *testing.T) {
	base := CartItem{Name: "Mug", Quantity: 2, Extra: map[string]interface{}{"price": 12.5}}

	t.Run("all fields match", func(t *testing.T) {
		other := CartItem{Name: "Mug", Quantity: 2, Extra: map[string]interface{}{"price": 12.5}}
		assert.True(t, base.Equals(other))
	})

	t.Run("quantity differs", func(t *testing.T) {
		other := CartItem{Name: "Mug", Quantity: 3, Extra: map[string]interface{}{"price": 12.5}}
		assert.False(t, base.Equals(other))
	})

	t.Run("extra field differs", func(t *testing.T) {
		other := CartItem{Name: "Mug", Quantity: 2, Extra: map[string]interface{}{"price": 11.0}}
		assert.False(t, base.Equals(other))
	})

	t.Run("extra field missing", func(t *testing.T) {
		other := CartItem{Name: "Mug", Quantity: 2}
		assert.False(t, base.Equals(other))
	})

	t.Run("no extras on either side", func(t *testing.T) {
		a := CartItem{Name: "Tote", Quantity: 1}
		b := CartItem{Name: "Tote", Quantity: 1, Extra: map[string]interface{}{}}
		assert.True(t, a.Equals(b))
	})
}
