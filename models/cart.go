package models

import (
	"encoding/json"
	"reflect"
)

// CartItem is a product line in a user's cart. Name is the identity key
// for quantity updates; Extra carries whatever additional product fields
// the storefront submits (price, image, ...) opaquely through JSON and
// bson so removal can match on the full structure.
type CartItem struct {
	Name     string                 `bson:"name"`
	Quantity int                    `bson:"quantity"`
	Extra    map[string]interface{} `bson:",inline"`
}

// MarshalJSON flattens Extra back into the top-level object.
func (ci CartItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(ci.Extra)+2)
	for k, v := range ci.Extra {
		out[k] = v
	}
	out["name"] = ci.Name
	out["quantity"] = ci.Quantity
	return json.Marshal(out)
}

// UnmarshalJSON splits the known fields from the open remainder.
func (ci *CartItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &ci.Name); err != nil {
			return err
		}
		delete(raw, "name")
	}
	if v, ok := raw["quantity"]; ok {
		if err := json.Unmarshal(v, &ci.Quantity); err != nil {
			return err
		}
		delete(raw, "quantity")
	}

	if len(raw) == 0 {
		ci.Extra = nil
		return nil
	}
	ci.Extra = make(map[string]interface{}, len(raw))
	for k, v := range raw {
		var val interface{}
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		ci.Extra[k] = val
	}
	return nil
}

// Equals reports structural equality: every field, including the open
// extras, must match. Removal works on this contract, not on Name alone.
func (ci CartItem) Equals(other CartItem) bool {
	if ci.Name != other.Name || ci.Quantity != other.Quantity {
		return false
	}
	if len(ci.Extra) != len(other.Extra) {
		return false
	}
	return len(ci.Extra) == 0 || reflect.DeepEqual(ci.Extra, other.Extra)
}
