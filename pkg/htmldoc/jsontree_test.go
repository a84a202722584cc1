package htmldoc

import "testing"

const stateBlob = `{
	"props": {
		"pageProps": {
			"itemInfo": {
				"itemStruct": {"id": "7234", "desc": "מצרכים:\n2 ביצים"}
			}
		}
	}
}`

func TestDecodeJSON_Invalid(t *testing.T) {
	if _, ok := DecodeJSON("{not json"); ok {
		t.Error("DecodeJSON(invalid) ok = true, want false")
	}
}

func TestLookup_KnownPath(t *testing.T) {
	value, ok := DecodeJSON(stateBlob)
	if !ok {
		t.Fatal("DecodeJSON() ok = false, want true")
	}

	id, ok := value.Str("props", "pageProps", "itemInfo", "itemStruct", "id")
	if !ok || id != "7234" {
		t.Errorf("Str(itemStruct.id) = %q, %v, want %q, true", id, ok, "7234")
	}

	if _, ok := value.Lookup("props", "missing"); ok {
		t.Error("Lookup(missing path) ok = true, want false")
	}
}

func TestAnyChild(t *testing.T) {
	value, ok := DecodeJSON(`{"ItemModule": {"7234": {"id": "7234", "desc": "x"}}}`)
	if !ok {
		t.Fatal("DecodeJSON() ok = false, want true")
	}

	modules, ok := value.Lookup("ItemModule")
	if !ok {
		t.Fatal("Lookup(ItemModule) ok = false, want true")
	}

	item, ok := modules.AnyChild()
	if !ok {
		t.Fatal("AnyChild() ok = false, want true")
	}
	if id, _ := item.Str("id"); id != "7234" {
		t.Errorf("AnyChild().id = %q, want %q", id, "7234")
	}

	empty, _ := DecodeJSON(`{}`)
	if _, ok := empty.AnyChild(); ok {
		t.Error("AnyChild() on empty object ok = true, want false")
	}
}
