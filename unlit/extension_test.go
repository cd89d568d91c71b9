package unlit

import (
	"bytes"
	"testing"

	"github.com/qmuntal/gltf"
)

var patchedDoc = []byte(`{
	"asset": {"version": "2.0"},
	"extensionsUsed": ["MOZ_alt_materials", "KHR_materials_unlit"],
	"materials": [
		{"extensions": {"MOZ_alt_materials": {"KHR_materials_unlit": 1}}},
		{"extensions": {"KHR_materials_unlit": {}}}
	]
}`)

func TestDecodePatchedDocument(t *testing.T) {
	var doc gltf.Document
	if err := gltf.NewDecoder(bytes.NewReader(patchedDoc)).Decode(&doc); err != nil {
		t.Fatal(err)
	}
	alt := MaterialAlts(doc.Materials[0])
	if alt == nil || alt.Unlit == nil || *alt.Unlit != 1 {
		t.Errorf("alt link: %+v", alt)
	}
	if _, ok := doc.Materials[1].Extensions[UnlitExtensionName].(*Unlit); !ok {
		t.Errorf("unlit marker: %+v", doc.Materials[1].Extensions)
	}
	if !IsExtensionUsed(&doc, ExtensionName) || !IsExtensionUsed(&doc, UnlitExtensionName) {
		t.Errorf("extensionsUsed: %v", doc.ExtensionsUsed)
	}
}

func TestUnmarshal(t *testing.T) {
	v, err := Unmarshal([]byte(`{"KHR_materials_unlit": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	alt := v.(*AltMaterials)
	if alt.Unlit == nil || *alt.Unlit != 3 {
		t.Errorf("alt: %+v", alt)
	}

	v, err = Unmarshal([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.(*AltMaterials).Unlit != nil {
		t.Errorf("expected no unlit link: %+v", v)
	}
}
