package unlit

// https://github.com/KhronosGroup/glTF/tree/main/extensions/2.0/Khronos/KHR_materials_unlit

import (
	"encoding/json"

	"github.com/qmuntal/gltf"
)

const (
	// ExtensionName links an original material to its generated unlit variant.
	ExtensionName = "MOZ_alt_materials"
	// UnlitExtensionName marks a material as using the unlit shading model.
	UnlitExtensionName = "KHR_materials_unlit"
)

func init() {
	gltf.RegisterExtension(ExtensionName, Unmarshal)
	gltf.RegisterExtension(UnlitExtensionName, UnmarshalUnlit)
}

// AltMaterials holds indices of alternate materials keyed by shading model.
type AltMaterials struct {
	Unlit *uint32 `json:"KHR_materials_unlit,omitempty"`
}

// Unlit is the empty KHR_materials_unlit marker object.
type Unlit struct{}

func Unmarshal(data []byte) (interface{}, error) {
	var alt AltMaterials
	if err := json.Unmarshal(data, &alt); err != nil {
		return nil, err
	}
	return &alt, nil
}

func UnmarshalUnlit(data []byte) (interface{}, error) {
	var u Unlit
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// MaterialAlts returns the alternate material links of mat, or nil.
func MaterialAlts(mat *gltf.Material) *AltMaterials {
	if alt, ok := mat.Extensions[ExtensionName].(*AltMaterials); ok {
		return alt
	}
	return nil
}

func IsExtensionUsed(doc *gltf.Document, extname string) bool {
	for _, ex := range doc.ExtensionsUsed {
		if ex == extname {
			return true
		}
	}
	return false
}
