package unlit

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// Fallback shading values for generated unlit materials. Fixed, not derived
// from the source material.
const (
	unlitRoughnessFactor float32 = 0.9
	unlitMetallicFactor  float32 = 0.0
)

// Patch splices the generated unlit textures into doc. texturePaths has one
// entry per original material: a path to the baked texture file, or nil if the
// generator skipped that material. For each generated texture an image, a
// texture and an unlit material are appended, and the original material is
// linked to the new one via the MOZ_alt_materials extension. Existing entries
// keep their indices.
func Patch(doc *gltf.Document, texturePaths []*string) error {
	originalMaterialCount := len(doc.Materials)
	if originalMaterialCount == 0 {
		return nil
	}
	if len(texturePaths) != originalMaterialCount {
		return fmt.Errorf("generator returned %d entries for %d materials", len(texturePaths), originalMaterialCount)
	}

	generated := false
	for _, p := range texturePaths {
		if p != nil {
			generated = true
			break
		}
	}
	if !generated {
		return nil
	}
	if doc.Images == nil {
		return fmt.Errorf("document has no images")
	}
	if doc.Textures == nil {
		return fmt.Errorf("document has no textures")
	}

	// Both tags are appended once per patch, even if already present.
	doc.ExtensionsUsed = append(doc.ExtensionsUsed, ExtensionName, UnlitExtensionName)

	nextUnlitMaterial := uint32(originalMaterialCount)
	for i := 0; i < originalMaterialCount; i++ {
		if texturePaths[i] == nil {
			continue
		}

		mat := doc.Materials[i]
		if mat.Extensions == nil {
			mat.Extensions = gltf.Extensions{}
		}
		mat.Extensions[ExtensionName] = &AltMaterials{Unlit: gltf.Index(nextUnlitMaterial)}
		nextUnlitMaterial++

		doc.Images = append(doc.Images, &gltf.Image{URI: filepath.Base(*texturePaths[i])})
		doc.Textures = append(doc.Textures, &gltf.Texture{
			Source: gltf.Index(uint32(len(doc.Images)) - 1),
		})

		rf := unlitRoughnessFactor
		mf := unlitMetallicFactor
		doc.Materials = append(doc.Materials, &gltf.Material{
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorTexture: &gltf.TextureInfo{Index: uint32(len(doc.Textures)) - 1},
				RoughnessFactor:  &rf,
				MetallicFactor:   &mf,
			},
			Extensions: gltf.Extensions{UnlitExtensionName: Unlit{}},
		})
	}
	return nil
}
