package gltfutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// Save writes doc as glTF JSON. External buffer resources are written
// relative to path.
func Save(doc *gltf.Document, path string) error {
	return gltf.Save(doc, path)
}

// EmbedImages moves URI-referenced image files into the document buffer so
// the output does not depend on loose texture files. Relative URIs are
// resolved against srcDirs in order. Image bytes are copied as-is.
func EmbedImages(doc *gltf.Document, srcDirs ...string) error {
	for _, m := range doc.Images {
		if m.BufferView != nil || m.URI == "" {
			continue
		}
		buf, err := readImage(m.URI, srcDirs)
		if err != nil {
			return err
		}
		if m.MimeType == "" {
			if strings.HasSuffix(strings.ToLower(m.URI), ".png") {
				m.MimeType = "image/png"
			} else {
				m.MimeType = "image/jpeg"
			}
		}
		m.BufferView = gltf.Index(modeler.WriteBufferView(doc, gltf.TargetNone, buf))
		m.URI = ""
	}
	if len(doc.Buffers) > 0 {
		// keep ByteLength in sync with the appended data
		doc.Buffers[0].ByteLength = uint32(len(doc.Buffers[0].Data))
	}
	return nil
}

func readImage(uri string, srcDirs []string) ([]byte, error) {
	err := fmt.Errorf("image not found: %v", uri)
	for _, dir := range srcDirs {
		var buf []byte
		if buf, err = os.ReadFile(filepath.Join(dir, uri)); err == nil {
			return buf, nil
		}
	}
	return nil, err
}
