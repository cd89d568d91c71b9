package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// DefaultCommand is the name of the native texture bake binary.
const DefaultCommand = "gltf_unlit_generator"

// Generator produces unlit texture files for a .gltf file. The result has one
// entry per material in the file: the path of the generated texture, or nil if
// the material was skipped (e.g. no base color texture).
type Generator interface {
	Generate(gltfPath string) ([]*string, error)
}

// Options for the external generator process.
type Options struct {
	OutDir  string   // -o: directory the textures are written to
	Lighten *float64 // -l: lighten scalar (0.0-1.0), passed through as-is
}

// Command runs the native generator binary and parses the JSON array it
// prints to stdout.
type Command struct {
	Bin string
	Options
}

func NewCommand(bin string, options *Options) *Command {
	if bin == "" {
		bin = DefaultCommand
	}
	if options == nil {
		options = &Options{}
	}
	return &Command{Bin: bin, Options: *options}
}

func (g *Command) args(gltfPath string) []string {
	args := []string{gltfPath}
	if g.OutDir != "" {
		args = append(args, "-o", g.OutDir)
	}
	if g.Lighten != nil {
		args = append(args, "-l", strconv.FormatFloat(*g.Lighten, 'f', -1, 64))
	}
	return args
}

func (g *Command) Generate(gltfPath string) ([]*string, error) {
	cmd := exec.Command(g.Bin, g.args(gltfPath)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %v\n%s%s", g.Bin, err, stdout.String(), stderr.String())
	}
	return parseOutput(stdout.Bytes())
}

func parseOutput(out []byte) ([]*string, error) {
	var paths []*string
	if err := json.Unmarshal(bytes.TrimSpace(out), &paths); err != nil {
		return nil, fmt.Errorf("unexpected generator output: %v\n%s", err, out)
	}
	return paths, nil
}
