// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import (
	_ "embed"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/vectors.yaml
var vectorsData []byte

type vectorFile struct {
	Vectors []vector `yaml:"vectors"`
}

type vector struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Bits int    `yaml:"bits"`
	Size int    `yaml:"size"`
	Hex  string `yaml:"hex"`
	Want string `yaml:"want"`
}

func loadVectors() (*vectorFile, error) {
	var vf vectorFile
	if err := yaml.Unmarshal(vectorsData, &vf); err != nil {
		return nil, err
	}
	return &vf, nil
}

func (v vector) schema() (Node, error) {
	switch v.Kind {
	case "bool":
		return Bool(), nil
	case "uint":
		return Uint(v.Bits), nil
	case "int":
		return Int(v.Bits), nil
	case "address":
		return Address(), nil
	case "bytesN":
		return BytesN(v.Size), nil
	default:
		return Node{}, fmt.Errorf("vectors.yaml: unknown kind %q", v.Kind)
	}
}

// render formats a decoded Value the same way the vector's "want" field is
// written, so the comparison is a plain string equality.
func render(v *Value) (string, error) {
	if b, ok := v.AsBool(); ok {
		if b {
			return "true", nil
		}
		return "false", nil
	}
	if n, ok := v.AsBigInt(); ok {
		return n.String(), nil
	}
	if b, ok := v.AsBytes(); ok {
		return fmt.Sprintf("%x", b), nil
	}
	return "", fmt.Errorf("render: Value has no renderable payload")
}

func TestVectors(t *testing.T) {
	vf, err := loadVectors()
	if err != nil {
		t.Fatalf("loadVectors: %v", err)
	}
	if len(vf.Vectors) == 0 {
		t.Fatal("testdata/vectors.yaml contained no vectors")
	}

	for _, vec := range vf.Vectors {
		vec := vec
		t.Run(vec.Name, func(t *testing.T) {
			schema, err := vec.schema()
			if err != nil {
				t.Fatalf("schema: %v", err)
			}
			v, err := Decode(vec.Hex, &schema)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			got, err := render(v)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != vec.Want {
				t.Fatalf("%s: got %q, want %q", vec.Name, got, vec.Want)
			}
		})
	}
}
