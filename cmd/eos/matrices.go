package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/eos"
)

// loadMatrices stores the matrices in a YAML file, which maps slot letters to
// lists of rows:
//
//	A:
//	  - [1, 2]
//	  - [3, 4]
func loadMatrices(store *eos.Store, name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return decodeMatrices(store, b)
}

func decodeMatrices(store *eos.Store, b []byte) error {
	var raw map[string][][]float64
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("matrices: %w", err)
	}
	for name, rows := range raw {
		slot, ok := slotNamed(name)
		if !ok {
			return fmt.Errorf("matrices: no slot named %q", name)
		}
		var cols int
		if len(rows) > 0 {
			cols = len(rows[0])
		}
		vals := make([]float64, 0, len(rows)*cols)
		for _, r := range rows {
			vals = append(vals, r...)
		}
		if err := store.Update(slot, len(rows), cols, vals); err != nil {
			return fmt.Errorf("matrices: slot %s: %w", name, err)
		}
	}
	return nil
}

// slotNamed finds the slot token for a name like "A" or "[A]".
func slotNamed(name string) (eos.Token, bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(name), "["), "]")
	for _, t := range eos.Slots() {
		if t.String() == "["+strings.ToUpper(name)+"]" {
			return t, true
		}
	}
	return eos.None, false
}
