// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
)

// Manifest records the provenance of one run
type Manifest struct {
	ID      string                 `json:"id"`      // unique run identifier
	Created string                 `json:"created"` // creation time in RFC 3339 format
	Key     string                 `json:"key"`     // simulation key
	SimFile string                 `json:"simfile"` // path of simulation file
	Seed    int64                  `json:"seed"`    // seed used by stochastic functions
	Inputs  map[string]interface{} `json:"inputs"`  // input values
	Results map[string]interface{} `json:"results"` // summary of results
	Files   []string               `json:"files"`   // files written by the run
}

// NewManifest returns a new manifest with a fresh identifier
func NewManifest(key, simfile string, seed int64) *Manifest {
	return &Manifest{
		ID:      uuid.New().String(),
		Created: time.Now().UTC().Format(time.RFC3339),
		Key:     key,
		SimFile: simfile,
		Seed:    seed,
		Inputs:  make(map[string]interface{}),
		Results: make(map[string]interface{}),
	}
}

// Input records an input value
func (o *Manifest) Input(name string, value interface{}) {
	o.Inputs[name] = sanitise(value)
}

// Result records a result value
func (o *Manifest) Result(name string, value interface{}) {
	o.Results[name] = sanitise(value)
}

// File records a file written by the run
func (o *Manifest) File(fn string) {
	o.Files = append(o.Files, fn)
}

// Write writes <key>-manifest.json to dirout and returns its path
func (o *Manifest) Write(dirout string) (fn string, err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", chk.Err("manifest: cannot encode:\n%v", err)
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("manifest: cannot create directory %q:\n%v", dirout, err)
	}
	fn = filepath.Join(dirout, o.Key+"-manifest.json")
	if err = os.WriteFile(fn, b, 0644); err != nil {
		return "", chk.Err("manifest: cannot write %q:\n%v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}

// ReadManifest reads a manifest file
func ReadManifest(fn string) (o *Manifest, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("manifest: cannot read %q:\n%v", fn, err)
	}
	o = new(Manifest)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("manifest: cannot decode %q:\n%v", fn, err)
	}
	return
}

// sanitise replaces non-finite numbers (which JSON cannot represent) by nil
func sanitise(value interface{}) interface{} {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	case []float64:
		res := make([]interface{}, len(v))
		for i, x := range v {
			res[i] = sanitise(x)
		}
		return res
	}
	return value
}
