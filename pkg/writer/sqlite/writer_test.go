package sqlite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ikcgroup/ptmvalidate/pkg/core"
	"github.com/ikcgroup/ptmvalidate/pkg/unimod"
)

const testCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<umod:unimod xmlns:umod="http://www.unimod.org/xmlns/schema/unimod_2">
  <umod:modifications>
    <umod:mod title="Acetyl" full_name="Acetylation" record_id="1">
      <umod:specificity site="K" classification="Multiple"/>
      <umod:delta mono_mass="42.010565" avge_mass="42.0367" composition="H(2) C(2) O"/>
    </umod:mod>
    <umod:mod title="Oxidation" full_name="Oxidation or Hydroxylation" record_id="35">
      <umod:specificity site="M" classification="Post-translational"/>
      <umod:delta mono_mass="15.994915" avge_mass="15.9994" composition="O"/>
    </umod:mod>
  </umod:modifications>
</umod:unimod>
`

func TestSnapshotRoundTrip(t *testing.T) {
	orig, err := unimod.ParseXML(strings.NewReader(testCatalog))
	if err != nil {
		t.Fatalf("ParseXML() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "unimod.db")
	if err := Write(path, orig); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff(orig.Modifications(), loaded.Modifications()); diff != "" {
		t.Errorf("modifications differ after round trip (-orig +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(orig.Sites(), loaded.Sites()); diff != "" {
		t.Errorf("sites differ after round trip (-orig +loaded):\n%s", diff)
	}

	// Lookups behave identically on the loaded index.
	mass, err := loaded.MassOf("Oxidation", core.MonoMass)
	if err != nil {
		t.Fatalf("MassOf() error = %v", err)
	}
	name, err := loaded.NameOf(mass, core.MonoMass, unimod.DefaultMassTol)
	if err != nil {
		t.Fatalf("NameOf() error = %v", err)
	}
	if name != "Oxidation" {
		t.Errorf("NameOf(MassOf(Oxidation)) = %q, want Oxidation", name)
	}

	if _, err := loaded.MassOf("Nonexistent", core.MonoMass); !unimod.IsNotFound(err) {
		t.Errorf("MassOf() error = %v, want NotFoundError", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent", "unimod.db"))
	if err == nil {
		t.Error("Load() on missing file: expected error")
	}
}
