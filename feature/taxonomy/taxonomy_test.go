package taxonomy_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bom-checker/feature/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_PackageMembershipIsExclusive(t *testing.T) {
	tax := taxonomy.Default()

	for _, p := range tax.Tables().Packages {
		mount := tax.PackageMount(p.ID)
		assert.Contains(t, []taxonomy.MountType{taxonomy.MountSMT, taxonomy.MountThroughHole}, mount, p.Name)
		assert.Equal(t, p.Mount, mount, p.Name)
	}
}

func TestDefault_PackageMount(t *testing.T) {
	tax := taxonomy.Default()

	assert.Equal(t, taxonomy.MountSMT, tax.PackageMount(taxonomy.Package0805))
	assert.Equal(t, taxonomy.MountSMT, tax.PackageMount(taxonomy.PackageSOT235))
	assert.Equal(t, taxonomy.MountThroughHole, tax.PackageMount(taxonomy.PackageTO92))
	assert.Equal(t, taxonomy.MountThroughHole, tax.PackageMount(taxonomy.PackageSIP3))
	assert.Equal(t, taxonomy.MountUnknown, tax.PackageMount(taxonomy.PackageInvalid))
	assert.Equal(t, taxonomy.MountUnknown, tax.PackageMount(12345))
}

func TestDefault_MountingMembership(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		name    string
		valueID int
		smt, th bool
	}{
		{"SurfaceMount", taxonomy.MountingSurfaceMount, true, false},
		{"ThroughHole", taxonomy.MountingThroughHole, false, true},
		{"Both", taxonomy.MountingSurfaceMountThroughHole, true, true},
		{"Unrecognized", 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smt, th := tax.MountingMembership(tt.valueID)
			assert.Equal(t, tt.smt, smt)
			assert.Equal(t, tt.th, th)
		})
	}
}

func TestDefault_IsSMTPad(t *testing.T) {
	tax := taxonomy.Default()

	assert.True(t, tax.IsSMTPad("Resistor_SMD:R_0805_2012Metric"))
	assert.True(t, tax.IsSMTPad("Package_TO_SOT_SMD:SOT-23"))
	assert.False(t, tax.IsSMTPad("Package_DIP:DIP-8_W7.62mm"))
	assert.False(t, tax.IsSMTPad(""))
}

func TestDefault_IsSMTSupplierPackage(t *testing.T) {
	tax := taxonomy.Default()

	assert.True(t, tax.IsSMTSupplierPackage(412472))
	assert.False(t, tax.IsSMTSupplierPackage(1))
}

func TestPackageName(t *testing.T) {
	tax := taxonomy.Default()

	assert.Equal(t, "0805 (2012 Metric)", tax.PackageName(taxonomy.Package0805))
	assert.Equal(t, "Invalid", tax.PackageName(taxonomy.PackageInvalid))
	assert.Equal(t, "Unrecognized (id 7)", tax.PackageName(7))
}

func TestMountType_String(t *testing.T) {
	assert.Equal(t, "SMT", taxonomy.MountSMT.String())
	assert.Equal(t, "Through Hole", taxonomy.MountThroughHole.String())
	assert.Equal(t, "Ambiguous", taxonomy.MountAmbiguous.String())
	assert.Equal(t, "Unknown", taxonomy.MountUnknown.String())
	assert.Equal(t, "MountType(9)", taxonomy.MountType(9).String())
}

func TestMountType_Text(t *testing.T) {
	var m taxonomy.MountType
	require.NoError(t, m.UnmarshalText([]byte(" TH ")))
	assert.Equal(t, taxonomy.MountThroughHole, m)

	assert.Error(t, m.UnmarshalText([]byte("wall")))

	text, err := taxonomy.MountAmbiguous.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ambiguous", string(text))
}

func TestValidate(t *testing.T) {
	base := func() taxonomy.Tables {
		return taxonomy.Tables{
			MountingTypes: []taxonomy.MountingType{{ID: 1, Name: "Surface Mount", SMT: true}},
			Packages: []taxonomy.Package{
				{ID: 10, Name: "SOT-23-3", Mount: taxonomy.MountSMT},
				{ID: 11, Name: "SOT-23-6", Mount: taxonomy.MountSMT},
			},
			SMTKeywords: []string{"SOT"},
			Rules: []taxonomy.Rule{
				{Pattern: "SOT-23-6", Package: 11},
				{Pattern: "SOT-23", Package: 10},
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, taxonomy.Validate(base()))
	})

	tests := []struct {
		name   string
		mutate func(*taxonomy.Tables)
		errMsg string
	}{
		{
			name: "ShadowedRule",
			mutate: func(tb *taxonomy.Tables) {
				tb.Rules[0], tb.Rules[1] = tb.Rules[1], tb.Rules[0]
			},
			errMsg: `rule "SOT-23-6" is unreachable`,
		},
		{
			name: "UnknownRulePackage",
			mutate: func(tb *taxonomy.Tables) {
				tb.Rules[1].Package = 99
			},
			errMsg: "unknown package 99",
		},
		{
			name: "AmbiguousPackage",
			mutate: func(tb *taxonomy.Tables) {
				tb.Packages[0].Mount = taxonomy.MountAmbiguous
			},
			errMsg: "must be smt or th",
		},
		{
			name: "DuplicatePackage",
			mutate: func(tb *taxonomy.Tables) {
				tb.Packages[1].ID = 10
			},
			errMsg: "duplicate package id 10",
		},
		{
			name: "ReservedPackageID",
			mutate: func(tb *taxonomy.Tables) {
				tb.Packages[0].ID = taxonomy.PackageInvalid
			},
			errMsg: "reserved id 0",
		},
		{
			name: "MountingInNoSet",
			mutate: func(tb *taxonomy.Tables) {
				tb.MountingTypes[0].SMT = false
			},
			errMsg: "neither smt nor th",
		},
		{
			name: "EmptyKeyword",
			mutate: func(tb *taxonomy.Tables) {
				tb.SMTKeywords = append(tb.SMTKeywords, "")
			},
			errMsg: "empty smt keyword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := base()
			tt.mutate(&tb)
			err := taxonomy.Validate(tb)
			require.Error(t, err)
			assert.True(t, errors.Is(err, taxonomy.ErrInvalidTaxonomy))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefaultTables_AreValid(t *testing.T) {
	assert.NoError(t, taxonomy.Validate(taxonomy.DefaultTables()))
}

func TestNew_CopiesTables(t *testing.T) {
	tables := taxonomy.DefaultTables()
	tax, err := taxonomy.New(tables)
	require.NoError(t, err)

	tables.Rules[0].Pattern = "changed"
	assert.Equal(t, "0805", tax.Rules()[0].Pattern)

	rules := tax.Rules()
	rules[0].Pattern = "changed"
	assert.Equal(t, "0805", tax.Rules()[0].Pattern)
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	data, err := taxonomy.Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "mount: smt")

	tax, err := taxonomy.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Default().Tables(), tax.Tables())
}

func TestLoad(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taxonomy.yaml")
		content := `
mounting_types:
  - id: 1
    name: Surface Mount
    smt: true
packages:
  - id: 20
    name: 0603 (1608 Metric)
    mount: smt
smt_keywords: ["0603"]
rules:
  - pattern: "0603"
    package: 20
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		tax, err := taxonomy.Load(path)
		require.NoError(t, err)
		assert.Equal(t, taxonomy.MountSMT, tax.PackageMount(20))
		assert.True(t, tax.IsSMTPad("C_0603"))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := taxonomy.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := taxonomy.Parse([]byte("packagez: []\n"))
		assert.Error(t, err)
	})

	t.Run("InvalidMount", func(t *testing.T) {
		_, err := taxonomy.Parse([]byte("packages:\n  - id: 1\n    name: x\n    mount: wall\n"))
		assert.Error(t, err)
	})
}
