package taxonomy

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidTaxonomy is returned when tables are inconsistent.
var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// Taxonomy answers membership queries against a validated, read-only set of tables.
// It is safe for concurrent use.
type Taxonomy struct {
	tables Tables

	smtMounting map[int]struct{}
	thMounting  map[int]struct{}
	packages    map[PackageType]Package
	smtSupplier map[int]struct{}
}

// New validates tables and builds a Taxonomy from them.
// The tables are copied; later changes to the argument have no effect.
func New(tables Tables) (*Taxonomy, error) {
	if err := Validate(tables); err != nil {
		return nil, err
	}

	t := &Taxonomy{
		tables:      cloneTables(tables),
		smtMounting: make(map[int]struct{}),
		thMounting:  make(map[int]struct{}),
		packages:    make(map[PackageType]Package, len(tables.Packages)),
		smtSupplier: make(map[int]struct{}),
	}

	for _, mt := range tables.MountingTypes {
		if mt.SMT {
			t.smtMounting[mt.ID] = struct{}{}
		}
		if mt.TH {
			t.thMounting[mt.ID] = struct{}{}
		}
	}
	for _, p := range tables.Packages {
		t.packages[p.ID] = p
	}
	for _, sp := range tables.SupplierPackages {
		if sp.Mount == MountSMT {
			t.smtSupplier[sp.ID] = struct{}{}
		}
	}

	return t, nil
}

var (
	defaultOnce     sync.Once
	defaultTaxonomy *Taxonomy
)

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		t, err := New(DefaultTables())
		if err != nil {
			panic(fmt.Sprintf("built-in taxonomy: %v", err))
		}
		defaultTaxonomy = t
	})
	return defaultTaxonomy
}

// Validate checks that tables are internally consistent:
//   - every package belongs to exactly one of SMT or TH
//   - IDs are unique
//   - every rule names a known package
//   - no rule is shadowed by an earlier rule whose pattern it contains
func Validate(tables Tables) error {
	mounting := make(map[int]struct{}, len(tables.MountingTypes))
	for _, mt := range tables.MountingTypes {
		if _, dup := mounting[mt.ID]; dup {
			return fmt.Errorf("%w: duplicate mounting type id %d", ErrInvalidTaxonomy, mt.ID)
		}
		if !mt.SMT && !mt.TH {
			return fmt.Errorf("%w: mounting type %d (%s) is neither smt nor th", ErrInvalidTaxonomy, mt.ID, mt.Name)
		}
		mounting[mt.ID] = struct{}{}
	}

	packages := make(map[PackageType]struct{}, len(tables.Packages))
	for _, p := range tables.Packages {
		if p.ID == PackageInvalid {
			return fmt.Errorf("%w: package %q uses the reserved id 0", ErrInvalidTaxonomy, p.Name)
		}
		if _, dup := packages[p.ID]; dup {
			return fmt.Errorf("%w: duplicate package id %d", ErrInvalidTaxonomy, p.ID)
		}
		if p.Mount != MountSMT && p.Mount != MountThroughHole {
			return fmt.Errorf("%w: package %d (%s) must be smt or th, got %s", ErrInvalidTaxonomy, p.ID, p.Name, p.Mount)
		}
		packages[p.ID] = struct{}{}
	}

	supplier := make(map[int]struct{}, len(tables.SupplierPackages))
	for _, sp := range tables.SupplierPackages {
		if _, dup := supplier[sp.ID]; dup {
			return fmt.Errorf("%w: duplicate supplier package id %d", ErrInvalidTaxonomy, sp.ID)
		}
		supplier[sp.ID] = struct{}{}
	}

	for _, kw := range tables.SMTKeywords {
		if kw == "" {
			return fmt.Errorf("%w: empty smt keyword", ErrInvalidTaxonomy)
		}
	}

	for i, r := range tables.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("%w: rule %d has an empty pattern", ErrInvalidTaxonomy, i)
		}
		if _, ok := packages[r.Package]; !ok {
			return fmt.Errorf("%w: rule %q refers to unknown package %d", ErrInvalidTaxonomy, r.Pattern, r.Package)
		}
		for j := 0; j < i; j++ {
			if strings.Contains(r.Pattern, tables.Rules[j].Pattern) {
				return fmt.Errorf("%w: rule %q is unreachable, earlier rule %q matches first",
					ErrInvalidTaxonomy, r.Pattern, tables.Rules[j].Pattern)
			}
		}
	}

	return nil
}

// MountingMembership reports whether a Mounting Type value ID is a recognised
// SMT indicator, a TH indicator, both, or neither.
func (t *Taxonomy) MountingMembership(valueID int) (smt, th bool) {
	_, smt = t.smtMounting[valueID]
	_, th = t.thMounting[valueID]
	return smt, th
}

// PackageMount returns the mount type of a Package/Case value ID,
// or MountUnknown when the package is not in the table.
func (t *Taxonomy) PackageMount(pkg PackageType) MountType {
	if p, ok := t.packages[pkg]; ok {
		return p.Mount
	}
	return MountUnknown
}

// IsSMTPad reports whether any SMT keyword occurs in a footprint string.
func (t *Taxonomy) IsSMTPad(footprint string) bool {
	for _, kw := range t.tables.SMTKeywords {
		if strings.Contains(footprint, kw) {
			return true
		}
	}
	return false
}

// IsSMTSupplierPackage reports whether a Supplier Device Package value ID is known to be SMT.
func (t *Taxonomy) IsSMTSupplierPackage(valueID int) bool {
	_, ok := t.smtSupplier[valueID]
	return ok
}

// PackageName renders a package for display.
func (t *Taxonomy) PackageName(pkg PackageType) string {
	if pkg == PackageInvalid {
		return "Invalid"
	}
	if p, ok := t.packages[pkg]; ok {
		return p.Name
	}
	return fmt.Sprintf("Unrecognized (id %d)", int(pkg))
}

// Rules returns the ordered footprint rules.
func (t *Taxonomy) Rules() []Rule {
	return append([]Rule(nil), t.tables.Rules...)
}

// Tables returns a copy of the underlying tables.
func (t *Taxonomy) Tables() Tables {
	return cloneTables(t.tables)
}

func cloneTables(in Tables) Tables {
	return Tables{
		MountingTypes:    append([]MountingType(nil), in.MountingTypes...),
		Packages:         append([]Package(nil), in.Packages...),
		SupplierPackages: append([]SupplierPackage(nil), in.SupplierPackages...),
		SMTKeywords:      append([]string(nil), in.SMTKeywords...),
		Rules:            append([]Rule(nil), in.Rules...),
	}
}
