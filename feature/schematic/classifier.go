package schematic

import (
	"strings"

	"bom-checker/feature/taxonomy"
)

// Classifier maps footprint strings to classifications.
type Classifier struct {
	tax   *taxonomy.Taxonomy
	rules []taxonomy.Rule
}

// NewClassifier creates a classifier over the taxonomy's rules.
func NewClassifier(tax *taxonomy.Taxonomy) *Classifier {
	return &Classifier{
		tax:   tax,
		rules: tax.Rules(),
	}
}

// Match returns the first rule whose pattern occurs in the footprint.
func (c *Classifier) Match(footprint string) (taxonomy.Rule, bool) {
	for _, r := range c.rules {
		if strings.Contains(footprint, r.Pattern) {
			return r, true
		}
	}
	return taxonomy.Rule{}, false
}

// Classify returns the classification of a footprint string.
// It never fails: unmatched footprints yield taxonomy.Unclassified.
func (c *Classifier) Classify(footprint string) taxonomy.Classification {
	cl, _, _ := c.ClassifyRule(footprint)
	return cl
}

// ClassifyRule returns the classification together with the rule that produced it.
// The rule is only meaningful when matched is true.
func (c *Classifier) ClassifyRule(footprint string) (cl taxonomy.Classification, rule taxonomy.Rule, matched bool) {
	rule, matched = c.Match(footprint)
	if !matched {
		return taxonomy.Unclassified, rule, false
	}
	return taxonomy.Classification{
		Mount:   c.tax.PackageMount(rule.Package),
		Package: rule.Package,
	}, rule, true
}
