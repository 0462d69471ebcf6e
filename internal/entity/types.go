// ABOUTME: Entity label enum and the label/confidence classification record
// ABOUTME: Valid() enforces the closed label set and the [0,1] confidence range

package entity

import "fmt"

// Label is an entity category.
type Label string

const (
	LabelCompany      Label = "company"
	LabelPerson       Label = "person"
	LabelPlace        Label = "place"
	LabelProduct      Label = "product"
	LabelOrganization Label = "organization"
	LabelConcept      Label = "concept"
	LabelOther        Label = "other"
)

// Labels lists the closed label set.
var Labels = []Label{
	LabelCompany, LabelPerson, LabelPlace, LabelProduct,
	LabelOrganization, LabelConcept, LabelOther,
}

// ParseLabel maps an exact label name to its Label.
func ParseLabel(s string) (Label, bool) {
	for _, l := range Labels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Classification is a label with a confidence in [0,1].
type Classification struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Valid reports whether the label is known and the confidence is in range.
func (c Classification) Valid() error {
	if _, ok := ParseLabel(string(c.Label)); !ok {
		return fmt.Errorf("label %q is not one of %v", c.Label, Labels)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence %v outside [0,1]", c.Confidence)
	}
	return nil
}
