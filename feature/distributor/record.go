package distributor

import (
	"fmt"
	"io"

	"bom-checker/core/utils"

	"github.com/goccy/go-json"
)

// Record is the parametric data of one distributor part.
type Record struct {
	PartNumber             string      `json:"DigiKeyPartNumber,omitempty"`
	ManufacturerPartNumber string      `json:"ManufacturerPartNumber,omitempty"`
	Description            string      `json:"ProductDescription,omitempty"`
	Parameters             []Parameter `json:"Parameters"`
}

// Parameter is one (parameter id, value, value id) triple. Any field may be absent.
type Parameter struct {
	ParameterID *ID     `json:"ParameterId,omitempty"`
	Parameter   string  `json:"Parameter,omitempty"`
	Value       *string `json:"Value,omitempty"`
	ValueID     *ID     `json:"ValueId,omitempty"`
}

// ID is a distributor identifier. The API sends some IDs as numbers and
// others as numeric strings; both decode to the same value.
type ID int

// UnmarshalJSON accepts a JSON number or a numeric string.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := utils.ToInt(raw)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	*id = ID(v)
	return nil
}

// Decode parses a lookup response. Any decoding failure is a *MalformedRecordError.
func Decode(r io.Reader, partNumber string) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, &MalformedRecordError{PartNumber: partNumber, Reason: "invalid JSON", Err: err}
	}
	if rec.PartNumber == "" {
		rec.PartNumber = partNumber
	}
	return &rec, nil
}

// Param returns the last parameter with the given id. A later entry with the
// same id replaces an earlier one. The returned parameter may lack a value id.
func (r *Record) Param(parameterID int) (Parameter, bool) {
	var (
		found Parameter
		ok    bool
	)
	for _, p := range r.Parameters {
		if p.ParameterID != nil && int(*p.ParameterID) == parameterID {
			found, ok = p, true
		}
	}
	return found, ok
}

// ValueID returns the value id of a parameter. A parameter that is present
// without a value id makes the record malformed.
func (r *Record) ValueID(parameterID int, name string) (int, bool, error) {
	p, ok := r.Param(parameterID)
	if !ok {
		return 0, false, nil
	}
	if p.ValueID == nil {
		return 0, false, &MalformedRecordError{
			PartNumber: r.PartNumber,
			Reason:     name + " parameter has no value id",
		}
	}
	return int(*p.ValueID), true, nil
}
